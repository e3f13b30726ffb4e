package adapters

import (
	"context"
	"fmt"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"github.com/rs/zerolog/log"

	"github.com/tim-tx/cello-utils/internal/ports"
)

type DocumentReaderAdapter struct{}

func NewDocumentReaderAdapter() DocumentReaderAdapter {
	return DocumentReaderAdapter{}
}

var _ ports.DocumentReaderPort = DocumentReaderAdapter{}

// ReadDocument parses a serialized document into generic values. The top
// level must be a list.
func (a DocumentReaderAdapter) ReadDocument(ctx context.Context, path string) ([]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("document not found: %s", path)).
			WithCause(err)
	}
	parsed, err := oj.Parse(data)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("%s is not valid JSON", path)).
			WithCause(err)
	}
	list, ok := parsed.([]any)
	if !ok {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("%s: document must be a JSON list", path))
	}
	log.Ctx(ctx).Debug().Str("file", path).Int("collections", len(list)).Msg("document read")
	return list, nil
}

type JSONPathQueryAdapter struct{}

func NewJSONPathQueryAdapter() JSONPathQueryAdapter {
	return JSONPathQueryAdapter{}
}

var _ ports.DocumentQueryPort = JSONPathQueryAdapter{}

func (a JSONPathQueryAdapter) Query(ctx context.Context, document []any, expr string) ([]any, error) {
	x, err := jp.ParseString(expr)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid path expression: %s", expr)).
			WithCause(err)
	}
	matches := x.Get(document)
	log.Ctx(ctx).Debug().Str("path", expr).Int("matches", len(matches)).Msg("document queried")
	return matches, nil
}
