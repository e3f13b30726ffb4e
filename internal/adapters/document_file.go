package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"github.com/tim-tx/cello-utils/internal/ports"
	"github.com/tim-tx/cello-utils/internal/types"
)

// DocumentIndent is the indentation of serialized documents.
const DocumentIndent = "    "

// DocumentFileAdapter writes documents to a file or, for an empty path or
// "-", to Stdout.
type DocumentFileAdapter struct {
	Stdout io.Writer
}

func NewDocumentFileAdapter() DocumentFileAdapter {
	return DocumentFileAdapter{Stdout: os.Stdout}
}

var _ ports.DocumentWriterPort = DocumentFileAdapter{}

// EncodeDocument renders doc exactly as it is written out.
func EncodeDocument(doc *types.Document) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", DocumentIndent)
	if err := encoder.Encode(doc); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode document").
			WithCause(err)
	}
	return buf.Bytes(), nil
}

// WriteDocument serializes the whole document before touching the
// destination; file output replaces the target atomically.
func (a DocumentFileAdapter) WriteDocument(ctx context.Context, doc *types.Document, path string) error {
	payload, err := EncodeDocument(doc)
	if err != nil {
		return err
	}
	if path == "" || path == "-" {
		if _, err := a.Stdout.Write(payload); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to write document to stdout").
				WithCause(err)
		}
		return nil
	}
	if err := writeFileAtomic(path, payload); err != nil {
		return err
	}
	log.Ctx(ctx).Debug().Str("path", path).Int("collections", doc.Len()).Msg("document written")
	return nil
}

func writeFileAtomic(path string, payload []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to create directory %s", dir)).
			WithCause(err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create temporary file").
			WithCause(err)
	}
	tmpName := tmp.Name()
	_, writeErr := tmp.Write(payload)
	closeErr := tmp.Close()
	if writeErr == nil {
		writeErr = closeErr
	}
	if writeErr == nil {
		writeErr = os.Chmod(tmpName, 0644)
	}
	if writeErr == nil {
		writeErr = os.Rename(tmpName, path)
	}
	if writeErr != nil {
		_ = os.Remove(tmpName)
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to write %s", path)).
			WithCause(writeErr)
	}
	return nil
}
