package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Query evaluates a JSONPath expression against a finished document.
func (s Service) Query(ctx context.Context, req QueryRequest) (QueryResult, error) {
	path := strings.TrimSpace(req.DocumentPath)
	expr := strings.TrimSpace(req.Path)
	if path == "" || expr == "" {
		return QueryResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("document path and query expression are required")
	}
	document, err := s.Reader.ReadDocument(ctx, path)
	if err != nil {
		return QueryResult{}, err
	}
	matches, err := s.Querier.Query(ctx, document, expr)
	if err != nil {
		return QueryResult{}, err
	}
	if matches == nil {
		matches = []any{}
	}
	return QueryResult{Matches: matches}, nil
}
