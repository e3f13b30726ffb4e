package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

func (s Service) CatalogList(ctx context.Context, req CatalogListRequest) (CatalogListResult, error) {
	dbPath, err := requireCatalogPath(req.DBPath)
	if err != nil {
		return CatalogListResult{}, err
	}
	documents, err := s.Catalog.List(ctx, dbPath)
	if err != nil {
		return CatalogListResult{}, err
	}
	return CatalogListResult{Documents: documents}, nil
}

func (s Service) CatalogShow(ctx context.Context, req CatalogShowRequest) (CatalogShowResult, error) {
	dbPath, err := requireCatalogPath(req.DBPath)
	if err != nil {
		return CatalogShowResult{}, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return CatalogShowResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("document name is required")
	}
	entries, err := s.Catalog.Load(ctx, dbPath, name)
	if err != nil {
		return CatalogShowResult{}, err
	}
	return CatalogShowResult{Entries: entries}, nil
}

func requireCatalogPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("catalog path is required")
	}
	return path, nil
}
