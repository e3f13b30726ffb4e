package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
)

func (s Service) Build(ctx context.Context, req BuildRequest) (BuildResult, error) {
	catalogPath := strings.TrimSpace(req.CatalogPath)
	if catalogPath == "" && strings.TrimSpace(req.CatalogName) != "" {
		return BuildResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("catalog name given without a catalog path")
	}
	metrics := s.Metrics(strings.TrimSpace(req.MetricsTextfile))

	built, err := s.assemble(ctx, req.AssembleRequest, metrics)
	if err != nil {
		return BuildResult{}, err
	}
	outputPath := strings.TrimSpace(req.OutputPath)
	if err := s.Writer.WriteDocument(ctx, built.doc, outputPath); err != nil {
		return BuildResult{}, err
	}
	result := BuildResult{
		OutputPath:  outputPath,
		Collections: built.doc.Len(),
		Report:      built.report,
	}

	if catalogPath != "" {
		name := strings.TrimSpace(req.CatalogName)
		if name == "" {
			name = built.name
		}
		if name == "" && outputPath != "" && outputPath != "-" {
			name = strings.TrimSuffix(filepath.Base(outputPath), filepath.Ext(outputPath))
		}
		if name == "" {
			return result, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("catalog name is required when the document has no name")
		}
		stored, err := s.Catalog.Store(ctx, catalogPath, name, built.doc)
		if err != nil {
			return result, err
		}
		result.Catalog = &stored
	}
	if err := metrics.Flush(ctx); err != nil {
		return result, err
	}
	log.Ctx(ctx).Info().
		Int("collections", result.Collections).
		Int("warnings", len(result.Report.Warnings)).
		Str("output", displayPath(outputPath)).
		Msg("document built")
	return result, nil
}

func displayPath(path string) string {
	if path == "" || path == "-" {
		return "stdout"
	}
	return path
}
