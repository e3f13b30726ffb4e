package ports

import (
	"context"

	"github.com/tim-tx/cello-utils/internal/types"
)

// TableSourcePort reads one comma-delimited table with its header row.
type TableSourcePort interface {
	ReadTable(ctx context.Context, path string) (types.Table, error)
}

// TextSourcePort reads a line-oriented text blob.
type TextSourcePort interface {
	ReadLines(ctx context.Context, path string) ([]string, error)
}

// PlasmidSourcePort reads a plasmid sequence file as document lines.
type PlasmidSourcePort interface {
	ReadPlasmid(ctx context.Context, path string) ([]string, error)
}

type ManifestPort interface {
	LoadManifest(path string) (types.BuildManifest, error)
}
