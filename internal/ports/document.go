package ports

import (
	"context"

	"github.com/tim-tx/cello-utils/internal/types"
)

// DocumentWriterPort serializes a finished document. An empty path means
// standard output.
type DocumentWriterPort interface {
	WriteDocument(ctx context.Context, doc *types.Document, path string) error
}

// DocumentReaderPort parses a serialized document into generic values.
type DocumentReaderPort interface {
	ReadDocument(ctx context.Context, path string) ([]any, error)
}

type DocumentQueryPort interface {
	Query(ctx context.Context, document []any, expr string) ([]any, error)
}

// CatalogPort stores finished documents in a local database file.
type CatalogPort interface {
	Store(ctx context.Context, dbPath string, name string, doc *types.Document) (types.CatalogDocument, error)
	List(ctx context.Context, dbPath string) ([]types.CatalogDocument, error)
	Load(ctx context.Context, dbPath string, name string) ([]types.CatalogEntry, error)
}
