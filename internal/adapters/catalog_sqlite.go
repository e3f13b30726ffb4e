package adapters

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"github.com/tim-tx/cello-utils/internal/ports"
	"github.com/tim-tx/cello-utils/internal/types"
)

const catalogSchema = `
CREATE TABLE IF NOT EXISTS documents (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
	collections INTEGER NOT NULL,
	payload BLOB NOT NULL
);
CREATE TABLE IF NOT EXISTS collections (
	document_id INTEGER NOT NULL REFERENCES documents(id),
	position INTEGER NOT NULL,
	kind TEXT NOT NULL,
	key TEXT NOT NULL,
	record BLOB NOT NULL,
	PRIMARY KEY (document_id, position)
);
CREATE INDEX IF NOT EXISTS collections_kind ON collections(kind, key);
`

// SQLiteCatalogAdapter keeps built documents in a SQLite file, one row per
// document plus one row per collection.
type SQLiteCatalogAdapter struct {
	Clock func() time.Time
}

func NewSQLiteCatalogAdapter() SQLiteCatalogAdapter {
	return SQLiteCatalogAdapter{Clock: time.Now}
}

var _ ports.CatalogPort = SQLiteCatalogAdapter{}

func (a SQLiteCatalogAdapter) open(dbPath string, create bool) (*sql.DB, error) {
	if !create {
		if _, err := os.Stat(dbPath); err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg(fmt.Sprintf("catalog not found: %s", dbPath)).
				WithCause(err)
		}
	} else if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, catalogFault("create catalog directory", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, catalogFault("open catalog", err)
	}
	if _, err := db.Exec(catalogSchema); err != nil {
		_ = db.Close()
		return nil, catalogFault("create catalog schema", err)
	}
	return db, nil
}

func (a SQLiteCatalogAdapter) Store(ctx context.Context, dbPath string, name string, doc *types.Document) (_ types.CatalogDocument, retErr error) {
	payload, err := EncodeDocument(doc)
	if err != nil {
		return types.CatalogDocument{}, err
	}
	db, err := a.open(dbPath, true)
	if err != nil {
		return types.CatalogDocument{}, err
	}
	defer func() { _ = db.Close() }()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return types.CatalogDocument{}, catalogFault("begin transaction", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	var existing int
	err = tx.QueryRowContext(ctx, `SELECT id FROM documents WHERE name = ?`, name).Scan(&existing)
	switch {
	case err == nil:
		return types.CatalogDocument{}, errbuilder.New().
			WithCode(errbuilder.CodeAlreadyExists).
			WithMsg(fmt.Sprintf("catalog already holds a document named %s", name))
	case !errors.Is(err, sql.ErrNoRows):
		return types.CatalogDocument{}, catalogFault("look up document", err)
	}

	stored := types.CatalogDocument{
		Name:        name,
		CreatedAt:   a.Clock().UTC().Truncate(time.Second),
		Collections: doc.Len(),
	}
	result, err := tx.ExecContext(ctx,
		`INSERT INTO documents (name, created_at, collections, payload) VALUES (?, ?, ?, ?)`,
		name, stored.CreatedAt.Format(time.RFC3339), stored.Collections, payload)
	if err != nil {
		return types.CatalogDocument{}, catalogFault("insert document", err)
	}
	documentID, err := result.LastInsertId()
	if err != nil {
		return types.CatalogDocument{}, catalogFault("read document id", err)
	}
	for position, collection := range doc.Collections() {
		record, err := json.Marshal(collection)
		if err != nil {
			return types.CatalogDocument{}, catalogFault("encode collection", err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO collections (document_id, position, kind, key, record) VALUES (?, ?, ?, ?, ?)`,
			documentID, position, string(collection.Kind()), collection.Key(), record); err != nil {
			return types.CatalogDocument{}, catalogFault("insert collection", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return types.CatalogDocument{}, catalogFault("commit", err)
	}
	log.Ctx(ctx).Debug().Str("catalog", dbPath).Str("name", name).Int("collections", stored.Collections).Msg("document stored")
	return stored, nil
}

func (a SQLiteCatalogAdapter) List(ctx context.Context, dbPath string) ([]types.CatalogDocument, error) {
	db, err := a.open(dbPath, false)
	if err != nil {
		return nil, err
	}
	defer func() { _ = db.Close() }()

	rows, err := db.QueryContext(ctx, `SELECT name, created_at, collections FROM documents ORDER BY created_at, name`)
	if err != nil {
		return nil, catalogFault("list documents", err)
	}
	defer func() { _ = rows.Close() }()

	var documents []types.CatalogDocument
	for rows.Next() {
		var document types.CatalogDocument
		var createdAt string
		if err := rows.Scan(&document.Name, &createdAt, &document.Collections); err != nil {
			return nil, catalogFault("scan document", err)
		}
		document.CreatedAt, err = parseCatalogTime(createdAt)
		if err != nil {
			return nil, catalogFault("parse created_at", err)
		}
		documents = append(documents, document)
	}
	if err := rows.Err(); err != nil {
		return nil, catalogFault("list documents", err)
	}
	return documents, nil
}

func (a SQLiteCatalogAdapter) Load(ctx context.Context, dbPath string, name string) ([]types.CatalogEntry, error) {
	db, err := a.open(dbPath, false)
	if err != nil {
		return nil, err
	}
	defer func() { _ = db.Close() }()

	rows, err := db.QueryContext(ctx, `
		SELECT c.position, c.kind, c.key, c.record
		FROM collections c JOIN documents d ON d.id = c.document_id
		WHERE d.name = ?
		ORDER BY c.position`, name)
	if err != nil {
		return nil, catalogFault("load document", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []types.CatalogEntry
	for rows.Next() {
		var entry types.CatalogEntry
		var kind string
		var record []byte
		if err := rows.Scan(&entry.Position, &kind, &entry.Key, &record); err != nil {
			return nil, catalogFault("scan collection", err)
		}
		entry.Kind = types.Kind(kind)
		entry.Record = json.RawMessage(record)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, catalogFault("load document", err)
	}
	if len(entries) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("catalog has no document named %s", name))
	}
	return entries, nil
}

func catalogFault(action string, err error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg(fmt.Sprintf("catalog: failed to %s", action)).
		WithCause(err)
}
