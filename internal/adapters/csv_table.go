package adapters

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"github.com/tim-tx/cello-utils/internal/ports"
	"github.com/tim-tx/cello-utils/internal/types"
)

type CSVTableAdapter struct{}

func NewCSVTableAdapter() CSVTableAdapter {
	return CSVTableAdapter{}
}

var _ ports.TableSourcePort = CSVTableAdapter{}

// ReadTable reads the whole table and closes the file before returning.
// Records may have any width; the stage decides what a short row means.
func (a CSVTableAdapter) ReadTable(ctx context.Context, path string) (types.Table, error) {
	file, err := openInput(path)
	if err != nil {
		return types.Table{}, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return types.Table{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("%s: table has no header row", path))
	}
	if err != nil {
		return types.Table{}, malformedTable(path, err)
	}

	table := types.Table{File: path, Header: header}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return types.Table{}, malformedTable(path, err)
		}
		line, _ := reader.FieldPos(0)
		table.Rows = append(table.Rows, record)
		table.Lines = append(table.Lines, line)
	}
	log.Ctx(ctx).Debug().Str("file", path).Int("rows", len(table.Rows)).Msg("table read")
	return table, nil
}

func malformedTable(path string, err error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("%s: malformed csv", path)).
		WithCause(err)
}

// openInput opens a stage input, reporting a missing file as not found.
func openInput(path string) (*os.File, error) {
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("input file not found: %s", path)).
			WithCause(err)
	}
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to open %s", path)).
			WithCause(err)
	}
	return file, nil
}
