package core

import (
	"math"
	"strconv"
	"strings"

	"github.com/tim-tx/cello-utils/internal/shared"
	"github.com/tim-tx/cello-utils/internal/types"
)

// Row is one data record of a table with typed, validating accessors.
// Cells past the end of a short record read as empty.
type Row struct {
	File  string
	Line  int
	cells []string
}

func NewRow(file string, line int, cells []string) Row {
	return Row{File: file, Line: line, cells: cells}
}

func (r Row) Cell(idx int) string {
	if idx < 0 || idx >= len(r.cells) {
		return ""
	}
	return strings.TrimSpace(r.cells[idx])
}

func (r Row) Blank() bool {
	return shared.IsBlankRow(r.cells)
}

func (r Row) RequireString(field string, idx int) (string, error) {
	return r.RequireStringFor(field, "", idx)
}

// RequireStringFor is RequireString for a field owned by a named entity,
// such as the threshold of a variable.
func (r Row) RequireStringFor(field string, owner string, idx int) (string, error) {
	value := r.Cell(idx)
	if value == "" {
		return "", &MissingFieldError{File: r.File, Row: r.Line, Field: field, Owner: owner}
	}
	return value, nil
}

func (r Row) RequireFloat(field string, idx int) (float64, error) {
	return r.RequireFloatFor(field, "", idx)
}

func (r Row) RequireFloatFor(field string, owner string, idx int) (float64, error) {
	value, err := r.RequireStringFor(field, owner, idx)
	if err != nil {
		return 0, err
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0, &InvalidNumberError{File: r.File, Row: r.Line, Field: field, Value: value}
	}
	return parsed, nil
}

// RequireMaxInstances accepts a non-negative integer count or a boolean.
func (r Row) RequireMaxInstances(field string, idx int) (types.MaxInstances, error) {
	value, err := r.RequireString(field, idx)
	if err != nil {
		return types.MaxInstances{}, err
	}
	if count, err := strconv.Atoi(value); err == nil && count >= 0 {
		return types.MaxInstances{Count: count}, nil
	}
	switch strings.ToLower(value) {
	case "true":
		return types.MaxInstances{IsBool: true, Allowed: true}, nil
	case "false":
		return types.MaxInstances{IsBool: true, Allowed: false}, nil
	}
	return types.MaxInstances{}, &InvalidValueError{File: r.File, Row: r.Line, Field: field, Value: value}
}

// rows yields the non-blank records of table with their source lines.
func rows(table types.Table) []Row {
	out := make([]Row, 0, len(table.Rows))
	for i, cells := range table.Rows {
		row := NewRow(table.File, table.RowLine(i), cells)
		if row.Blank() {
			continue
		}
		out = append(out, row)
	}
	return out
}
