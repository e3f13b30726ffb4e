package core

import (
	"fmt"
	"strings"

	"github.com/tim-tx/cello-utils/internal/types"
)

// UnrecognizedColumnError reports a header cell that is unknown to the
// stage or appears out of sequence. Position is 0-based.
type UnrecognizedColumnError struct {
	File     string
	Position int
	Column   string
	Reason   string
}

func (e *UnrecognizedColumnError) Error() string {
	return fmt.Sprintf("unexpected header key %q in %s at position %d: %s", e.Column, e.File, e.Position, e.Reason)
}

// MissingColumnError reports a required role absent from a header.
type MissingColumnError struct {
	File   string
	Column string
	Group  string
}

func (e *MissingColumnError) Error() string {
	if e.Group != "" {
		return fmt.Sprintf("%s: column %q required after every %q", e.File, e.Column, e.Group)
	}
	return fmt.Sprintf("%s: column %q required in header", e.File, e.Column)
}

type MissingFieldError struct {
	File  string
	Row   int
	Field string
	Owner string
}

func (e *MissingFieldError) Error() string {
	if e.Owner != "" {
		return fmt.Sprintf("%s:%d: no %s specified for %s", e.File, e.Row, e.Field, e.Owner)
	}
	return fmt.Sprintf("%s:%d: %s not specified", e.File, e.Row, e.Field)
}

type InvalidNumberError struct {
	File  string
	Row   int
	Field string
	Value string
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("%s:%d: %s %q is not a number", e.File, e.Row, e.Field, e.Value)
}

// InvalidValueError reports a non-numeric value outside its allowed set.
type InvalidValueError struct {
	File  string
	Row   int
	Field string
	Value string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s:%d: invalid %s %q", e.File, e.Row, e.Field, e.Value)
}

type DuplicateKeyError struct {
	File string
	Row  int
	Kind types.Kind
	Key  string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s:%d: %s already specified for %q", e.File, e.Row, e.Kind, e.Key)
}

type NotImplementedError struct {
	Stage string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("not implemented: %s", e.Stage)
}

// MissingInputError lists required stage inputs that were not supplied.
type MissingInputError struct {
	Inputs []string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("required inputs missing: %s", strings.Join(e.Inputs, ", "))
}

type ConflictingInputError struct {
	First  string
	Second string
}

func (e *ConflictingInputError) Error() string {
	return fmt.Sprintf("%s and %s cannot be combined", e.First, e.Second)
}
