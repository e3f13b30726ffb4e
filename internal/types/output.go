package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// Warning is a recoverable problem found while assembling a document.
type Warning struct {
	Code    WarningCode
	File    string
	Row     int
	Message string
}

func (w Warning) String() string {
	switch {
	case w.File != "" && w.Row > 0:
		return fmt.Sprintf("[%s] %s:%d: %s", w.Code, w.File, w.Row, w.Message)
	case w.File != "":
		return fmt.Sprintf("[%s] %s: %s", w.Code, w.File, w.Message)
	default:
		return fmt.Sprintf("[%s] %s", w.Code, w.Message)
	}
}

type StageSummary struct {
	Stage       string
	File        string
	Rows        int
	Collections int
}

type BuildReport struct {
	Stages   []StageSummary
	Warnings []Warning
}

func (r BuildReport) WarningCount(code WarningCode) int {
	count := 0
	for _, warning := range r.Warnings {
		if warning.Code == code {
			count++
		}
	}
	return count
}

// CatalogEntry is one collection prepared for the document catalog.
type CatalogEntry struct {
	Position int
	Kind     Kind
	Key      string
	Record   json.RawMessage
}

type CatalogDocument struct {
	Name        string
	CreatedAt   time.Time
	Collections int
}
