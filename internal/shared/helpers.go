// Package shared provides common utility functions used across multiple
// packages in the cello-utils codebase.
package shared

import (
	"strings"
)

const utf8BOM = "\ufeff"

// NormalizeHeaderCell trims surrounding whitespace from a header cell and,
// for the first cell of a file, strips a leading UTF-8 byte order mark.
func NormalizeHeaderCell(value string, first bool) string {
	if first {
		value = strings.TrimPrefix(value, utf8BOM)
	}
	return strings.TrimSpace(value)
}

// IsBlankRow reports whether every cell of a CSV record is empty after
// trimming.
func IsBlankRow(cells []string) bool {
	for _, cell := range cells {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// WrapLines splits value into consecutive chunks of at most width runes.
func WrapLines(value string, width int) []string {
	if width <= 0 || value == "" {
		return []string{value}
	}
	runes := []rune(value)
	lines := make([]string, 0, len(runes)/width+1)
	for start := 0; start < len(runes); start += width {
		end := min(start+width, len(runes))
		lines = append(lines, string(runes[start:end]))
	}
	return lines
}
