package types

// Table is a fully read CSV input: its header row and data rows. Line
// holds the 1-based source line of each row for error reporting.
type Table struct {
	File   string
	Header []string
	Rows   [][]string
	Lines  []int
}

// RowLine returns the source line of row i, falling back to its ordinal
// position after the header.
func (t Table) RowLine(i int) int {
	if i < len(t.Lines) {
		return t.Lines[i]
	}
	return i + 2
}
