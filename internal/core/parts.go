package core

import (
	"context"
	"fmt"

	"github.com/tim-tx/cello-utils/internal/types"
)

var partsGrammar = HeaderGrammar{
	Simple: []SimpleRule{
		{Role: "name", Required: true},
		{Role: "type", Required: true},
		{Role: "dnasequence", Required: true},
	},
}

// ApplyParts appends one parts collection per row. A repeated part name
// drops the whole row.
func ApplyParts(ctx context.Context, env StageEnv, table types.Table, doc *types.Document) (int, error) {
	index, err := IndexHeader(table.File, table.Header, partsGrammar)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, row := range rows(table) {
		count++
		name, err := row.RequireString("name", index.Column("name"))
		if err != nil {
			return count, err
		}
		if _, exists := doc.Lookup(types.KindParts, name); exists {
			if _, err := env.duplicate(ctx, types.DuplicatePart, row, types.KindParts, name,
				fmt.Sprintf("part %q already specified", name)); err != nil {
				return count, err
			}
			continue
		}
		partType, err := row.RequireStringFor("type", name, index.Column("type"))
		if err != nil {
			return count, err
		}
		sequence, err := row.RequireStringFor("dnasequence", name, index.Column("dnasequence"))
		if err != nil {
			return count, err
		}
		part := types.NewPart(name)
		part.Type = partType
		part.DNASequence = sequence
		doc.Append(part)
	}
	return count, nil
}
