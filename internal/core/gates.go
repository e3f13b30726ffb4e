package core

import (
	"context"
	"fmt"

	"github.com/tim-tx/cello-utils/internal/types"
)

var gatesGrammar = HeaderGrammar{
	Simple: []SimpleRule{
		{Role: "gate_name", Required: true},
		{Role: "regulator"},
		{Role: "group_name"},
		{Role: "gate_type"},
		{Role: "system"},
		{Role: "color_hexcode"},
	},
}

// ApplyGates appends one gates collection per row.
func ApplyGates(ctx context.Context, env StageEnv, table types.Table, doc *types.Document) (int, error) {
	index, err := IndexHeader(table.File, table.Header, gatesGrammar)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, row := range rows(table) {
		count++
		name, err := row.RequireString("gate_name", index.Column("gate_name"))
		if err != nil {
			return count, err
		}
		if _, exists := doc.Lookup(types.KindGates, name); exists {
			action, err := env.duplicate(ctx, types.DuplicateGate, row, types.KindGates, name,
				fmt.Sprintf("gate %q already specified", name))
			if err != nil {
				return count, err
			}
			if action == types.DuplicateTolerate {
				continue
			}
		}
		gate := types.NewGate(name)
		gate.Regulator = row.Cell(index.Column("regulator"))
		gate.GroupName = row.Cell(index.Column("group_name"))
		gate.GateType = row.Cell(index.Column("gate_type"))
		gate.System = row.Cell(index.Column("system"))
		gate.ColorHexcode = row.Cell(index.Column("color_hexcode"))
		doc.Append(gate)
	}
	return count, nil
}
