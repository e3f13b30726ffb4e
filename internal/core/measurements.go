package core

import (
	"context"

	"github.com/tim-tx/cello-utils/internal/types"
)

var toxicityGrammar = HeaderGrammar{
	Simple: []SimpleRule{
		{Role: "gate_name", Required: true},
		{Role: "variable", Required: true},
		{Role: "input", Required: true},
		{Role: "growth", Required: true},
	},
}

var cytometryGrammar = HeaderGrammar{
	Simple: []SimpleRule{
		{Role: "gate_name", Required: true},
		{Role: "variable", Required: true},
		{Role: "input", Required: true},
		{Role: "output_bin", Required: true},
		{Role: "output_count", Required: true},
	},
}

// ApplyToxicity accumulates one (input, growth) pair per row onto the
// curve of its gate and variable.
func ApplyToxicity(ctx context.Context, env StageEnv, table types.Table, doc *types.Document) (int, error) {
	index, err := IndexHeader(table.File, table.Header, toxicityGrammar)
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
		variable, err := row.RequireStringFor("variable", name, index.Column("variable"))
		if err != nil {
			return count, err
		}
		input, err := row.RequireFloatFor("input", name, index.Column("input"))
		if err != nil {
			return count, err
		}
		growth, err := row.RequireFloatFor("growth", name, index.Column("growth"))
		if err != nil {
			return count, err
		}
		curve, _ := FindOrCreate(ctx, doc, types.KindGateToxicity, types.ToxicityKey(name, variable), func() *types.GateToxicity {
			return types.NewGateToxicity(name, variable)
		})
		AppendToxicity(curve, input, growth)
	}
	return count, nil
}

// ApplyCytometry accumulates histogram bins per gate and (variable, input)
// point in row order.
func ApplyCytometry(ctx context.Context, env StageEnv, table types.Table, doc *types.Document) (int, error) {
	index, err := IndexHeader(table.File, table.Header, cytometryGrammar)
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
		variable, err := row.RequireStringFor("variable", name, index.Column("variable"))
		if err != nil {
			return count, err
		}
		input, err := row.RequireFloatFor("input", name, index.Column("input"))
		if err != nil {
			return count, err
		}
		bin, err := row.RequireFloatFor("output_bin", name, index.Column("output_bin"))
		if err != nil {
			return count, err
		}
		value, err := row.RequireFloatFor("output_count", name, index.Column("output_count"))
		if err != nil {
			return count, err
		}
		histogram, _ := FindOrCreate(ctx, doc, types.KindGateCytometry, name, func() *types.GateCytometry {
			return types.NewGateCytometry(name)
		})
		AppendCytometry(histogram, variable, input, bin, value)
	}
	return count, nil
}
