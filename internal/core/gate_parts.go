package core

import (
	"context"
	"fmt"

	"github.com/tim-tx/cello-utils/internal/types"
)

var gatePartsGrammar = HeaderGrammar{
	Simple: []SimpleRule{
		{Role: "gate_name", Required: true},
		{Role: "promoter", Required: true},
	},
	Groups: []GroupRule{
		{
			Opener:  "variable",
			Members: []MemberRule{{Role: "part", Repeatable: true}},
		},
	},
}

// ApplyGateParts wires gates to their expression cassettes. Rows naming
// the same gate continue its collection; a variable already mapped on the
// gate is a duplicate for that variable only.
func ApplyGateParts(ctx context.Context, env StageEnv, table types.Table, doc *types.Document) (int, error) {
	index, err := IndexHeader(table.File, table.Header, gatePartsGrammar)
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
		promoter := row.Cell(index.Column("promoter"))
		cassettes := rowCassettes(row, index)

		collection, _ := FindOrCreate(ctx, doc, types.KindGateParts, name, func() *types.GateParts {
			return types.NewGateParts(name)
		})
		for _, cassette := range cassettes {
			if _, exists := collection.Cassette(cassette.MapsToVariable); exists {
				action, err := env.duplicate(ctx, types.DuplicateCassette, row, types.KindGateParts,
					cassetteKey(name, cassette.MapsToVariable),
					fmt.Sprintf("variable %q already added to gate %q", cassette.MapsToVariable, name))
				if err != nil {
					return count, err
				}
				if action == types.DuplicateTolerate {
					continue
				}
			}
			collection.ExpressionCassettes = append(collection.ExpressionCassettes, cassette)
		}

		switch {
		case promoter == "" || promoter == collection.Promoter:
		case collection.Promoter == "":
			collection.Promoter = promoter
		default:
			if _, err := env.duplicate(ctx, types.DuplicatePromoter, row, types.KindGateParts, name,
				fmt.Sprintf("promoter %q already specified for gate %q, ignoring %q", collection.Promoter, name, promoter)); err != nil {
				return count, err
			}
		}
	}
	return count, nil
}

func rowCassettes(row Row, index HeaderIndex) []types.ExpressionCassette {
	var cassettes []types.ExpressionCassette
	for _, group := range index.Groups("variable") {
		variable := row.Cell(group.Opener)
		if variable == "" {
			continue
		}
		parts := []string{}
		for _, idx := range group.Members("part") {
			if part := row.Cell(idx); part != "" {
				parts = append(parts, part)
			}
		}
		cassettes = append(cassettes, types.ExpressionCassette{MapsToVariable: variable, CassetteParts: parts})
	}
	return cassettes
}
