package core

import (
	"context"

	"github.com/tim-tx/cello-utils/internal/types"
)

var logicConstraintsGrammar = HeaderGrammar{
	Simple: []SimpleRule{
		{Role: "type", Required: true},
		{Role: "max_instances", Required: true},
	},
}

func ApplyLogicConstraints(ctx context.Context, env StageEnv, table types.Table, doc *types.Document) (int, error) {
	index, err := IndexHeader(table.File, table.Header, logicConstraintsGrammar)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, row := range rows(table) {
		count++
		gateType, err := row.RequireString("type", index.Column("type"))
		if err != nil {
			return count, err
		}
		limit, err := row.RequireMaxInstances("max_instances", index.Column("max_instances"))
		if err != nil {
			return count, err
		}
		constraints := FindOrCreateSingleton(ctx, doc, types.KindLogicConstraints, types.NewLogicConstraints)
		constraints.AvailableGates = append(constraints.AvailableGates, types.GateAvailability{
			Type:         gateType,
			MaxInstances: limit,
		})
	}
	return count, nil
}
