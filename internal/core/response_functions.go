package core

import (
	"context"
	"fmt"

	"github.com/tim-tx/cello-utils/internal/types"
)

var responseFunctionsGrammar = HeaderGrammar{
	Simple: []SimpleRule{
		{Role: "gate_name", Required: true},
		{Role: "equation", Required: true},
	},
	Groups: []GroupRule{
		{
			Opener: "variable_name",
			Members: []MemberRule{
				{Role: "off_threshold", Required: true},
				{Role: "on_threshold", Required: true},
			},
		},
		{
			Opener: "parameter_name",
			Members: []MemberRule{
				{Role: "value", Required: true},
			},
		},
	},
}

// ApplyResponseFunctions appends one response function per row. A gate
// may have only one; variables and parameters with an empty name are
// skipped, but a named one needs all its values.
func ApplyResponseFunctions(ctx context.Context, env StageEnv, table types.Table, doc *types.Document) (int, error) {
	index, err := IndexHeader(table.File, table.Header, responseFunctionsGrammar)
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
		if _, exists := doc.Lookup(types.KindResponseFunctions, name); exists {
			if _, err := env.duplicate(ctx, types.DuplicateResponseFunction, row, types.KindResponseFunctions, name,
				fmt.Sprintf("response function already specified for %q", name)); err != nil {
				return count, err
			}
			continue
		}
		fn, err := parseResponseFunction(row, index, name)
		if err != nil {
			return count, err
		}
		doc.Append(fn)
	}
	return count, nil
}

func parseResponseFunction(row Row, index HeaderIndex, name string) (*types.ResponseFunction, error) {
	equation, err := row.RequireStringFor("equation", name, index.Column("equation"))
	if err != nil {
		return nil, err
	}
	fn := types.NewResponseFunction(name)
	fn.Equation = equation

	for _, group := range index.Groups("variable_name") {
		variable := row.Cell(group.Opener)
		if variable == "" {
			continue
		}
		off, err := row.RequireFloatFor("off_threshold", variable, group.Member("off_threshold"))
		if err != nil {
			return nil, err
		}
		on, err := row.RequireFloatFor("on_threshold", variable, group.Member("on_threshold"))
		if err != nil {
			return nil, err
		}
		fn.Variables = append(fn.Variables, types.Variable{Name: variable, OffThreshold: off, OnThreshold: on})
	}

	for _, group := range index.Groups("parameter_name") {
		parameter := row.Cell(group.Opener)
		if parameter == "" {
			continue
		}
		value, err := row.RequireFloatFor("value", parameter, group.Member("value"))
		if err != nil {
			return nil, err
		}
		fn.Parameters = append(fn.Parameters, types.Parameter{Name: parameter, Value: value})
	}
	return fn, nil
}
