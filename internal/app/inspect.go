package app

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/davecgh/go-spew/spew"

	"github.com/tim-tx/cello-utils/internal/types"
)

// Inspect summarizes a finished document. Every element must be an object
// with a known collection kind.
func (s Service) Inspect(ctx context.Context, req InspectRequest) (InspectResult, error) {
	path := strings.TrimSpace(req.DocumentPath)
	if path == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("document path is required")
	}
	document, err := s.Reader.ReadDocument(ctx, path)
	if err != nil {
		return InspectResult{}, err
	}

	records := make([]map[string]any, 0, len(document))
	counts := map[types.Kind]int{}
	var order []types.Kind
	for i, element := range document {
		record, ok := element.(map[string]any)
		if !ok {
			return InspectResult{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("element %d is not an object", i))
		}
		kind := types.Kind(stringField(record, "collection"))
		if !kind.Known() {
			return InspectResult{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("element %d has unknown collection %q", i, kind))
		}
		if counts[kind] == 0 {
			order = append(order, kind)
		}
		counts[kind]++
		records = append(records, record)
	}

	result := InspectResult{Collections: len(records)}
	for _, kind := range order {
		result.Kinds = append(result.Kinds, KindCount{Kind: kind, Count: counts[kind]})
	}

	selected := records
	if gate := strings.TrimSpace(req.Gate); gate != "" {
		selected = recordsForGate(records, gate)
		detail, err := gateDetail(gate, selected)
		if err != nil {
			return InspectResult{}, err
		}
		result.Gate = detail
	}
	if req.Dump {
		config := spew.ConfigState{Indent: "  ", SortKeys: true, DisablePointerAddresses: true}
		result.Dump = config.Sdump(selected)
	}
	return result, nil
}

func recordsForGate(records []map[string]any, gate string) []map[string]any {
	var selected []map[string]any
	for _, record := range records {
		if stringField(record, "gate_name") == gate {
			selected = append(selected, record)
		}
	}
	return selected
}

func gateDetail(gate string, records []map[string]any) (*GateDetail, error) {
	detail := &GateDetail{
		Name:            gate,
		Parameters:      map[string]float64{},
		Cassettes:       map[string][]string{},
		CytometryInputs: map[string][]float64{},
	}
	found := false
	for _, record := range records {
		switch types.Kind(stringField(record, "collection")) {
		case types.KindGates:
			found = true
			detail.GateType = stringField(record, "gate_type")
		case types.KindResponseFunctions:
			detail.Equation = stringField(record, "equation")
			for _, parameter := range listField(record, "parameters") {
				entry, _ := parameter.(map[string]any)
				detail.Parameters[stringField(entry, "name")] = numberField(entry, "value")
			}
		case types.KindGateParts:
			detail.Promoter = stringField(record, "promoter")
			for _, cassette := range listField(record, "expression_cassettes") {
				entry, _ := cassette.(map[string]any)
				var parts []string
				for _, part := range listField(entry, "cassette_parts") {
					if name, ok := part.(string); ok {
						parts = append(parts, name)
					}
				}
				detail.Cassettes[stringField(entry, "maps_to_variable")] = parts
			}
		case types.KindGateCytometry:
			for _, point := range listField(record, "cytometry_data") {
				entry, _ := point.(map[string]any)
				variable := stringField(entry, "maps_to_variable")
				detail.CytometryInputs[variable] = append(detail.CytometryInputs[variable], numberField(entry, "input"))
			}
		case types.KindGateToxicity:
			detail.ToxicityVariables = append(detail.ToxicityVariables, stringField(record, "maps_to_variable"))
		}
	}
	if !found {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("gate %s not found in document", gate))
	}
	for _, inputs := range detail.CytometryInputs {
		slices.Sort(inputs)
	}
	slices.Sort(detail.ToxicityVariables)
	return detail, nil
}

func stringField(record map[string]any, key string) string {
	value, _ := record[key].(string)
	return value
}

func listField(record map[string]any, key string) []any {
	value, _ := record[key].([]any)
	return value
}

// numberField reads a JSON number, which the reader may decode as an
// integer or a float.
func numberField(record map[string]any, key string) float64 {
	switch value := record[key].(type) {
	case float64:
		return value
	case int64:
		return float64(value)
	case int:
		return float64(value)
	default:
		return 0
	}
}
