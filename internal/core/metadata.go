package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tim-tx/cello-utils/internal/types"
)

var keyValueGrammar = HeaderGrammar{
	Simple: []SimpleRule{
		{Role: "key", Required: true},
		{Role: "value", Required: true},
	},
}

// HeaderDateLayout is the layout of the default header date.
const HeaderDateLayout = time.UnixDate

type keyValue struct {
	row   Row
	key   string
	value string
}

var headerKeys = map[string]bool{
	"description": true,
	"version":     true,
	"date":        true,
	"author":      true,
	"organism":    true,
	"genome":      true,
	"media":       true,
	"temperature": true,
	"growth":      true,
}

var measurementStdKeys = map[string]bool{
	"signal_carrier_units":       true,
	"units":                      true,
	"normalization_instructions": true,
	"plasmid_description":        true,
}

// keyValues validates every entry of a key/value table before any of them
// is applied. Only known keys need a value; unknown ones are warned about
// later whatever they hold.
func keyValues(table types.Table, known map[string]bool) ([]keyValue, error) {
	index, err := IndexHeader(table.File, table.Header, keyValueGrammar)
	if err != nil {
		return nil, err
	}
	var entries []keyValue
	for _, row := range rows(table) {
		key, err := row.RequireString("key", index.Column("key"))
		if err != nil {
			return nil, err
		}
		key = strings.ToLower(key)
		value := row.Cell(index.Column("value"))
		if known[key] {
			if value, err = row.RequireStringFor("value", key, index.Column("value")); err != nil {
				return nil, err
			}
		}
		entries = append(entries, keyValue{row: row, key: key, value: value})
	}
	return entries, nil
}

// assignOnce sets a metadata field unless an earlier row already did.
func assignOnce(ctx context.Context, env StageEnv, seen map[string]bool, kind types.Kind, entry keyValue, field *string) error {
	if seen[entry.key] {
		_, err := env.duplicate(ctx, types.DuplicateMetadataKey, entry.row, kind, entry.key,
			fmt.Sprintf("%s key %q already specified", kind, entry.key))
		return err
	}
	seen[entry.key] = true
	*field = entry.value
	return nil
}

// ApplyHeader fills the header singleton. Authors accumulate; any other
// key is set once. Without a date the run's clock supplies one.
func ApplyHeader(ctx context.Context, env StageEnv, table types.Table, doc *types.Document) (int, error) {
	entries, err := keyValues(table, headerKeys)
	if err != nil {
		return 0, err
	}
	header := FindOrCreateSingleton(ctx, doc, types.KindHeader, types.NewHeader)
	fields := map[string]*string{
		"description": &header.Description,
		"version":     &header.Version,
		"date":        &header.Date,
		"organism":    &header.Organism,
		"genome":      &header.Genome,
		"media":       &header.Media,
		"temperature": &header.Temperature,
		"growth":      &header.Growth,
	}
	seen := map[string]bool{}
	for _, entry := range entries {
		if entry.key == "author" {
			header.Author = append(header.Author, entry.value)
			continue
		}
		field, ok := fields[entry.key]
		if !ok {
			env.Diagnostics.Warn(ctx, types.WarningUnrecognizedKey, entry.row.File, entry.row.Line,
				"unrecognized header key %q ignored", entry.key)
			continue
		}
		if err := assignOnce(ctx, env, seen, types.KindHeader, entry, field); err != nil {
			return len(entries), err
		}
	}
	if header.Date == "" {
		header.Date = env.now().Format(HeaderDateLayout)
	}
	return len(entries), nil
}

// ApplyMeasurementStd fills the measurement standard singleton.
func ApplyMeasurementStd(ctx context.Context, env StageEnv, table types.Table, doc *types.Document) (int, error) {
	entries, err := keyValues(table, measurementStdKeys)
	if err != nil {
		return 0, err
	}
	std := FindOrCreateSingleton(ctx, doc, types.KindMeasurementStd, types.NewMeasurementStd)
	fields := map[string]*string{
		"signal_carrier_units":       &std.SignalCarrierUnits,
		"units":                      &std.SignalCarrierUnits,
		"normalization_instructions": &std.NormalizationInstructions,
		"plasmid_description":        &std.PlasmidDescription,
	}
	seen := map[string]bool{}
	for _, entry := range entries {
		field, ok := fields[entry.key]
		if !ok {
			env.Diagnostics.Warn(ctx, types.WarningUnrecognizedKey, entry.row.File, entry.row.Line,
				"unrecognized measurement standard key %q ignored", entry.key)
			continue
		}
		if entry.key == "units" {
			entry.key = "signal_carrier_units"
		}
		if err := assignOnce(ctx, env, seen, types.KindMeasurementStd, entry, field); err != nil {
			return len(entries), err
		}
	}
	return len(entries), nil
}

// ApplyMeasurementPlasmid appends sequence lines to the measurement
// standard, creating it when no earlier stage did.
func ApplyMeasurementPlasmid(ctx context.Context, env StageEnv, lines []string, doc *types.Document) (int, error) {
	std := FindOrCreateSingleton(ctx, doc, types.KindMeasurementStd, types.NewMeasurementStd)
	std.PlasmidSequence = append(std.PlasmidSequence, lines...)
	return len(lines), nil
}

func ApplyPartPlacementRules(ctx context.Context, env StageEnv, lines []string, doc *types.Document) (int, error) {
	rules := FindOrCreateSingleton(ctx, doc, types.KindEugeneRules, types.NewEugeneRules)
	rules.EugenePartRules = append(rules.EugenePartRules, lines...)
	return len(lines), nil
}

func ApplyGatePlacementRules(ctx context.Context, env StageEnv, lines []string, doc *types.Document) (int, error) {
	rules := FindOrCreateSingleton(ctx, doc, types.KindEugeneRules, types.NewEugeneRules)
	rules.EugeneGateRules = append(rules.EugeneGateRules, lines...)
	return len(lines), nil
}

// ApplyMotifLibrary always fails: motif libraries are not supported yet.
func ApplyMotifLibrary(path string) error {
	if path == "" {
		return &NotImplementedError{Stage: "standard motif library"}
	}
	return &NotImplementedError{Stage: fmt.Sprintf("motif library %s", path)}
}
