package core

import (
	"context"
	"time"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"github.com/tim-tx/cello-utils/internal/ports"
	"github.com/tim-tx/cello-utils/internal/types"
)

// TableStage applies one CSV table to the document and returns the number
// of data rows it read.
type TableStage func(ctx context.Context, env StageEnv, table types.Table, doc *types.Document) (int, error)

// TextStage applies a list of text lines to the document.
type TextStage func(ctx context.Context, env StageEnv, lines []string, doc *types.Document) (int, error)

// Assembler runs the stages of one build in their fixed order.
type Assembler struct {
	Tables   ports.TableSourcePort
	Texts    ports.TextSourcePort
	Plasmids ports.PlasmidSourcePort
	Policy   ports.DuplicatePolicyPort
	Metrics  ports.MetricsPort
	Clock    func() time.Time
}

type assemblyStep struct {
	name    string
	path    string
	enabled bool
	run     func(ctx context.Context, env StageEnv, doc *types.Document) (int, error)
}

// CheckInputs reports required inputs that are missing and inputs that
// cannot be combined.
func CheckInputs(inputs types.Inputs) error {
	var missing []string
	required := []struct {
		name string
		path string
	}{
		{"header", inputs.Header},
		{"gates", inputs.Gates},
		{"response_functions", inputs.ResponseFunctions},
		{"gate_parts", inputs.GateParts},
		{"parts", inputs.Parts},
	}
	for _, input := range required {
		if input.path == "" {
			missing = append(missing, input.name)
		}
	}
	if len(missing) > 0 {
		return &MissingInputError{Inputs: missing}
	}
	if inputs.MotifLibrary != "" && inputs.StdMotifLibrary {
		return &ConflictingInputError{First: "motif_library", Second: "std_motif_library"}
	}
	return nil
}

// Assemble builds the document from inputs. Any fatal error discards the
// partial document; warnings and per-stage counts come back in the report.
func (a Assembler) Assemble(ctx context.Context, inputs types.Inputs) (*types.Document, types.BuildReport, error) {
	if err := CheckInputs(inputs); err != nil {
		return nil, types.BuildReport{}, err
	}
	metrics := a.Metrics
	if metrics == nil {
		metrics = discardMetrics{}
	}
	diagnostics := &Diagnostics{}
	env := StageEnv{Policy: a.Policy, Diagnostics: diagnostics, Clock: a.Clock}
	doc := types.NewDocument()
	report := types.BuildReport{}

	for _, step := range a.steps(inputs) {
		if !step.enabled {
			continue
		}
		assert.NotEmpty(ctx, step.name, "stage name must be set")
		started := time.Now()
		before := doc.Len()
		count, err := step.run(ctx, env, doc)
		if err != nil {
			log.Ctx(ctx).Debug().Str("stage", step.name).Str("file", step.path).Err(err).Msg("stage failed")
			return nil, types.BuildReport{Warnings: diagnostics.Warnings()}, err
		}
		metrics.ObserveStage(step.name, count, time.Since(started))
		summary := types.StageSummary{
			Stage:       step.name,
			File:        step.path,
			Rows:        count,
			Collections: doc.Len() - before,
		}
		report.Stages = append(report.Stages, summary)
		log.Ctx(ctx).Debug().
			Str("stage", summary.Stage).
			Str("file", summary.File).
			Int("rows", summary.Rows).
			Int("collections", summary.Collections).
			Msg("stage applied")
	}

	Lint(ctx, doc, diagnostics)
	report.Warnings = diagnostics.Warnings()
	for _, warning := range report.Warnings {
		metrics.CountWarning(warning.Code)
	}
	for _, kind := range types.KnownKinds {
		metrics.SetCollections(kind, len(doc.OfKind(kind)))
	}
	return doc, report, nil
}

func (a Assembler) steps(inputs types.Inputs) []assemblyStep {
	motif := inputs.MotifLibrary
	if inputs.StdMotifLibrary {
		motif = ""
	}
	return []assemblyStep{
		a.tableStep("header", inputs.Header, ApplyHeader),
		a.tableStep("measurement_std", inputs.MeasurementStd, ApplyMeasurementStd),
		{
			name:    "measurement_plasmid",
			path:    inputs.MeasurementPlasmid,
			enabled: inputs.MeasurementPlasmid != "",
			run: func(ctx context.Context, env StageEnv, doc *types.Document) (int, error) {
				lines, err := a.Plasmids.ReadPlasmid(ctx, inputs.MeasurementPlasmid)
				if err != nil {
					return 0, err
				}
				return ApplyMeasurementPlasmid(ctx, env, lines, doc)
			},
		},
		a.tableStep("logic_constraints", inputs.LogicConstraints, ApplyLogicConstraints),
		{
			name:    "motif_library",
			path:    motif,
			enabled: inputs.MotifLibrary != "" || inputs.StdMotifLibrary,
			run: func(ctx context.Context, env StageEnv, doc *types.Document) (int, error) {
				return 0, ApplyMotifLibrary(motif)
			},
		},
		a.tableStep("gates", inputs.Gates, ApplyGates),
		a.tableStep("response_functions", inputs.ResponseFunctions, ApplyResponseFunctions),
		a.tableStep("gate_parts", inputs.GateParts, ApplyGateParts),
		a.tableStep("parts", inputs.Parts, ApplyParts),
		a.tableStep("toxicity", inputs.Toxicity, ApplyToxicity),
		a.tableStep("cytometry", inputs.Cytometry, ApplyCytometry),
		a.textStep("part_placement_rules", inputs.PartPlacementRules, ApplyPartPlacementRules),
		a.textStep("gate_placement_rules", inputs.GatePlacementRules, ApplyGatePlacementRules),
	}
}

func (a Assembler) tableStep(name string, path string, apply TableStage) assemblyStep {
	return assemblyStep{
		name:    name,
		path:    path,
		enabled: path != "",
		run: func(ctx context.Context, env StageEnv, doc *types.Document) (int, error) {
			table, err := a.Tables.ReadTable(ctx, path)
			if err != nil {
				return 0, err
			}
			return apply(ctx, env, table, doc)
		},
	}
}

func (a Assembler) textStep(name string, path string, apply TextStage) assemblyStep {
	return assemblyStep{
		name:    name,
		path:    path,
		enabled: path != "",
		run: func(ctx context.Context, env StageEnv, doc *types.Document) (int, error) {
			lines, err := a.Texts.ReadLines(ctx, path)
			if err != nil {
				return 0, err
			}
			return apply(ctx, env, lines, doc)
		},
	}
}

type discardMetrics struct{}

func (discardMetrics) ObserveStage(string, int, time.Duration) {}
func (discardMetrics) CountWarning(types.WarningCode)          {}
func (discardMetrics) SetCollections(types.Kind, int)          {}
func (discardMetrics) Flush(context.Context) error             { return nil }
