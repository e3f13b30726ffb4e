package app

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/tim-tx/cello-utils/internal/core"
	"github.com/tim-tx/cello-utils/internal/ports"
	"github.com/tim-tx/cello-utils/internal/types"
)

type assembly struct {
	name   string
	doc    *types.Document
	report types.BuildReport
}

// assemble loads the optional manifest, merges explicit inputs over it and
// runs the assembler.
func (s Service) assemble(ctx context.Context, req AssembleRequest, metrics ports.MetricsPort) (assembly, error) {
	manifest := types.BuildManifest{}
	validator := core.NewManifestValidator()
	if path := strings.TrimSpace(req.ManifestPath); path != "" {
		loaded, err := s.Manifests.LoadManifest(path)
		if err != nil {
			return assembly{}, err
		}
		if err := validator.ValidateManifest(ctx, loaded); err != nil {
			return assembly{}, err
		}
		manifest = loaded
	}
	policy, err := validator.Policy(manifest, req.Strict)
	if err != nil {
		return assembly{}, err
	}
	inputs := mergeInputs(manifest.Inputs, req.Inputs)

	assembler := core.Assembler{
		Tables:   s.Tables,
		Texts:    s.Texts,
		Plasmids: s.Plasmids,
		Policy:   policy,
		Metrics:  metrics,
		Clock:    s.Clock,
	}
	doc, report, err := assembler.Assemble(ctx, inputs)
	if err != nil {
		return assembly{}, classify(err)
	}
	for _, warning := range report.Warnings {
		log.Ctx(ctx).Debug().Str("warning", warning.String()).Msg("assembly warning")
	}
	return assembly{name: documentName(manifest, doc), doc: doc, report: report}, nil
}

// mergeInputs overlays every non-empty override on base.
func mergeInputs(base types.Inputs, override types.Inputs) types.Inputs {
	merged := base
	pick := func(dst *string, value string) {
		if value = strings.TrimSpace(value); value != "" {
			*dst = value
		}
	}
	pick(&merged.Header, override.Header)
	pick(&merged.MeasurementStd, override.MeasurementStd)
	pick(&merged.MeasurementPlasmid, override.MeasurementPlasmid)
	pick(&merged.LogicConstraints, override.LogicConstraints)
	pick(&merged.MotifLibrary, override.MotifLibrary)
	pick(&merged.Gates, override.Gates)
	pick(&merged.ResponseFunctions, override.ResponseFunctions)
	pick(&merged.GateParts, override.GateParts)
	pick(&merged.Parts, override.Parts)
	pick(&merged.Toxicity, override.Toxicity)
	pick(&merged.Cytometry, override.Cytometry)
	pick(&merged.PartPlacementRules, override.PartPlacementRules)
	pick(&merged.GatePlacementRules, override.GatePlacementRules)
	merged.StdMotifLibrary = base.StdMotifLibrary || override.StdMotifLibrary
	return merged
}

// documentName prefers the manifest's name, then the header version.
func documentName(manifest types.BuildManifest, doc *types.Document) string {
	if name := strings.TrimSpace(manifest.Metadata.Name); name != "" {
		return name
	}
	for _, c := range doc.OfKind(types.KindHeader) {
		if header := c.(*types.Header); header.Version != "" {
			return header.Version
		}
	}
	return ""
}
