package adapters

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"github.com/tim-tx/cello-utils/internal/ports"
	"github.com/tim-tx/cello-utils/internal/types"
)

type ManifestFileAdapter struct{}

func NewManifestFileAdapter() ManifestFileAdapter {
	return ManifestFileAdapter{}
}

var _ ports.ManifestPort = ManifestFileAdapter{}

// LoadManifest decodes a build manifest and resolves its input paths
// against the manifest's directory. Unknown keys are rejected.
func (a ManifestFileAdapter) LoadManifest(path string) (types.BuildManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.BuildManifest{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("manifest file not found").
			WithCause(err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	var manifest types.BuildManifest
	if err := decoder.Decode(&manifest); err != nil && !errors.Is(err, io.EOF) {
		return types.BuildManifest{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse manifest yaml").
			WithCause(err)
	}
	base := filepath.Dir(path)
	inputs := &manifest.Inputs
	for _, field := range []*string{
		&inputs.Header,
		&inputs.MeasurementStd,
		&inputs.MeasurementPlasmid,
		&inputs.LogicConstraints,
		&inputs.MotifLibrary,
		&inputs.Gates,
		&inputs.ResponseFunctions,
		&inputs.GateParts,
		&inputs.Parts,
		&inputs.Toxicity,
		&inputs.Cytometry,
		&inputs.PartPlacementRules,
		&inputs.GatePlacementRules,
	} {
		*field = resolveRelative(base, *field)
	}
	return manifest, nil
}

func resolveRelative(base string, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
