package types

const (
	ManifestAPIVersion = "v1"
	ManifestKind       = "ucf-build"
)

type Metadata struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

// Inputs names the source file of every stage. Empty paths mean the stage
// is skipped; required stages are checked by the assembler.
type Inputs struct {
	Header             string `yaml:"header"`
	MeasurementStd     string `yaml:"measurement_std,omitempty"`
	MeasurementPlasmid string `yaml:"measurement_plasmid,omitempty"`
	LogicConstraints   string `yaml:"logic_constraints,omitempty"`
	MotifLibrary       string `yaml:"motif_library,omitempty"`
	StdMotifLibrary    bool   `yaml:"std_motif_library,omitempty"`
	Gates              string `yaml:"gates"`
	ResponseFunctions  string `yaml:"response_functions"`
	GateParts          string `yaml:"gate_parts"`
	Parts              string `yaml:"parts"`
	Toxicity           string `yaml:"toxicity,omitempty"`
	Cytometry          string `yaml:"cytometry,omitempty"`
	PartPlacementRules string `yaml:"part_placement_rules,omitempty"`
	GatePlacementRules string `yaml:"gate_placement_rules,omitempty"`
}

// BuildManifest is the YAML file that can stand in for the build flags.
type BuildManifest struct {
	APIVersion string            `yaml:"api_version"`
	Kind       string            `yaml:"kind"`
	Metadata   Metadata          `yaml:"metadata"`
	Strict     bool              `yaml:"strict,omitempty"`
	// Duplicates overrides the duplicate action per context, e.g.
	// `parts: reject`.
	Duplicates map[string]string `yaml:"duplicates,omitempty"`
	Inputs     Inputs            `yaml:"inputs"`
}
