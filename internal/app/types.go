package app

import "github.com/tim-tx/cello-utils/internal/types"

// AssembleRequest names the inputs of one assembly. Inputs set here take
// precedence over the manifest's.
type AssembleRequest struct {
	ManifestPath string
	Inputs       types.Inputs
	Strict       bool
}

type BuildRequest struct {
	AssembleRequest
	OutputPath      string
	CatalogPath     string
	CatalogName     string
	MetricsTextfile string
}

type BuildResult struct {
	OutputPath  string
	Collections int
	Report      types.BuildReport
	Catalog     *types.CatalogDocument
}

type ValidateRequest struct {
	AssembleRequest
}

type ValidateResult struct {
	Name        string
	Collections int
	Report      types.BuildReport
}

type InspectRequest struct {
	DocumentPath string
	Gate         string
	Dump         bool
}

type KindCount struct {
	Kind  types.Kind
	Count int
}

// GateDetail gathers everything a document says about one gate.
type GateDetail struct {
	Name              string
	GateType          string
	Equation          string
	Parameters        map[string]float64
	Promoter          string
	Cassettes         map[string][]string
	CytometryInputs   map[string][]float64
	ToxicityVariables []string
}

type InspectResult struct {
	Collections int
	Kinds       []KindCount
	Gate        *GateDetail
	Dump        string
}

type QueryRequest struct {
	DocumentPath string
	Path         string
}

type QueryResult struct {
	Matches []any
}

type CatalogListRequest struct {
	DBPath string
}

type CatalogListResult struct {
	Documents []types.CatalogDocument
}

type CatalogShowRequest struct {
	DBPath string
	Name   string
}

type CatalogShowResult struct {
	Entries []types.CatalogEntry
}
