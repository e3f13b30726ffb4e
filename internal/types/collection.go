package types

import (
	"encoding/json"
	"strconv"
)

// Collection is one tagged record of a Document. Key is the record's
// identity within its kind; singletons use the empty key.
type Collection interface {
	Kind() Kind
	Key() string
}

type Header struct {
	Collection  Kind     `json:"collection"`
	Description string   `json:"description,omitempty"`
	Version     string   `json:"version,omitempty"`
	Date        string   `json:"date,omitempty"`
	Author      []string `json:"author"`
	Organism    string   `json:"organism,omitempty"`
	Genome      string   `json:"genome,omitempty"`
	Media       string   `json:"media,omitempty"`
	Temperature string   `json:"temperature,omitempty"`
	Growth      string   `json:"growth,omitempty"`
}

func NewHeader() *Header {
	return &Header{Collection: KindHeader, Author: []string{}}
}

func (h *Header) Kind() Kind  { return KindHeader }
func (h *Header) Key() string { return "" }

type MeasurementStd struct {
	Collection                Kind     `json:"collection"`
	SignalCarrierUnits        string   `json:"signal_carrier_units,omitempty"`
	NormalizationInstructions string   `json:"normalization_instructions,omitempty"`
	PlasmidDescription        string   `json:"plasmid_description,omitempty"`
	PlasmidSequence           []string `json:"plasmid_sequence"`
}

func NewMeasurementStd() *MeasurementStd {
	return &MeasurementStd{Collection: KindMeasurementStd, PlasmidSequence: []string{}}
}

func (m *MeasurementStd) Kind() Kind  { return KindMeasurementStd }
func (m *MeasurementStd) Key() string { return "" }

// MaxInstances is either a count or a boolean availability flag.
type MaxInstances struct {
	Count   int
	IsBool  bool
	Allowed bool
}

func (m MaxInstances) MarshalJSON() ([]byte, error) {
	if m.IsBool {
		return json.Marshal(m.Allowed)
	}
	return []byte(strconv.Itoa(m.Count)), nil
}

type GateAvailability struct {
	Type         string       `json:"type"`
	MaxInstances MaxInstances `json:"max_instances"`
}

type LogicConstraints struct {
	Collection     Kind               `json:"collection"`
	AvailableGates []GateAvailability `json:"available_gates"`
}

func NewLogicConstraints() *LogicConstraints {
	return &LogicConstraints{Collection: KindLogicConstraints, AvailableGates: []GateAvailability{}}
}

func (l *LogicConstraints) Kind() Kind  { return KindLogicConstraints }
func (l *LogicConstraints) Key() string { return "" }

type Gate struct {
	Collection   Kind   `json:"collection"`
	Regulator    string `json:"regulator"`
	GroupName    string `json:"group_name"`
	GateName     string `json:"gate_name"`
	GateType     string `json:"gate_type"`
	System       string `json:"system"`
	ColorHexcode string `json:"color_hexcode"`
}

func NewGate(name string) *Gate {
	return &Gate{Collection: KindGates, GateName: name}
}

func (g *Gate) Kind() Kind  { return KindGates }
func (g *Gate) Key() string { return g.GateName }

type Variable struct {
	Name         string  `json:"name"`
	OffThreshold float64 `json:"off_threshold"`
	OnThreshold  float64 `json:"on_threshold"`
}

type Parameter struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type ResponseFunction struct {
	Collection Kind        `json:"collection"`
	GateName   string      `json:"gate_name"`
	Equation   string      `json:"equation"`
	Variables  []Variable  `json:"variables"`
	Parameters []Parameter `json:"parameters"`
}

func NewResponseFunction(gateName string) *ResponseFunction {
	return &ResponseFunction{
		Collection: KindResponseFunctions,
		GateName:   gateName,
		Variables:  []Variable{},
		Parameters: []Parameter{},
	}
}

func (r *ResponseFunction) Kind() Kind  { return KindResponseFunctions }
func (r *ResponseFunction) Key() string { return r.GateName }

type ExpressionCassette struct {
	MapsToVariable string   `json:"maps_to_variable"`
	CassetteParts  []string `json:"cassette_parts"`
}

type GateParts struct {
	Collection          Kind                 `json:"collection"`
	GateName            string               `json:"gate_name"`
	ExpressionCassettes []ExpressionCassette `json:"expression_cassettes"`
	Promoter            string               `json:"promoter"`
}

func NewGateParts(gateName string) *GateParts {
	return &GateParts{
		Collection:          KindGateParts,
		GateName:            gateName,
		ExpressionCassettes: []ExpressionCassette{},
	}
}

func (g *GateParts) Kind() Kind  { return KindGateParts }
func (g *GateParts) Key() string { return g.GateName }

// Cassette returns the cassette mapped to variable, if any.
func (g *GateParts) Cassette(variable string) (ExpressionCassette, bool) {
	for _, cassette := range g.ExpressionCassettes {
		if cassette.MapsToVariable == variable {
			return cassette, true
		}
	}
	return ExpressionCassette{}, false
}

type Part struct {
	Collection  Kind   `json:"collection"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	DNASequence string `json:"dnasequence"`
}

func NewPart(name string) *Part {
	return &Part{Collection: KindParts, Name: name}
}

func (p *Part) Kind() Kind  { return KindParts }
func (p *Part) Key() string { return p.Name }

type GateToxicity struct {
	Collection     Kind      `json:"collection"`
	GateName       string    `json:"gate_name"`
	MapsToVariable string    `json:"maps_to_variable"`
	Input          []float64 `json:"input"`
	Growth         []float64 `json:"growth"`
}

func NewGateToxicity(gateName string, variable string) *GateToxicity {
	return &GateToxicity{
		Collection:     KindGateToxicity,
		GateName:       gateName,
		MapsToVariable: variable,
		Input:          []float64{},
		Growth:         []float64{},
	}
}

func (t *GateToxicity) Kind() Kind  { return KindGateToxicity }
func (t *GateToxicity) Key() string { return ToxicityKey(t.GateName, t.MapsToVariable) }

// ToxicityKey joins the two halves of a toxicity curve's identity.
func ToxicityKey(gateName string, variable string) string {
	return gateName + "/" + variable
}

type CytometryPoint struct {
	MapsToVariable string    `json:"maps_to_variable"`
	Input          float64   `json:"input"`
	OutputBins     []float64 `json:"output_bins"`
	OutputCounts   []float64 `json:"output_counts"`
}

type cytometryPointKey struct {
	variable string
	input    float64
}

type GateCytometry struct {
	Collection    Kind             `json:"collection"`
	GateName      string           `json:"gate_name"`
	CytometryData []CytometryPoint `json:"cytometry_data"`

	points map[cytometryPointKey]int
}

func NewGateCytometry(gateName string) *GateCytometry {
	return &GateCytometry{
		Collection:    KindGateCytometry,
		GateName:      gateName,
		CytometryData: []CytometryPoint{},
		points:        map[cytometryPointKey]int{},
	}
}

func (c *GateCytometry) Kind() Kind  { return KindGateCytometry }
func (c *GateCytometry) Key() string { return c.GateName }

// Point returns the index of the (variable, input) point, creating it at
// the end of CytometryData when absent.
func (c *GateCytometry) Point(variable string, input float64) int {
	if c.points == nil {
		c.points = map[cytometryPointKey]int{}
		for idx, point := range c.CytometryData {
			c.points[cytometryPointKey{point.MapsToVariable, point.Input}] = idx
		}
	}
	key := cytometryPointKey{variable: variable, input: input}
	if idx, ok := c.points[key]; ok {
		return idx
	}
	c.CytometryData = append(c.CytometryData, CytometryPoint{
		MapsToVariable: variable,
		Input:          input,
		OutputBins:     []float64{},
		OutputCounts:   []float64{},
	})
	idx := len(c.CytometryData) - 1
	c.points[key] = idx
	return idx
}

type EugeneRules struct {
	Collection      Kind     `json:"collection"`
	EugenePartRules []string `json:"eugene_part_rules"`
	EugeneGateRules []string `json:"eugene_gate_rules"`
}

func NewEugeneRules() *EugeneRules {
	return &EugeneRules{
		Collection:      KindEugeneRules,
		EugenePartRules: []string{},
		EugeneGateRules: []string{},
	}
}

func (e *EugeneRules) Kind() Kind  { return KindEugeneRules }
func (e *EugeneRules) Key() string { return "" }
