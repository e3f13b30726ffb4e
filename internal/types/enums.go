package types

// Kind is the `collection` discriminator carried by every document record.
type Kind string

const (
	KindHeader            Kind = "header"
	KindMeasurementStd    Kind = "measurement_std"
	KindLogicConstraints  Kind = "logic_constraints"
	KindMotif             Kind = "motif"
	KindGates             Kind = "gates"
	KindResponseFunctions Kind = "response_functions"
	KindGateParts         Kind = "gate_parts"
	KindParts             Kind = "parts"
	KindGateToxicity      Kind = "gate_toxicity"
	KindGateCytometry     Kind = "gate_cytometry"
	KindEugeneRules       Kind = "eugene_rules"
)

// KnownKinds lists every kind the assembler can emit, in assembly order.
var KnownKinds = []Kind{
	KindHeader,
	KindMeasurementStd,
	KindLogicConstraints,
	KindMotif,
	KindGates,
	KindResponseFunctions,
	KindGateParts,
	KindParts,
	KindGateToxicity,
	KindGateCytometry,
	KindEugeneRules,
}

func (k Kind) Known() bool {
	for _, known := range KnownKinds {
		if k == known {
			return true
		}
	}
	return false
}

// Singleton reports whether at most one collection of the kind may exist.
func (k Kind) Singleton() bool {
	switch k {
	case KindHeader, KindMeasurementStd, KindLogicConstraints, KindEugeneRules:
		return true
	default:
		return false
	}
}

type WarningCode string

const (
	WarningDuplicateTolerated  WarningCode = "duplicate_tolerated"
	WarningDuplicateGate       WarningCode = "duplicate_gate"
	WarningUnrecognizedKey     WarningCode = "unrecognized_key"
	WarningUnresolvedReference WarningCode = "unresolved_reference"
)

// DuplicateAction says what a stage does when a unique key reappears.
type DuplicateAction string

const (
	// DuplicateReject aborts the run with a DuplicateKeyError.
	DuplicateReject DuplicateAction = "reject"
	// DuplicateTolerate keeps the first occurrence and warns.
	DuplicateTolerate DuplicateAction = "tolerate"
	// DuplicateKeep keeps both occurrences and warns.
	DuplicateKeep DuplicateAction = "keep"
)

// DuplicateContext names a place where a unique key can reappear.
type DuplicateContext string

const (
	DuplicateGate             DuplicateContext = "gates"
	DuplicateResponseFunction DuplicateContext = "response_functions"
	DuplicateCassette         DuplicateContext = "gate_parts.cassette"
	DuplicatePromoter         DuplicateContext = "gate_parts.promoter"
	DuplicatePart             DuplicateContext = "parts"
	DuplicateMetadataKey      DuplicateContext = "metadata_key"
)

var DuplicateContexts = []DuplicateContext{
	DuplicateGate,
	DuplicateResponseFunction,
	DuplicateCassette,
	DuplicatePromoter,
	DuplicatePart,
	DuplicateMetadataKey,
}
