package schema

// fieldKind selects the type/enum check applied to a present field.
type fieldKind int

const (
	kindTimestamp fieldKind = iota
	kindNonEmptyString
	kindString
	kindSignalType
	kindScalar
	kindProvenance
	kindStatus
)

// fieldSpec is one entry of the declarative observation contract.
type fieldSpec struct {
	name     string
	kind     fieldKind
	required bool
	// expected is the human-readable type description carried into violations.
	expected string
}

// observationFields is the closed top-level field contract of an observation
// record. Declaration order here drives violation order within a record; any
// key outside this table is a violation, not a warning.
var observationFields = []fieldSpec{
	{name: "observation_time", kind: kindTimestamp, required: true, expected: "RFC 3339 timestamp"},
	{name: "market_object", kind: kindNonEmptyString, required: true, expected: "non-empty string"},
	{name: "actor_id", kind: kindNonEmptyString, required: true, expected: "non-empty string"},
	{name: "signal_type", kind: kindSignalType, required: true, expected: "member of closed signal-type enum"},
	{name: "signal_value", kind: kindScalar, required: true, expected: "numeric or string scalar"},
	{name: "provenance", kind: kindProvenance, required: true, expected: "object"},
	{name: "observation_status", kind: kindStatus, required: true, expected: "member of closed observation-status enum"},
}

// provenanceFields is the nested provenance contract. failure_notes is listed
// as optional here; its status-dependent requirement is applied separately.
var provenanceFields = []fieldSpec{
	{name: "source", kind: kindString, required: true, expected: "string"},
	{name: "collection_method", kind: kindString, required: true, expected: "string"},
	{name: "freshness_class", kind: kindString, required: true, expected: "string"},
	{name: "reliability_class", kind: kindString, required: true, expected: "string"},
	{name: "failure_notes", kind: kindString, required: false, expected: "string"},
}
