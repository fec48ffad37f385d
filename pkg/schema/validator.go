package schema

import (
	"fmt"
	"sort"
	"time"

	"meridian-hq/vigil/pkg/artifact"
	"meridian-hq/vigil/pkg/policy"
	"meridian-hq/vigil/pkg/verdict"
)

// Validator checks candidate observation records for conformance with the
// canonical observation schema. It is stateless per call and safe for
// concurrent use.
type Validator struct {
	policy *policy.Model
}

// NewValidator creates an observation-schema validator backed by the given
// policy model.
func NewValidator(pol *policy.Model) *Validator {
	return &Validator{policy: pol}
}

// CheckInline validates an in-memory collection of records.
func (v *Validator) CheckInline(records []map[string]any) verdict.Verdict {
	return v.CheckCandidates(artifact.Inline(records))
}

// CheckFile validates one artifact file containing a top-level array of
// observations. The error return is operational (unreadable or unparseable
// artifact), never a schema violation.
func (v *Validator) CheckFile(path string) (verdict.Verdict, error) {
	candidates, err := artifact.FromFile(path)
	if err != nil {
		return verdict.Verdict{}, err
	}
	return v.CheckCandidates(candidates), nil
}

// CheckDir validates every artifact file in a directory. Per-file read
// failures are returned beside the verdict: records from parseable files are
// still evaluated, and a caller must treat any read failure as an operational
// condition regardless of the verdict token.
func (v *Validator) CheckDir(dir string, extensions []string) (verdict.Verdict, []artifact.ReadFailure, error) {
	candidates, failures, err := artifact.FromDir(dir, extensions)
	if err != nil {
		return verdict.Verdict{}, nil, err
	}
	return v.CheckCandidates(candidates), failures, nil
}

// CheckCandidates validates normalized candidates independently and
// aggregates every violation across all of them, preserving candidate order.
// One malformed record never masks errors in sibling records.
func (v *Validator) CheckCandidates(candidates []artifact.Candidate) verdict.Verdict {
	var violations []verdict.Violation
	for _, c := range candidates {
		violations = append(violations, v.checkCandidate(c)...)
	}
	return verdict.Conformance(violations)
}

// checkCandidate validates a single record candidate. Violation order within
// a record: unexpected keys first (lexical order), then the field contract in
// declaration order, with provenance's nested violations at the provenance
// position.
func (v *Validator) checkCandidate(c artifact.Candidate) []verdict.Violation {
	record, ok := asRecord(c.Value)
	if !ok {
		return []verdict.Violation{{
			Field:    "record",
			Expected: "observation object",
			Actual:   stringify(c.Value),
			Location: c.Location,
		}}
	}

	violations := extraKeyViolations(record, observationFields, "no extra top-level fields", c.Location)

	for _, spec := range observationFields {
		val, present := record[spec.name]
		if !present {
			violations = append(violations, verdict.Violation{
				Field:    spec.name,
				Expected: "required, " + spec.expected,
				Actual:   "absent",
				Location: c.Location,
			})
			continue
		}
		violations = append(violations, v.checkField(spec, val, record, c.Location)...)
	}

	return violations
}

// checkField type/enum-checks a present field.
func (v *Validator) checkField(spec fieldSpec, val any, record map[string]any, location string) []verdict.Violation {
	mismatch := func() []verdict.Violation {
		return []verdict.Violation{{
			Field:    spec.name,
			Expected: spec.expected,
			Actual:   stringify(val),
			Location: location,
		}}
	}

	switch spec.kind {
	case kindTimestamp:
		// yaml.v3 resolves unquoted RFC 3339 scalars to time.Time before the
		// validator ever sees them; an already-parsed date-time is conformant.
		switch ts := val.(type) {
		case time.Time:
		case string:
			if _, err := time.Parse(time.RFC3339, ts); err != nil {
				return mismatch()
			}
		default:
			return mismatch()
		}

	case kindNonEmptyString:
		s, ok := val.(string)
		if !ok || s == "" {
			return mismatch()
		}

	case kindString:
		if _, ok := val.(string); !ok {
			return mismatch()
		}

	case kindSignalType:
		s, ok := val.(string)
		if !ok || !v.policy.IsValidSignalType(s) {
			return mismatch()
		}

	case kindScalar:
		if !isScalar(val) {
			return mismatch()
		}

	case kindStatus:
		s, ok := val.(string)
		if !ok || !v.policy.IsValidObservationStatus(s) {
			return mismatch()
		}

	case kindProvenance:
		prov, ok := asRecord(val)
		if !ok {
			return mismatch()
		}
		return v.checkProvenance(prov, record, location+".provenance")
	}

	return nil
}

// checkProvenance applies the nested field discipline to the provenance
// object, then the status-conditional failure_notes rule: failure_notes is
// required exactly when observation_status is "missing" or "blocked", and
// optional otherwise. When the record's status is itself absent or invalid
// the conditional rule is not applied.
func (v *Validator) checkProvenance(prov, record map[string]any, location string) []verdict.Violation {
	violations := extraKeyViolations(prov, provenanceFields, "no extra provenance fields", location)

	for _, spec := range provenanceFields {
		val, present := prov[spec.name]
		if !present {
			if spec.required {
				violations = append(violations, verdict.Violation{
					Field:    spec.name,
					Expected: "required, " + spec.expected,
					Actual:   "absent",
					Location: location,
				})
			}
			continue
		}
		violations = append(violations, v.checkField(spec, val, record, location)...)
	}

	if v.failureNotesRequired(record) {
		if _, present := prov["failure_notes"]; !present {
			violations = append(violations, verdict.Violation{
				Field:    "failure_notes",
				Expected: "required when observation_status is missing or blocked, string",
				Actual:   "absent",
				Location: location,
			})
		}
	}

	return violations
}

func (v *Validator) failureNotesRequired(record map[string]any) bool {
	status, ok := record["observation_status"].(string)
	if !ok {
		return false
	}
	return status == string(policy.StatusMissing) || status == string(policy.StatusBlocked)
}

// extraKeyViolations flags every key outside the field table, in lexical
// order (decoded maps carry no source order).
func extraKeyViolations(record map[string]any, fields []fieldSpec, expected, location string) []verdict.Violation {
	known := make(map[string]struct{}, len(fields))
	for _, spec := range fields {
		known[spec.name] = struct{}{}
	}

	var extras []string
	for key := range record {
		if _, ok := known[key]; !ok {
			extras = append(extras, key)
		}
	}
	sort.Strings(extras)

	violations := make([]verdict.Violation, 0, len(extras))
	for _, key := range extras {
		violations = append(violations, verdict.Violation{
			Field:    key,
			Expected: expected,
			Actual:   "present",
			Location: location,
		})
	}
	return violations
}

// asRecord converts a decoded candidate value to a string-keyed map. YAML
// decoders may produce map[any]any for nested objects.
func asRecord(val any) (map[string]any, bool) {
	switch m := val.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		record := make(map[string]any, len(m))
		for k, v := range m {
			key, ok := k.(string)
			if !ok {
				return nil, false
			}
			record[key] = v
		}
		return record, true
	default:
		return nil, false
	}
}

// isScalar reports whether a decoded signal_value is a numeric or string
// scalar. JSON decodes numbers as float64; YAML as int or float64.
func isScalar(val any) bool {
	switch val.(type) {
	case string, int, int32, int64, uint, uint32, uint64, float32, float64:
		return true
	default:
		return false
	}
}

// stringify renders an offending value for a violation entry.
func stringify(val any) string {
	if val == nil {
		return "null"
	}
	switch val.(type) {
	case map[string]any, map[any]any:
		return "object"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%v", val)
	}
}
