package admission

import (
	"fmt"

	"meridian-hq/vigil/pkg/policy"
	"meridian-hq/vigil/pkg/verdict"
)

// Validator decides whether a set of signal types is admissible for a named
// analytical frame. It is stateless per call and safe for concurrent use.
type Validator struct {
	policy *policy.Model
}

// NewValidator creates a frame-admissibility validator backed by the given
// policy model.
func NewValidator(pol *policy.Model) *Validator {
	return &Validator{policy: pol}
}

// Check validates frameID and signalTypes against the frame→signal policy.
//
// An unknown frame yields exactly one violation and short-circuits: an unknown
// frame has no defined allowed set, so signal types are not evaluated. For a
// known frame every entry of signalTypes is checked independently in input
// order, duplicates included. An empty signalTypes list is vacuously
// admissible; the contract forbids disallowed entries, it does not require the
// allowed entry to be present.
func (v *Validator) Check(frameID string, signalTypes []string) verdict.Verdict {
	allowed, err := v.policy.AllowedSignalTypes(frameID)
	if err != nil {
		return verdict.Admissibility([]verdict.Violation{{
			Field:    "frame_id",
			Expected: "one of the closed frame set",
			Actual:   frameID,
			Location: "input",
		}})
	}

	var violations []verdict.Violation
	for i, st := range signalTypes {
		loc := fmt.Sprintf("signal_types[%d]", i)

		if !v.policy.IsValidSignalType(st) {
			violations = append(violations, verdict.Violation{
				Field:    "signal_type",
				Expected: "member of closed signal-type enum",
				Actual:   st,
				Location: loc,
			})
			continue
		}

		if !contains(allowed, policy.SignalType(st)) {
			violations = append(violations, verdict.Violation{
				Field:    "signal_type",
				Expected: fmt.Sprintf("one of %s", formatAllowed(allowed)),
				Actual:   st,
				Location: loc,
			})
		}
	}

	return verdict.Admissibility(violations)
}

func contains(set []policy.SignalType, st policy.SignalType) bool {
	for _, s := range set {
		if s == st {
			return true
		}
	}
	return false
}

func formatAllowed(allowed []policy.SignalType) string {
	s := "{"
	for i, st := range allowed {
		if i > 0 {
			s += ", "
		}
		s += string(st)
	}
	return s + "}"
}
