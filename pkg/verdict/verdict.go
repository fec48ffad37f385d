package verdict

// Token is the bare status of a validation call. Each validator uses one of two
// mutually exclusive token pairs.
type Token string

const (
	// TokenAdmissible indicates an admissible frame/signal-type combination.
	TokenAdmissible Token = "ADMISSIBLE"
	// TokenNotAdmissible indicates a disallowed frame/signal-type combination.
	TokenNotAdmissible Token = "NOT_ADMISSIBLE"
	// TokenValid indicates a schema-conformant observation artifact.
	TokenValid Token = "VALID"
	// TokenInvalid indicates a schema-violating observation artifact.
	TokenInvalid Token = "INVALID"
)

// Violation records a single rule breach. Field names and locations use the
// wire-level spelling of the observation contract (e.g. "signal_type",
// "records.json[2].provenance").
type Violation struct {
	Field    string `json:"field"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
	Location string `json:"location"`
}

// Verdict is the outcome of one validation call: a status token plus the full,
// ordered violation list. The positive token always carries an empty list and
// the negative token a non-empty one; the constructors enforce this.
//
// Verdicts are plain values. Identical inputs to a validator produce identical
// verdicts; anything call-specific (report IDs, timestamps) belongs to Report.
type Verdict struct {
	Token      Token       `json:"token"`
	Violations []Violation `json:"violations,omitempty"`
}

// Admissibility builds a frame-admissibility verdict from the accumulated
// violation list.
func Admissibility(violations []Violation) Verdict {
	return build(TokenAdmissible, TokenNotAdmissible, violations)
}

// Conformance builds an observation-schema verdict from the accumulated
// violation list.
func Conformance(violations []Violation) Verdict {
	return build(TokenValid, TokenInvalid, violations)
}

func build(positive, negative Token, violations []Violation) Verdict {
	if len(violations) == 0 {
		return Verdict{Token: positive}
	}
	return Verdict{Token: negative, Violations: violations}
}

// OK reports whether the verdict carries a positive token.
func (v Verdict) OK() bool {
	return v.Token == TokenAdmissible || v.Token == TokenValid
}
