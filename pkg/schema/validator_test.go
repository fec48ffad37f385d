package schema

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"meridian-hq/vigil/pkg/artifact"
	"meridian-hq/vigil/pkg/policy"
	"meridian-hq/vigil/pkg/verdict"
)

// validRecord returns a fully conformant observation. Tests mutate copies.
func validRecord() map[string]any {
	return map[string]any{
		"observation_time":   "2026-08-25T14:30:00Z",
		"market_object":      "sku-4417",
		"actor_id":           "actor-9",
		"signal_type":        "price_observed",
		"signal_value":       19.99,
		"observation_status": "observed",
		"provenance": map[string]any{
			"source":            "retail-panel",
			"collection_method": "scrape",
			"freshness_class":   "daily",
			"reliability_class": "high",
		},
	}
}

func mutated(mutate func(rec map[string]any)) map[string]any {
	rec := validRecord()
	mutate(rec)
	return rec
}

func newValidator() *Validator {
	return NewValidator(policy.Default())
}

func TestValidator_ValidRecord(t *testing.T) {
	v := newValidator()

	got := v.CheckInline([]map[string]any{validRecord()})
	if got.Token != verdict.TokenValid {
		t.Fatalf("Token = %q with violations %+v, want VALID", got.Token, got.Violations)
	}
	if len(got.Violations) != 0 {
		t.Errorf("valid record produced violations: %+v", got.Violations)
	}
}

func TestValidator_RequiredFields(t *testing.T) {
	required := []string{
		"observation_time",
		"market_object",
		"actor_id",
		"signal_type",
		"signal_value",
		"provenance",
		"observation_status",
	}

	v := newValidator()
	for _, field := range required {
		t.Run("missing "+field, func(t *testing.T) {
			rec := mutated(func(r map[string]any) { delete(r, field) })

			got := v.CheckInline([]map[string]any{rec})
			if got.Token != verdict.TokenInvalid {
				t.Fatalf("Token = %q, want INVALID", got.Token)
			}
			if len(got.Violations) != 1 {
				t.Fatalf("got %d violations %+v, want exactly 1", len(got.Violations), got.Violations)
			}
			viol := got.Violations[0]
			if viol.Field != field {
				t.Errorf("violation field = %q, want %q", viol.Field, field)
			}
			if viol.Actual != "absent" {
				t.Errorf("violation actual = %q, want absent", viol.Actual)
			}
			if !strings.HasPrefix(viol.Expected, "required, ") {
				t.Errorf("violation expected = %q, want required-prefixed", viol.Expected)
			}
			if viol.Location != "inline[0]" {
				t.Errorf("violation location = %q, want inline[0]", viol.Location)
			}
		})
	}
}

func TestValidator_FieldTypeChecks(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(rec map[string]any)
		wantField string
	}{
		{
			name:      "observation_time not a timestamp",
			mutate:    func(r map[string]any) { r["observation_time"] = "yesterday" },
			wantField: "observation_time",
		},
		{
			name:      "observation_time not a string",
			mutate:    func(r map[string]any) { r["observation_time"] = 1724594400 },
			wantField: "observation_time",
		},
		{
			name:      "market_object empty",
			mutate:    func(r map[string]any) { r["market_object"] = "" },
			wantField: "market_object",
		},
		{
			name:      "actor_id not a string",
			mutate:    func(r map[string]any) { r["actor_id"] = 42 },
			wantField: "actor_id",
		},
		{
			name:      "signal_type outside enum",
			mutate:    func(r map[string]any) { r["signal_type"] = "sentiment_observed" },
			wantField: "signal_type",
		},
		{
			name:      "signal_value boolean",
			mutate:    func(r map[string]any) { r["signal_value"] = true },
			wantField: "signal_value",
		},
		{
			name:      "signal_value array",
			mutate:    func(r map[string]any) { r["signal_value"] = []any{1, 2} },
			wantField: "signal_value",
		},
		{
			name:      "signal_value null",
			mutate:    func(r map[string]any) { r["signal_value"] = nil },
			wantField: "signal_value",
		},
		{
			name:      "observation_status outside enum",
			mutate:    func(r map[string]any) { r["observation_status"] = "failed" },
			wantField: "observation_status",
		},
		{
			name:      "provenance not an object",
			mutate:    func(r map[string]any) { r["provenance"] = "retail-panel" },
			wantField: "provenance",
		},
	}

	v := newValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.CheckInline([]map[string]any{mutated(tt.mutate)})
			if got.Token != verdict.TokenInvalid {
				t.Fatalf("Token = %q, want INVALID", got.Token)
			}
			if len(got.Violations) != 1 {
				t.Fatalf("got %d violations %+v, want exactly 1", len(got.Violations), got.Violations)
			}
			if got.Violations[0].Field != tt.wantField {
				t.Errorf("violation field = %q, want %q", got.Violations[0].Field, tt.wantField)
			}
		})
	}
}

func TestValidator_SignalValueScalars(t *testing.T) {
	// Both numeric and categorical scalars are acceptable, with no further
	// constraint on value.
	for _, val := range []any{19.99, 7, "out_of_stock", "0"} {
		rec := mutated(func(r map[string]any) { r["signal_value"] = val })
		got := newValidator().CheckInline([]map[string]any{rec})
		if !got.OK() {
			t.Errorf("signal_value %v (%T) rejected: %+v", val, val, got.Violations)
		}
	}
}

func TestValidator_ExtraTopLevelKey(t *testing.T) {
	rec := mutated(func(r map[string]any) { r["confidence"] = 0.9 })

	got := newValidator().CheckInline([]map[string]any{rec})
	if got.Token != verdict.TokenInvalid {
		t.Fatalf("Token = %q, want INVALID", got.Token)
	}
	if len(got.Violations) != 1 {
		t.Fatalf("got %d violations %+v, want exactly 1", len(got.Violations), got.Violations)
	}
	want := verdict.Violation{
		Field:    "confidence",
		Expected: "no extra top-level fields",
		Actual:   "present",
		Location: "inline[0]",
	}
	if got.Violations[0] != want {
		t.Errorf("violation = %+v, want %+v", got.Violations[0], want)
	}
}

// A record missing provenance entirely yields exactly one violation; the
// validator must not descend into nested provenance checks.
func TestValidator_MissingProvenanceDoesNotCascade(t *testing.T) {
	rec := mutated(func(r map[string]any) { delete(r, "provenance") })

	got := newValidator().CheckInline([]map[string]any{rec})
	if len(got.Violations) != 1 {
		t.Fatalf("got %d violations %+v, want exactly 1", len(got.Violations), got.Violations)
	}
	if got.Violations[0].Field != "provenance" {
		t.Errorf("violation field = %q, want provenance", got.Violations[0].Field)
	}
}

func TestValidator_ProvenanceFields(t *testing.T) {
	v := newValidator()

	t.Run("missing required subfield", func(t *testing.T) {
		rec := mutated(func(r map[string]any) {
			delete(r["provenance"].(map[string]any), "freshness_class")
		})
		got := v.CheckInline([]map[string]any{rec})
		if len(got.Violations) != 1 {
			t.Fatalf("got %d violations %+v, want 1", len(got.Violations), got.Violations)
		}
		viol := got.Violations[0]
		if viol.Field != "freshness_class" {
			t.Errorf("violation field = %q, want freshness_class", viol.Field)
		}
		if viol.Location != "inline[0].provenance" {
			t.Errorf("violation location = %q, want inline[0].provenance", viol.Location)
		}
	})

	t.Run("extra subfield", func(t *testing.T) {
		rec := mutated(func(r map[string]any) {
			r["provenance"].(map[string]any)["vendor"] = "acme"
		})
		got := v.CheckInline([]map[string]any{rec})
		if len(got.Violations) != 1 {
			t.Fatalf("got %d violations %+v, want 1", len(got.Violations), got.Violations)
		}
		if got.Violations[0].Field != "vendor" || got.Violations[0].Location != "inline[0].provenance" {
			t.Errorf("violation = %+v", got.Violations[0])
		}
		if got.Violations[0].Expected != "no extra provenance fields" {
			t.Errorf("violation expected = %q, want no extra provenance fields", got.Violations[0].Expected)
		}
	})

	t.Run("subfield wrong type", func(t *testing.T) {
		rec := mutated(func(r map[string]any) {
			r["provenance"].(map[string]any)["source"] = 17
		})
		got := v.CheckInline([]map[string]any{rec})
		if len(got.Violations) != 1 || got.Violations[0].Field != "source" {
			t.Errorf("violations = %+v, want single source violation", got.Violations)
		}
	})
}

func TestValidator_FailureNotesConditional(t *testing.T) {
	withStatus := func(status string, notes any) map[string]any {
		return mutated(func(r map[string]any) {
			r["observation_status"] = status
			if notes != nil {
				r["provenance"].(map[string]any)["failure_notes"] = notes
			}
		})
	}

	tests := []struct {
		name      string
		record    map[string]any
		wantValid bool
		wantField string
	}{
		{
			name:      "blocked without failure_notes",
			record:    withStatus("blocked", nil),
			wantValid: false,
			wantField: "failure_notes",
		},
		{
			name:      "missing without failure_notes",
			record:    withStatus("missing", nil),
			wantValid: false,
			wantField: "failure_notes",
		},
		{
			name:      "observed without failure_notes",
			record:    withStatus("observed", nil),
			wantValid: true,
		},
		{
			name:      "blocked with failure_notes",
			record:    withStatus("blocked", "robots.txt disallows"),
			wantValid: true,
		},
		{
			name:      "observed with failure_notes is still valid (optional otherwise)",
			record:    withStatus("observed", "collected late"),
			wantValid: true,
		},
		{
			name:      "failure_notes must be a string when present",
			record:    withStatus("blocked", 17),
			wantValid: false,
			wantField: "failure_notes",
		},
	}

	v := newValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.CheckInline([]map[string]any{tt.record})
			if got.OK() != tt.wantValid {
				t.Fatalf("OK() = %v with violations %+v, want %v", got.OK(), got.Violations, tt.wantValid)
			}
			if !tt.wantValid {
				if len(got.Violations) != 1 || got.Violations[0].Field != tt.wantField {
					t.Errorf("violations = %+v, want single %s violation", got.Violations, tt.wantField)
				}
			}
		})
	}
}

// When observation_status is itself invalid the conditional failure_notes
// rule is not applied; only the status violation is reported.
func TestValidator_InvalidStatusSkipsConditionalRule(t *testing.T) {
	rec := mutated(func(r map[string]any) { r["observation_status"] = "exploded" })

	got := newValidator().CheckInline([]map[string]any{rec})
	if len(got.Violations) != 1 || got.Violations[0].Field != "observation_status" {
		t.Errorf("violations = %+v, want single observation_status violation", got.Violations)
	}
}

// Sibling records are validated independently; one malformed record never
// masks errors in another, and violations preserve candidate order.
func TestValidator_SiblingIndependence(t *testing.T) {
	records := []map[string]any{
		mutated(func(r map[string]any) { delete(r, "actor_id") }),
		validRecord(),
		mutated(func(r map[string]any) { r["signal_type"] = "bogus" }),
	}

	got := newValidator().CheckInline(records)
	if len(got.Violations) != 2 {
		t.Fatalf("got %d violations %+v, want 2", len(got.Violations), got.Violations)
	}
	if got.Violations[0].Location != "inline[0]" || got.Violations[0].Field != "actor_id" {
		t.Errorf("violation[0] = %+v", got.Violations[0])
	}
	if got.Violations[1].Location != "inline[2]" || got.Violations[1].Field != "signal_type" {
		t.Errorf("violation[1] = %+v", got.Violations[1])
	}
}

func TestValidator_NonObjectCandidate(t *testing.T) {
	got := newValidator().CheckCandidates([]artifact.Candidate{
		{Location: "inline[0]", Value: "not an object"},
	})
	if len(got.Violations) != 1 {
		t.Fatalf("got %d violations, want 1", len(got.Violations))
	}
	if got.Violations[0].Field != "record" || got.Violations[0].Expected != "observation object" {
		t.Errorf("violation = %+v", got.Violations[0])
	}
}

func TestValidator_Idempotent(t *testing.T) {
	records := []map[string]any{
		mutated(func(r map[string]any) { delete(r, "provenance") }),
		mutated(func(r map[string]any) { r["extra"] = 1 }),
	}

	v := newValidator()
	first := v.CheckInline(records)
	second := v.CheckInline(records)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("verdicts differ across identical calls:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestValidator_CheckFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "observations.json")
	content := `[
		{
			"observation_time": "2026-08-25T14:30:00Z",
			"market_object": "sku-4417",
			"actor_id": "actor-9",
			"signal_type": "price_observed",
			"signal_value": 19.99,
			"observation_status": "observed",
			"provenance": {
				"source": "retail-panel",
				"collection_method": "scrape",
				"freshness_class": "daily",
				"reliability_class": "high"
			}
		},
		{"market_object": "sku-1"}
	]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	v := newValidator()
	got, err := v.CheckFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Token != verdict.TokenInvalid {
		t.Fatalf("Token = %q, want INVALID", got.Token)
	}
	// Second record misses six of seven required fields.
	if len(got.Violations) != 6 {
		t.Fatalf("got %d violations %+v, want 6", len(got.Violations), got.Violations)
	}
	for _, viol := range got.Violations {
		if !strings.Contains(viol.Location, "observations.json[1]") {
			t.Errorf("violation location = %q, want file-and-index location", viol.Location)
		}
	}
}

// YAML resolves unquoted RFC 3339 scalars to time.Time; such records are
// conformant even though observation_time never arrives as a string.
func TestValidator_CheckFile_YAMLUnquotedTimestamp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "observations.yaml")
	content := `- observation_time: 2026-08-25T14:30:00Z
  market_object: sku-4417
  actor_id: actor-9
  signal_type: price_observed
  signal_value: 19.99
  observation_status: observed
  provenance:
    source: retail-panel
    collection_method: scrape
    freshness_class: daily
    reliability_class: high
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := newValidator().CheckFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Token != verdict.TokenValid {
		t.Fatalf("Token = %q with violations %+v, want VALID", got.Token, got.Violations)
	}
}

func TestValidator_TimestampValueKinds(t *testing.T) {
	tests := []struct {
		name      string
		value     any
		wantValid bool
	}{
		{name: "parsed time value", value: time.Date(2026, 8, 25, 14, 30, 0, 0, time.UTC), wantValid: true},
		{name: "RFC 3339 string", value: "2026-08-25T14:30:00Z", wantValid: true},
		{name: "non-timestamp string", value: "yesterday", wantValid: false},
		{name: "integer epoch", value: 1724594400, wantValid: false},
	}

	v := newValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := mutated(func(r map[string]any) { r["observation_time"] = tt.value })
			got := v.CheckInline([]map[string]any{rec})
			if got.OK() != tt.wantValid {
				t.Errorf("OK() = %v with violations %+v, want %v", got.OK(), got.Violations, tt.wantValid)
			}
		})
	}
}

func TestValidator_CheckFile_OperationalFailure(t *testing.T) {
	v := newValidator()
	if _, err := v.CheckFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("want operational error for missing artifact, got verdict")
	}
}

// A directory mixing an unparseable file with a valid file reports the read
// failure without suppressing evaluation of the valid file.
func TestValidator_CheckDir_PartialArtifact(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte(`[{`), 0o644); err != nil {
		t.Fatal(err)
	}
	good := `[{"market_object": "sku-1"}]`
	if err := os.WriteFile(filepath.Join(dir, "good.json"), []byte(good), 0o644); err != nil {
		t.Fatal(err)
	}

	v := newValidator()
	got, failures, err := v.CheckDir(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(failures) != 1 {
		t.Fatalf("got %d read failures, want 1", len(failures))
	}
	if got.Token != verdict.TokenInvalid {
		t.Errorf("Token = %q, want INVALID from the evaluated file", got.Token)
	}
	if len(got.Violations) == 0 {
		t.Error("valid file's records were not evaluated")
	}
}
