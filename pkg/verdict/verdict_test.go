package verdict

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestAdmissibility(t *testing.T) {
	tests := []struct {
		name       string
		violations []Violation
		wantToken  Token
		wantOK     bool
	}{
		{
			name:      "no violations",
			wantToken: TokenAdmissible,
			wantOK:    true,
		},
		{
			name: "one violation",
			violations: []Violation{
				{Field: "frame_id", Expected: "one of the closed frame set", Actual: "bogus", Location: "input"},
			},
			wantToken: TokenNotAdmissible,
			wantOK:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Admissibility(tt.violations)
			if v.Token != tt.wantToken {
				t.Errorf("Token = %q, want %q", v.Token, tt.wantToken)
			}
			if v.OK() != tt.wantOK {
				t.Errorf("OK() = %v, want %v", v.OK(), tt.wantOK)
			}
			if len(v.Violations) != len(tt.violations) {
				t.Errorf("Violations = %d entries, want %d", len(v.Violations), len(tt.violations))
			}
		})
	}
}

func TestConformance(t *testing.T) {
	if got := Conformance(nil).Token; got != TokenValid {
		t.Errorf("Conformance(nil).Token = %q, want %q", got, TokenValid)
	}

	viol := []Violation{{Field: "actor_id", Expected: "required, non-empty string", Actual: "absent", Location: "inline[0]"}}
	v := Conformance(viol)
	if v.Token != TokenInvalid {
		t.Errorf("Token = %q, want %q", v.Token, TokenInvalid)
	}
	if v.OK() {
		t.Error("OK() = true for invalid verdict")
	}
}

func TestWriteText(t *testing.T) {
	v := Conformance([]Violation{
		{Field: "signal_type", Expected: "member of closed signal-type enum", Actual: "bogus", Location: "records.json[1]"},
	})

	var buf bytes.Buffer
	if err := WriteText(&buf, v); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "INVALID\n") {
		t.Errorf("output does not start with bare token:\n%s", out)
	}
	for _, want := range []string{"signal_type", "member of closed signal-type enum", "bogus", "records.json[1]", "1 violation(s)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteText_PositiveVerdictIsBareToken(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, Admissibility(nil)); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "ADMISSIBLE\n" {
		t.Errorf("positive verdict output = %q, want bare token line", buf.String())
	}
}

func TestReport_JSONRoundTrip(t *testing.T) {
	v := Conformance([]Violation{
		{Field: "provenance", Expected: "required, object", Actual: "absent", Location: "inline[0]"},
	})
	r := NewReport(v)

	if r.ReportID == "" {
		t.Error("ReportID is empty")
	}
	if r.ViolationCount != 1 {
		t.Errorf("ViolationCount = %d, want 1", r.ViolationCount)
	}

	var buf bytes.Buffer
	if err := r.WriteJSON(&buf); err != nil {
		t.Fatal(err)
	}

	var decoded Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("report is not parseable JSON: %v", err)
	}
	if decoded.Token != TokenInvalid {
		t.Errorf("decoded token = %q, want %q", decoded.Token, TokenInvalid)
	}
	if len(decoded.Violations) != 1 || decoded.Violations[0].Field != "provenance" {
		t.Errorf("decoded violations = %+v", decoded.Violations)
	}
}

// The reporter must not mutate the verdict it renders.
func TestReport_DoesNotAlterViolations(t *testing.T) {
	violations := []Violation{
		{Field: "a", Expected: "x", Actual: "y", Location: "l1"},
		{Field: "b", Expected: "x", Actual: "y", Location: "l2"},
	}
	v := Conformance(violations)
	r := NewReport(v)

	if len(r.Violations) != 2 || r.Violations[0].Field != "a" || r.Violations[1].Field != "b" {
		t.Errorf("report reordered or truncated violations: %+v", r.Violations)
	}
}
