package verdict

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// Report is the machine-parseable rendering of a Verdict. It carries the
// verdict unchanged plus report-level metadata; the violation list is never
// altered, filtered, or truncated.
type Report struct {
	ReportID       string      `json:"report_id"`
	GeneratedAt    time.Time   `json:"generated_at"`
	Token          Token       `json:"token"`
	ViolationCount int         `json:"violation_count"`
	Violations     []Violation `json:"violations,omitempty"`
}

// NewReport wraps a verdict in a report with a fresh report ID.
func NewReport(v Verdict) Report {
	return Report{
		ReportID:       uuid.NewString(),
		GeneratedAt:    time.Now().UTC(),
		Token:          v.Token,
		ViolationCount: len(v.Violations),
		Violations:     v.Violations,
	}
}

// WriteJSON writes the report as indented JSON.
func (r Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteText writes the verdict in human-readable form: the bare status token,
// then one line per violation with its four fields.
func WriteText(w io.Writer, v Verdict) error {
	if _, err := fmt.Fprintln(w, v.Token); err != nil {
		return err
	}

	for _, viol := range v.Violations {
		_, err := fmt.Fprintf(w, "  ✗ %s: expected %s, got %s (at %s)\n",
			viol.Field, viol.Expected, viol.Actual, viol.Location)
		if err != nil {
			return err
		}
	}

	if len(v.Violations) > 0 {
		if _, err := fmt.Fprintf(w, "  %d violation(s)\n", len(v.Violations)); err != nil {
			return err
		}
	}
	return nil
}
