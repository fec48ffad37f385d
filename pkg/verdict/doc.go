// Package verdict defines the shared outcome model for both governance
// validators: the status token pairs (ADMISSIBLE/NOT_ADMISSIBLE for frame
// admissibility, VALID/INVALID for observation schema conformance), the
// structured Violation record, and the reporter that renders verdicts as text
// or JSON.
//
// A verdict is exactly one of two mutually exclusive tokens plus an ordered
// violation list; the positive token always means the list is empty. The
// reporter is pure formatting: no validation logic lives here, and the
// violation list passes through untouched.
package verdict
