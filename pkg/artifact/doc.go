// Package artifact normalizes the three accepted observation-input shapes
// (in-memory records, a single file, a directory of files) into one ordered
// sequence of (location, candidate) pairs, keeping the schema validator
// shape-agnostic.
//
// Files may be JSON or YAML and must hold a top-level array of observation
// objects. Operational failures (missing path, unparseable content, non-array
// root) are errors, never schema violations: the validator could not even
// attempt policy evaluation for the affected records. For directory artifacts
// the failures are per-file, so one malformed file does not suppress
// evaluation of its siblings.
package artifact
