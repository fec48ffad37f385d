// Package schema implements the observation-schema validator: it checks
// candidate observation records (in-memory, from a file, or from a directory
// of files) against the canonical observation contract.
//
// The contract is a declarative field table, not code branches: required
// top-level fields with their type/enum checks, the closed-key rule
// (unrecognized keys are violations), the nested provenance discipline, and
// the status-conditional failure_notes requirement. Each candidate is checked
// independently and every violation is accumulated, so a single call reports
// the complete problem set for an entire batch:
//
//	v := schema.NewValidator(policy.Default())
//	verdict, err := v.CheckFile("observations.json")
//	if err != nil {
//	    // operational failure: the artifact could not be read or parsed
//	}
//	if !verdict.OK() {
//	    // verdict.Violations holds every breach, in artifact order
//	}
//
// Operational failures are never folded into the violation list; see the
// artifact package.
package schema
