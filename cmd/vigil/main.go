// Vigil is a governance validator for a market-observation pipeline.
//
// It decides whether a set of signal types is admissible for a named
// analytical frame, and whether candidate observation records conform to the
// canonical observation schema. Both checks are pure policy evaluations that
// report every violation found, never just the first.
//
// Usage:
//
//	# Check frame admissibility
//	vigil frames check --frame market_aggressiveness --signal price_observed
//
//	# Show the frame→signal policy table
//	vigil frames list
//
//	# Validate an observation artifact file or directory
//	vigil observations check --file observations.json
//	vigil observations check --dir drops/
//
//	# Continuously re-validate a directory as files change
//	vigil observations watch --dir drops/
//
//	# Show version information
//	vigil version
package main

func main() {
	Execute()
}
