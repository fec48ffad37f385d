// Package admission implements the frame-admissibility validator: given a
// frame identifier and a list of signal types, it decides whether the
// combination is admissible under the frame→signal governance policy.
//
// The validator accumulates every violation in one pass rather than stopping
// at the first, so a caller can fix a whole submission at once:
//
//	v := admission.NewValidator(policy.Default())
//	verdict := v.Check("market_aggressiveness", []string{"price_observed"})
//	if !verdict.OK() {
//	    for _, viol := range verdict.Violations {
//	        fmt.Println(viol.Field, viol.Expected, viol.Actual, viol.Location)
//	    }
//	}
package admission
