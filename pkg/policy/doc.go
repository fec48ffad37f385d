// Package policy holds the governance policy model for the market-observation
// pipeline: the closed frame, signal-type, and observation-status enumerations,
// and the frame→allowed-signal-type map.
//
// The model is declarative data consulted by the admission and schema
// validators. Adding a frame or signal type means extending the tables here;
// validator logic never changes.
//
// # Basic Usage
//
//	pol := policy.Default()
//
//	if !pol.IsValidFrame("market_aggressiveness") {
//	    // unknown frame
//	}
//
//	allowed, err := pol.AllowedSignalTypes("market_aggressiveness")
//	if err != nil {
//	    // errors.Is(err, policy.ErrUnknownFrame)
//	}
//
// The model is read-only after construction and safe for concurrent use from
// multiple validators.
package policy
