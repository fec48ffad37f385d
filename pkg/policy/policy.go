package policy

import (
	"errors"
	"fmt"
	"sort"
)

// FrameID identifies an analytical frame. The set of valid frames is closed;
// unknown values are rejected rather than ignored.
type FrameID string

const (
	// FrameMarketAggressiveness observes pricing pressure across market objects.
	FrameMarketAggressiveness FrameID = "market_aggressiveness"
	// FrameVisibilityDominance observes share-of-visibility across actors.
	FrameVisibilityDominance FrameID = "visibility_dominance"
	// FrameEfficiencyStress observes input-cost stress on actors.
	FrameEfficiencyStress FrameID = "efficiency_stress"
)

// SignalType identifies a closed category of observed market data.
type SignalType string

const (
	SignalPriceObserved          SignalType = "price_observed"
	SignalVisibilityObserved     SignalType = "visibility_observed"
	SignalInventoryProxyObserved SignalType = "inventory_proxy_observed"
	SignalInputProxyObserved     SignalType = "input_proxy_observed"
)

// ObservationStatus describes the collection outcome of an observation.
type ObservationStatus string

const (
	StatusObserved ObservationStatus = "observed"
	StatusMissing  ObservationStatus = "missing"
	StatusBlocked  ObservationStatus = "blocked"
	StatusInferred ObservationStatus = "inferred"
	StatusStale    ObservationStatus = "stale"
)

// ErrUnknownFrame is returned when a frame identifier is not in the closed frame set.
var ErrUnknownFrame = errors.New("unknown frame")

// Model holds the closed enumerations and the frame→allowed-signal-type map as
// immutable, queryable data. It is safe for concurrent read access; there is no
// mutation path after construction.
type Model struct {
	frames      map[FrameID][]SignalType
	signalTypes map[SignalType]struct{}
	statuses    map[ObservationStatus]struct{}
}

// defaultFrameSignalPolicy is the governance table mapping each frame to the
// signal types admissible within it. Each frame maps to a set (currently a
// singleton per frame) so the policy can widen without touching validator logic.
var defaultFrameSignalPolicy = map[FrameID][]SignalType{
	FrameMarketAggressiveness: {SignalPriceObserved},
	FrameVisibilityDominance:  {SignalVisibilityObserved},
	FrameEfficiencyStress:     {SignalInputProxyObserved},
}

var defaultSignalTypes = []SignalType{
	SignalPriceObserved,
	SignalVisibilityObserved,
	SignalInventoryProxyObserved,
	SignalInputProxyObserved,
}

var defaultStatuses = []ObservationStatus{
	StatusObserved,
	StatusMissing,
	StatusBlocked,
	StatusInferred,
	StatusStale,
}

// Default returns the process-wide governance policy model.
func Default() *Model {
	m := &Model{
		frames:      make(map[FrameID][]SignalType, len(defaultFrameSignalPolicy)),
		signalTypes: make(map[SignalType]struct{}, len(defaultSignalTypes)),
		statuses:    make(map[ObservationStatus]struct{}, len(defaultStatuses)),
	}

	for _, st := range defaultSignalTypes {
		m.signalTypes[st] = struct{}{}
	}
	for _, s := range defaultStatuses {
		m.statuses[s] = struct{}{}
	}
	for frame, allowed := range defaultFrameSignalPolicy {
		m.frames[frame] = append([]SignalType(nil), allowed...)
	}

	return m
}

// IsValidFrame reports whether id is a member of the closed frame set.
func (m *Model) IsValidFrame(id string) bool {
	_, ok := m.frames[FrameID(id)]
	return ok
}

// IsValidSignalType reports whether t is a member of the closed signal-type set.
func (m *Model) IsValidSignalType(t string) bool {
	_, ok := m.signalTypes[SignalType(t)]
	return ok
}

// IsValidObservationStatus reports whether s is a member of the closed
// observation-status set.
func (m *Model) IsValidObservationStatus(s string) bool {
	_, ok := m.statuses[ObservationStatus(s)]
	return ok
}

// AllowedSignalTypes returns the signal types admissible within the given frame.
// It returns ErrUnknownFrame when the frame is not in the closed set; an unknown
// frame has no defined allowed set.
func (m *Model) AllowedSignalTypes(id string) ([]SignalType, error) {
	allowed, ok := m.frames[FrameID(id)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFrame, id)
	}
	return append([]SignalType(nil), allowed...), nil
}

// Frames returns the closed frame set in sorted order.
func (m *Model) Frames() []FrameID {
	frames := make([]FrameID, 0, len(m.frames))
	for f := range m.frames {
		frames = append(frames, f)
	}
	sort.Slice(frames, func(i, j int) bool { return frames[i] < frames[j] })
	return frames
}

// SignalTypes returns the closed signal-type set in sorted order.
func (m *Model) SignalTypes() []SignalType {
	types := make([]SignalType, 0, len(m.signalTypes))
	for t := range m.signalTypes {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Statuses returns the closed observation-status set in sorted order.
func (m *Model) Statuses() []ObservationStatus {
	statuses := make([]ObservationStatus, 0, len(m.statuses))
	for s := range m.statuses {
		statuses = append(statuses, s)
	}
	sort.Slice(statuses, func(i, j int) bool { return statuses[i] < statuses[j] })
	return statuses
}
