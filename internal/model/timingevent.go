package model

// ScopeFrame is one entry of the temporal scope stack (spec.md §3, §4.6).
// Layer is purely informational to the host.
type ScopeFrame struct {
	Name  string
	Layer int
}

// TimingEvent is an immutable record of something that happened, carrying
// a name, layer, opaque data, a monotonic engine timestamp assigned at
// commit, and a deep-copied snapshot of the scope stack at commit time.
type TimingEvent struct {
	ID        string
	Timing    string
	Layer     int
	Data      map[string]any
	Timestamp int64
	Scopes    []ScopeFrame
}

// clone returns a deep-enough copy: the Data map and Scopes slice are
// copied so later mutation of either cannot corrupt a committed event.
func (e TimingEvent) clone() TimingEvent {
	out := e
	if e.Data != nil {
		out.Data = make(map[string]any, len(e.Data))
		for k, v := range e.Data {
			out.Data[k] = v
		}
	}
	if e.Scopes != nil {
		out.Scopes = make([]ScopeFrame, len(e.Scopes))
		copy(out.Scopes, e.Scopes)
	}
	return out
}

// Clone is the public deep-copy entry point, used by the registry when it
// returns history snapshots (spec.md §6 get_timing_history).
func (e TimingEvent) Clone() TimingEvent { return e.clone() }

// NewTimingEvent builds an uncommitted event (no ID/timestamp/scope
// snapshot yet — those are assigned during Commit per spec.md §4.1).
func NewTimingEvent(timing string, layer int, data map[string]any) TimingEvent {
	return TimingEvent{Timing: timing, Layer: layer, Data: data}
}
