package registry

import (
	"sync"

	"github.com/chesedcore/Evesses/internal/model"
	"github.com/google/uuid"
)

// History is the insertion-ordered timing event log with a strictly
// increasing integer timestamp (spec.md §3 invariant 2, §5).
type History struct {
	mu        sync.Mutex
	events    []model.TimingEvent
	nextStamp int64
}

// NewHistory returns an empty history log.
func NewHistory() *History {
	return &History{}
}

// Commit assigns ev its ID (if unset), timestamp, and a deep-copied scope
// snapshot, appends it to the log, and returns the committed copy
// (spec.md §4.1 Commit phase steps 1–3).
func (h *History) Commit(ev model.TimingEvent, scopes []model.ScopeFrame) model.TimingEvent {
	h.mu.Lock()
	defer h.mu.Unlock()

	committed := ev.Clone()
	if committed.ID == "" {
		committed.ID = uuid.New().String()
	}
	committed.Timestamp = h.nextStamp
	h.nextStamp++
	if scopes != nil {
		committed.Scopes = append([]model.ScopeFrame(nil), scopes...)
	} else {
		committed.Scopes = nil
	}
	h.events = append(h.events, committed)
	return committed
}

// Snapshot returns a deep copy of the full history log (spec.md §6
// get_timing_history).
func (h *History) Snapshot() []model.TimingEvent {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]model.TimingEvent, len(h.events))
	for i, ev := range h.events {
		out[i] = ev.Clone()
	}
	return out
}

// Len returns how many events have been committed.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.events)
}
