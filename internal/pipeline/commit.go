package pipeline

import "github.com/chesedcore/Evesses/internal/model"

// CommitPhase commits every event in order: deep-copies the current scope
// stack into it, assigns a strictly increasing timestamp, appends it to
// history, and enqueues any matching active trigger into the pending
// queue (spec.md §4.1 Commit phase). Commit is infallible.
func CommitPhase(d Deps, events []model.TimingEvent) []model.TimingEvent {
	if len(events) == 0 {
		return nil
	}
	scopes := d.Scopes.Snapshot()
	committed := make([]model.TimingEvent, 0, len(events))
	for _, ev := range events {
		c := d.History.Commit(ev, scopes)
		committed = append(committed, c)
		if d.Pending != nil {
			for _, t := range d.Triggers.MatchAll(c) {
				d.Pending.Enqueue(t)
				if d.OnTriggerMatched != nil {
					d.OnTriggerMatched(c.Timing)
				}
			}
		}
	}
	return committed
}
