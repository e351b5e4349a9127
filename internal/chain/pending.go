package chain

import "github.com/chesedcore/Evesses/internal/model"

// SegocSorter reorders a pending-response batch before each trigger in it
// re-enters the chain via Request (spec.md §4.7). The default is
// identity.
type SegocSorter func(triggers []*model.Trigger) []*model.Trigger

// IdentitySorter is the default SEGOC sorter: no reordering.
func IdentitySorter(triggers []*model.Trigger) []*model.Trigger { return triggers }

// PendingQueue holds triggers that matched a committed event but have not
// yet re-entered the chain. A trigger appears at most once per batch
// (spec.md §3 invariant 3) — Enqueue is a no-op if the trigger is already
// queued.
type PendingQueue struct {
	order []*model.Trigger
	seen  map[string]struct{}
}

// NewPendingQueue returns an empty queue.
func NewPendingQueue() *PendingQueue {
	return &PendingQueue{seen: make(map[string]struct{})}
}

// Enqueue implements pipeline.PendingEnqueuer.
func (q *PendingQueue) Enqueue(t *model.Trigger) {
	if _, ok := q.seen[t.ID]; ok {
		return
	}
	q.seen[t.ID] = struct{}{}
	q.order = append(q.order, t)
}

// Empty reports whether the queue currently holds no triggers.
func (q *PendingQueue) Empty() bool { return len(q.order) == 0 }

// Len returns how many triggers are currently queued.
func (q *PendingQueue) Len() int { return len(q.order) }

// DrainSorted snapshots the full queue, clears it, and returns it run
// through sorter (spec.md §4.3: "the sorter sees the full batch exactly
// once per loop iteration").
func (q *PendingQueue) DrainSorted(sorter SegocSorter) []*model.Trigger {
	batch := q.order
	q.order = nil
	q.seen = make(map[string]struct{})
	if sorter == nil {
		sorter = IdentitySorter
	}
	return sorter(batch)
}
