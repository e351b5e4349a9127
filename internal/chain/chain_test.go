package chain_test

import (
	"testing"

	"github.com/chesedcore/Evesses/internal/chain"
	"github.com/chesedcore/Evesses/internal/model"
)

func TestStackLIFO(t *testing.T) {
	s := chain.NewStack()
	if !s.Empty() {
		t.Fatal("expected a new stack to be empty")
	}

	e1 := &model.Effect{}
	e2 := &model.Effect{}
	s.Push(chain.Entry{Effect: e1})
	s.Push(chain.Entry{Effect: e2})

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}

	top, ok := s.Pop()
	if !ok || top.Effect != e2 {
		t.Fatalf("expected e2 on top, got %+v", top)
	}
	bottom, ok := s.Pop()
	if !ok || bottom.Effect != e1 {
		t.Fatalf("expected e1 second, got %+v", bottom)
	}
	if !s.Empty() {
		t.Fatal("expected the stack to be empty after draining")
	}
	if _, ok := s.Pop(); ok {
		t.Fatal("expected Pop on an empty stack to report ok=false")
	}
}

func TestPendingQueueDedup(t *testing.T) {
	q := chain.NewPendingQueue()
	t1 := &model.Trigger{ID: "t1"}
	q.Enqueue(t1)
	q.Enqueue(t1)
	if q.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (dedup'd)", q.Len())
	}
}

func TestPendingQueueDrainSortedClearsAndReapplies(t *testing.T) {
	q := chain.NewPendingQueue()
	t1 := &model.Trigger{ID: "t1"}
	t2 := &model.Trigger{ID: "t2"}
	q.Enqueue(t1)
	q.Enqueue(t2)

	reversed := func(triggers []*model.Trigger) []*model.Trigger {
		out := make([]*model.Trigger, len(triggers))
		for i, t := range triggers {
			out[len(triggers)-1-i] = t
		}
		return out
	}

	batch := q.DrainSorted(reversed)
	if len(batch) != 2 || batch[0].ID != "t2" || batch[1].ID != "t1" {
		t.Fatalf("batch = %v, want [t2 t1]", batch)
	}
	if !q.Empty() {
		t.Fatal("expected the queue to be empty after draining")
	}

	// A trigger can be re-enqueued after a prior batch drained it.
	q.Enqueue(t1)
	if q.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 after re-enqueue", q.Len())
	}
}

func TestIdentitySorterPreservesOrder(t *testing.T) {
	t1 := &model.Trigger{ID: "t1"}
	t2 := &model.Trigger{ID: "t2"}
	got := chain.IdentitySorter([]*model.Trigger{t1, t2})
	if got[0] != t1 || got[1] != t2 {
		t.Fatalf("IdentitySorter reordered: %v", got)
	}
}

func TestAcceptAllOptional(t *testing.T) {
	if !chain.AcceptAllOptional(&model.Trigger{}) {
		t.Error("expected AcceptAllOptional to always return true")
	}
}
