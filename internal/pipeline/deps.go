// Package pipeline implements the three-phase execution model — Request,
// Resolution, Commit — and floodgate application for a single effect
// (spec.md §4.1, §4.2). This is component D of spec.md §2.
package pipeline

import (
	"log/slog"

	"github.com/chesedcore/Evesses/internal/model"
	"github.com/chesedcore/Evesses/internal/registry"
)

// PendingEnqueuer is the narrow slice of the chain loop's pending-response
// queue (component E) that Commit needs: enqueue a matched trigger exactly
// once per batch (spec.md §3 invariant 3).
type PendingEnqueuer interface {
	Enqueue(t *model.Trigger)
}

// Deps bundles the registries and ambient collaborators a phase needs.
// Passed by value (it's a small struct of pointers) so call sites read
// like spec.md's phase functions taking "the engine" without actually
// depending on the engine package (that would be a cycle).
type Deps struct {
	Floodgates           *registry.FloodgateRegistry
	Triggers             *registry.TriggerRegistry
	History              *registry.History
	Scopes               *model.ScopeStack
	Constraints          *model.ConstraintTracker
	Pending              PendingEnqueuer
	Logger               *slog.Logger
	OnForbid             func(floodgateID, reason string)
	OnNegated            func(kind string, reason string)
	OnTriggerMatched     func(timing string)
	OnFloodgateApplied   func(kind string)
	OnConstraintViolated func(key string)
}

func (d Deps) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.Default()
}
