package chain

import (
	"errors"

	"github.com/chesedcore/Evesses/internal/model"
	"github.com/chesedcore/Evesses/internal/pipeline"
)

// OptionalTriggerHook decides whether an optional trigger's activation
// proceeds. The engine's default always accepts (spec.md §4.3, §9).
type OptionalTriggerHook func(t *model.Trigger) bool

// AcceptAllOptional is the default OptionalTriggerHook.
func AcceptAllOptional(*model.Trigger) bool { return true }

// RequestAndPush runs the Request phase for eff and, on success, pushes it
// onto stack. This is the shared entry point spec.md §6's activate_effect
// and the chain loop's trigger re-entry both funnel through.
func RequestAndPush(d pipeline.Deps, stack *Stack, eff *model.Effect, ctx model.Context) error {
	targets, err := pipeline.RequestPhase(d, eff, ctx)
	if err != nil {
		return err
	}
	stack.Push(Entry{Effect: eff, Targets: targets, Ctx: ctx})
	return nil
}

// Loop drains the chain stack and pending-response queue to quiescence,
// implementing the pseudocode of spec.md §4.3 exactly: fully resolve the
// stack, then Request every pending trigger (SEGOC-ordered) back onto it,
// repeating until both are empty or max_iterations is exceeded.
func Loop(
	d pipeline.Deps,
	stack *Stack,
	pending *PendingQueue,
	maxIterations int,
	sorter SegocSorter,
	optionalHook OptionalTriggerHook,
	ctx model.Context,
	onIteration func(n int),
) error {
	if optionalHook == nil {
		optionalHook = AcceptAllOptional
	}

	iterations := 0
	for !stack.Empty() || !pending.Empty() {
		iterations++
		if onIteration != nil {
			onIteration(iterations)
		}
		if iterations > maxIterations {
			return &model.InfiniteLoopDetectedError{Iterations: iterations}
		}

		for !stack.Empty() {
			entry, _ := stack.Pop()
			err := pipeline.ResolutionPhase(d, entry.Effect, entry.Targets, entry.Ctx)
			if err == nil {
				continue
			}
			var activationNegated *model.ActivationNegatedError
			if errors.As(err, &activationNegated) {
				// Absorbed silently; the chain continues.
				continue
			}
			return err
		}

		if !pending.Empty() {
			batch := pending.DrainSorted(sorter)
			for _, t := range batch {
				if t.Optional && !optionalHook(t) {
					continue
				}
				if err := RequestAndPush(d, stack, t.Effect, ctx); err != nil {
					// Skip this trigger; the loop continues.
					continue
				}
			}
		}
	}
	return nil
}
