package model

import "fmt"

// ActivationNegatedError means the action never happened: Resolution does
// not emit any timing event and returns the error, and the chain loop
// absorbs it and continues with the next entry, so ResolveChain does not
// return it (spec.md §7).
type ActivationNegatedError struct {
	Reason string
}

func (e *ActivationNegatedError) Error() string {
	return fmt.Sprintf("activation negated: %s", e.Reason)
}

// EffectNegatedError means the effect resolved to nothing; Commit still
// runs with a single synthetic "effect_negated" event.
type EffectNegatedError struct {
	Reason string
}

func (e *EffectNegatedError) Error() string {
	return fmt.Sprintf("effect negated: %s", e.Reason)
}

// ActionForbiddenError is raised by a Request-phase Forbid floodgate.
type ActionForbiddenError struct {
	Reason      string
	FloodgateID string
}

func (e *ActionForbiddenError) Error() string {
	return fmt.Sprintf("action forbidden by floodgate %s: %s", e.FloodgateID, e.Reason)
}

// CostCannotBePaidError is raised by a cost or cost-checker callback.
type CostCannotBePaidError struct {
	Reason string
}

func (e *CostCannotBePaidError) Error() string {
	return fmt.Sprintf("cost cannot be paid: %s", e.Reason)
}

// ConstraintViolatedError is raised by a constraint callback, or by the
// once-per-turn/times-per-turn helpers in §4.5.
type ConstraintViolatedError struct {
	Key string
}

func (e *ConstraintViolatedError) Error() string {
	return fmt.Sprintf("constraint violated: %s", e.Key)
}

// InfiniteLoopDetectedError is the chain loop's fatal, engine-level
// termination guarantee (spec.md §4.3, §8).
type InfiniteLoopDetectedError struct {
	Iterations int
}

func (e *InfiniteLoopDetectedError) Error() string {
	return fmt.Sprintf("infinite loop detected after %d iterations", e.Iterations)
}
