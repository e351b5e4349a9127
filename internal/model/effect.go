package model

// CompoundStep is one secondary action attached to an effect, conditional
// on the prior step's outcome per its CompoundKind (spec.md §3).
type CompoundStep struct {
	Kind   CompoundKind
	Action ActionFunc
}

// Effect is a bundle of constraints, a cost, a target selector, a primary
// action, and an ordered list of compound steps (spec.md §3).
type Effect struct {
	Tags           map[string]struct{}
	Constraints    []ConstraintFunc
	Cost           CostFunc
	CostChecker    CostFunc
	TargetSelector TargetFunc
	Action         ActionFunc
	Compounds      []CompoundStep
	Lifetime       LifetimeHandle
}

// HasTag reports whether the effect carries the given tag.
func (e *Effect) HasTag(tag string) bool {
	if e == nil || e.Tags == nil {
		return false
	}
	_, ok := e.Tags[tag]
	return ok
}

// ShouldExecuteCompound decides whether a compound step runs, given the
// previous step's observed outcome, per spec.md §4.1 Resolution phase
// step 3's table.
func ShouldExecuteCompound(kind CompoundKind, prevSucceeded bool, prevErrored bool) bool {
	switch kind {
	case And:
		return true
	case AndThen:
		return !prevErrored
	case AndIfYouDo, AndThenIfYouDo:
		return prevSucceeded
	default:
		return false
	}
}
