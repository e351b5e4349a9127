// Package builder implements the fluent construction surface for
// effects, triggers, and floodgates (spec.md §6, component F of §2).
// Building a Trigger or Floodgate has the side effect of registering it;
// building an Effect does not — effects are activated, not registered.
package builder

import (
	"github.com/chesedcore/Evesses/internal/model"
)

// EffectBuilder fluently constructs a model.Effect.
type EffectBuilder struct {
	tracker *model.ConstraintTracker
	eff     *model.Effect
}

// NewEffectBuilder returns a builder backed by tracker for the
// once_per_turn/times_per_turn helpers (spec.md §4.5).
func NewEffectBuilder(tracker *model.ConstraintTracker) *EffectBuilder {
	return &EffectBuilder{
		tracker: tracker,
		eff:     &model.Effect{Tags: make(map[string]struct{})},
	}
}

// Cost sets the mutating cost callback.
func (b *EffectBuilder) Cost(fn model.CostFunc) *EffectBuilder {
	b.eff.Cost = fn
	return b
}

// CostChecker sets the non-mutating cost probe.
func (b *EffectBuilder) CostChecker(fn model.CostFunc) *EffectBuilder {
	b.eff.CostChecker = fn
	return b
}

// Constraint appends a constraint predicate, evaluated in declared order
// during Request.
func (b *EffectBuilder) Constraint(fn model.ConstraintFunc) *EffectBuilder {
	b.eff.Constraints = append(b.eff.Constraints, fn)
	return b
}

// OncePerTurn composes check_once_per_turn + mark_used into a single
// constraint for each key (spec.md §4.5): a negated/failed effect still
// consumes its slot, since the mark happens unconditionally once the
// check passes, during Request.
func (b *EffectBuilder) OncePerTurn(keys ...string) *EffectBuilder {
	tracker := b.tracker
	for _, key := range keys {
		key := key
		b.eff.Constraints = append(b.eff.Constraints, func(ctx model.Context) error {
			if err := tracker.CheckOncePerTurn(key); err != nil {
				return err
			}
			tracker.MarkUsed(key)
			return nil
		})
	}
	return b
}

// TimesPerTurn composes check_times_per_turn + increment_usage into a
// single constraint for each key.
func (b *EffectBuilder) TimesPerTurn(max int, keys ...string) *EffectBuilder {
	tracker := b.tracker
	for _, key := range keys {
		key := key
		b.eff.Constraints = append(b.eff.Constraints, func(ctx model.Context) error {
			if err := tracker.CheckTimesPerTurn(key, max); err != nil {
				return err
			}
			tracker.IncrementUsage(key)
			return nil
		})
	}
	return b
}

// Target sets the target selector.
func (b *EffectBuilder) Target(fn model.TargetFunc) *EffectBuilder {
	b.eff.TargetSelector = fn
	return b
}

// Action sets the primary action.
func (b *EffectBuilder) Action(fn model.ActionFunc) *EffectBuilder {
	b.eff.Action = fn
	return b
}

// AndThen appends a compound step that runs iff the previous step did not
// error.
func (b *EffectBuilder) AndThen(fn model.ActionFunc) *EffectBuilder {
	b.eff.Compounds = append(b.eff.Compounds, model.CompoundStep{Kind: model.AndThen, Action: fn})
	return b
}

// AndAlso appends a compound step that always runs.
func (b *EffectBuilder) AndAlso(fn model.ActionFunc) *EffectBuilder {
	b.eff.Compounds = append(b.eff.Compounds, model.CompoundStep{Kind: model.And, Action: fn})
	return b
}

// AndIfYouDo appends a compound step that runs iff the previous step
// succeeded with succeeded=true.
func (b *EffectBuilder) AndIfYouDo(fn model.ActionFunc) *EffectBuilder {
	b.eff.Compounds = append(b.eff.Compounds, model.CompoundStep{Kind: model.AndIfYouDo, Action: fn})
	return b
}

// AndThenIfYouDo appends a compound step, tagged distinctly from
// AndIfYouDo but evaluated identically (spec.md §3 open question).
func (b *EffectBuilder) AndThenIfYouDo(fn model.ActionFunc) *EffectBuilder {
	b.eff.Compounds = append(b.eff.Compounds, model.CompoundStep{Kind: model.AndThenIfYouDo, Action: fn})
	return b
}

// Tag adds one or more tags to the effect.
func (b *EffectBuilder) Tag(tags ...string) *EffectBuilder {
	for _, t := range tags {
		b.eff.Tags[t] = struct{}{}
	}
	return b
}

// BindLifetime attaches a lifetime handle to the effect.
func (b *EffectBuilder) BindLifetime(h model.LifetimeHandle) *EffectBuilder {
	b.eff.Lifetime = h
	return b
}

// Build finalizes and returns the constructed effect. Effects are not
// registered anywhere; the caller activates them directly.
func (b *EffectBuilder) Build() *model.Effect {
	return b.eff
}
