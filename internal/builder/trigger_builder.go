package builder

import (
	"github.com/chesedcore/Evesses/internal/model"
	"github.com/chesedcore/Evesses/internal/registry"
	"github.com/google/uuid"
)

// TriggerBuilder fluently constructs a model.Trigger around an embedded
// EffectBuilder for its response action. Build() registers the trigger.
type TriggerBuilder struct {
	reg      *registry.TriggerRegistry
	timing   string
	layer    int
	filter   model.TriggerFilterFunc
	optional bool
	lifetime model.LifetimeHandle
	inner    *EffectBuilder
}

// NewTriggerBuilder returns a builder for a trigger on (timing, layer)
// that will register itself into reg on Build().
func NewTriggerBuilder(reg *registry.TriggerRegistry, tracker *model.ConstraintTracker, timing string, layer int) *TriggerBuilder {
	return &TriggerBuilder{
		reg:    reg,
		timing: timing,
		layer:  layer,
		inner:  NewEffectBuilder(tracker),
	}
}

// Filter sets the predicate a matching event must additionally satisfy.
func (b *TriggerBuilder) Filter(fn model.TriggerFilterFunc) *TriggerBuilder {
	b.filter = fn
	return b
}

// Optional marks the trigger as player-gated (subject to the engine's
// optional-trigger hook, defaulting to auto-accept).
func (b *TriggerBuilder) Optional() *TriggerBuilder {
	b.optional = true
	return b
}

// Mandatory marks the trigger as unconditional — the default.
func (b *TriggerBuilder) Mandatory() *TriggerBuilder {
	b.optional = false
	return b
}

// OncePerTurn delegates to the embedded effect builder.
func (b *TriggerBuilder) OncePerTurn(keys ...string) *TriggerBuilder {
	b.inner.OncePerTurn(keys...)
	return b
}

// Action sets the trigger's response action.
func (b *TriggerBuilder) Action(fn model.ActionFunc) *TriggerBuilder {
	b.inner.Action(fn)
	return b
}

// AndThen appends a compound step to the trigger's response effect.
func (b *TriggerBuilder) AndThen(fn model.ActionFunc) *TriggerBuilder {
	b.inner.AndThen(fn)
	return b
}

// BindLifetime attaches a lifetime handle to the trigger itself.
func (b *TriggerBuilder) BindLifetime(h model.LifetimeHandle) *TriggerBuilder {
	b.lifetime = h
	return b
}

// Build finalizes the trigger, registers it, and returns it.
func (b *TriggerBuilder) Build() *model.Trigger {
	t := &model.Trigger{
		ID:       uuid.New().String(),
		Timing:   b.timing,
		Layer:    b.layer,
		Filter:   b.filter,
		Optional: b.optional,
		Effect:   b.inner.Build(),
		Lifetime: b.lifetime,
	}
	b.reg.Register(t)
	return t
}
