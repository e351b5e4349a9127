package builder

import (
	"github.com/chesedcore/Evesses/internal/model"
	"github.com/chesedcore/Evesses/internal/registry"
	"github.com/google/uuid"
)

// FloodgateBuilder fluently constructs a model.Floodgate. Exactly one of
// Forbid/Modify/Replace must be called before Build() (spec.md §6).
type FloodgateBuilder struct {
	reg          *registry.FloodgateRegistry
	phase        model.FloodgatePhase
	phaseSet     bool
	layer        int
	kind         model.FloodgateKind
	kindSet      bool
	forbid       model.ForbidFunc
	modify       model.ModifyFunc
	replace      model.ReplaceFunc
	lifetime     model.LifetimeHandle
}

// NewFloodgateBuilder returns a builder that will register into reg on
// Build().
func NewFloodgateBuilder(reg *registry.FloodgateRegistry) *FloodgateBuilder {
	return &FloodgateBuilder{reg: reg}
}

// Phase overrides the phase a Forbid/Modify/Replace call defaulted.
func (b *FloodgateBuilder) Phase(p model.FloodgatePhase) *FloodgateBuilder {
	b.phase = p
	b.phaseSet = true
	return b
}

// Layer sets the floodgate's precedence layer.
func (b *FloodgateBuilder) Layer(n int) *FloodgateBuilder {
	b.layer = n
	return b
}

// Forbid configures a Request-phase forbid floodgate.
func (b *FloodgateBuilder) Forbid(fn model.ForbidFunc) *FloodgateBuilder {
	b.kind = model.KindForbid
	b.kindSet = true
	b.forbid = fn
	if !b.phaseSet {
		b.phase = model.PhaseRequest
	}
	return b
}

// Modify configures a Resolution-phase event-transforming floodgate.
func (b *FloodgateBuilder) Modify(fn model.ModifyFunc) *FloodgateBuilder {
	b.kind = model.KindModify
	b.kindSet = true
	b.modify = fn
	if !b.phaseSet {
		b.phase = model.PhaseResolution
	}
	return b
}

// Replace configures a Resolution-phase action/target-substituting
// floodgate.
func (b *FloodgateBuilder) Replace(fn model.ReplaceFunc) *FloodgateBuilder {
	b.kind = model.KindReplace
	b.kindSet = true
	b.replace = fn
	if !b.phaseSet {
		b.phase = model.PhaseResolution
	}
	return b
}

// BindLifetime attaches a lifetime handle to the floodgate.
func (b *FloodgateBuilder) BindLifetime(h model.LifetimeHandle) *FloodgateBuilder {
	b.lifetime = h
	return b
}

// Build finalizes the floodgate, registers it, and returns it. It panics
// if none of Forbid/Modify/Replace was called, surfacing misconfiguration
// early the way action.Registry panics on a duplicate type.
func (b *FloodgateBuilder) Build() *model.Floodgate {
	if !b.kindSet {
		panic("evesses: floodgate builder requires exactly one of Forbid/Modify/Replace")
	}
	f := &model.Floodgate{
		ID:       uuid.New().String(),
		Phase:    b.phase,
		Layer:    b.layer,
		Kind:     b.kind,
		Forbid:   b.forbid,
		Modify:   b.modify,
		Replace:  b.replace,
		Lifetime: b.lifetime,
	}
	b.reg.Register(f)
	return f
}
