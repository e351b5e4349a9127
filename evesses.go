// Package evesses is a generic, host-embeddable effect-resolution engine
// for turn-based, chain-style games: Request/Resolution/Commit phases,
// continuous floodgate interceptors, a LIFO chain stack, and an outer
// chain/trigger loop that drains to quiescence (spec.md §1).
//
// Evesses never touches game rules, a board, or players directly — a host
// supplies opaque Context values and plain Go functions for constraints,
// costs, target selection, and actions, and Evesses sequences them.
package evesses

import (
	"log/slog"

	"github.com/chesedcore/Evesses/internal/builder"
	"github.com/chesedcore/Evesses/internal/chain"
	"github.com/chesedcore/Evesses/internal/engine"
	"github.com/chesedcore/Evesses/internal/model"
	"github.com/chesedcore/Evesses/internal/result"
)

// Public type aliases re-exporting the engine's value vocabulary
// (spec.md §3, §6) so hosts never need to import an internal package.
type (
	Context           = model.Context
	Targets           = model.Targets
	TimingEvent       = model.TimingEvent
	ScopeFrame        = model.ScopeFrame
	Effect            = model.Effect
	CompoundStep      = model.CompoundStep
	Trigger           = model.Trigger
	Floodgate         = model.Floodgate
	ActionResult      = model.ActionResult
	LifetimeHandle    = model.LifetimeHandle
	ConstraintFunc    = model.ConstraintFunc
	CostFunc          = model.CostFunc
	TargetFunc        = model.TargetFunc
	ActionFunc        = model.ActionFunc
	TriggerFilterFunc = model.TriggerFilterFunc
	ForbidFunc        = model.ForbidFunc
	ModifyFunc        = model.ModifyFunc
	ReplaceFunc       = model.ReplaceFunc
	CompoundKind      = model.CompoundKind
	FloodgatePhase    = model.FloodgatePhase
	FloodgateKind     = model.FloodgateKind

	EffectBuilder    = builder.EffectBuilder
	TriggerBuilder   = builder.TriggerBuilder
	FloodgateBuilder = builder.FloodgateBuilder

	SegocSorter         = chain.SegocSorter
	OptionalTriggerHook = chain.OptionalTriggerHook

	ActivationNegatedError    = model.ActivationNegatedError
	EffectNegatedError        = model.EffectNegatedError
	ActionForbiddenError      = model.ActionForbiddenError
	CostCannotBePaidError     = model.CostCannotBePaidError
	ConstraintViolatedError   = model.ConstraintViolatedError
	InfiniteLoopDetectedError = model.InfiniteLoopDetectedError
)

// CompoundKind values (spec.md §3).
const (
	And            = model.And
	AndThen        = model.AndThen
	AndIfYouDo     = model.AndIfYouDo
	AndThenIfYouDo = model.AndThenIfYouDo
)

// FloodgatePhase values (spec.md §3).
const (
	PhaseRequest    = model.PhaseRequest
	PhaseResolution = model.PhaseResolution
)

// FloodgateKind values (spec.md §3).
const (
	KindForbid  = model.KindForbid
	KindModify  = model.KindModify
	KindReplace = model.KindReplace
)

// Value/result constructors re-exported for convenience (spec.md §9).
var (
	Some       = model.Some
	SomeEvent  = model.SomeEvent
	SomeEvents = model.SomeEvents
	None       = model.None
	FromRaw    = model.FromRaw
	NewEvent   = model.NewTimingEvent
)

// NeverExpires and NewSignalLifetime re-export the two built-in
// LifetimeHandle implementations (spec.md §4.4).
var NewSignalLifetime = model.NewSignalLifetime

// NeverExpires is the zero-value LifetimeHandle.
type NeverExpires = model.NeverExpires

// SignalLifetime is a host-triggerable LifetimeHandle.
type SignalLifetime = model.SignalLifetime

// Engine is the public facade, re-exported so hosts only ever import this
// one package.
type Engine = engine.Engine

// Option configures an Engine at construction time.
type Option = engine.Option

// WithLogger overrides the engine's default logger.
func WithLogger(l *slog.Logger) Option { return engine.WithLogger(l) }

// WithMaxChainIterations overrides the default max_iterations guard.
func WithMaxChainIterations(n int) Option { return engine.WithMaxChainIterations(n) }

// WithSegocSorter installs a custom SEGOC sorter.
func WithSegocSorter(s SegocSorter) Option { return engine.WithSegocSorter(s) }

// WithOptionalTriggerPrompt installs the optional-trigger confirmation
// hook.
func WithOptionalTriggerPrompt(hook OptionalTriggerHook) Option {
	return engine.WithOptionalTriggerPrompt(hook)
}

// NewEngine constructs a ready-to-use Evesses engine (spec.md §6).
func NewEngine(opts ...Option) *Engine {
	return engine.New(opts...)
}

// ActivateResult re-exports the Result[T] contract spec.md §1 scopes out
// of the engine itself ("specified only by contract"), for hosts that
// would rather consume a Result value than a bare Go error. Both
// ActivateEffectResult and ResolveChainResult return it.
type ActivateResult = result.Result[struct{}]

// ActivateEffectResult wraps Engine.ActivateEffect's error return as a
// Result[struct{}], for hosts built against the Result/Option contract
// rather than Go's (value, error) idiom.
func ActivateEffectResult(e *Engine, eff *Effect, ctx Context) ActivateResult {
	if err := e.ActivateEffect(eff, ctx); err != nil {
		return result.Err[struct{}](err)
	}
	return result.Ok(struct{}{})
}

// ResolveChainResult wraps Engine.ResolveChain's error return as a
// Result[struct{}].
func ResolveChainResult(e *Engine, ctx Context) ActivateResult {
	if err := e.ResolveChain(ctx); err != nil {
		return result.Err[struct{}](err)
	}
	return result.Ok(struct{}{})
}

// IdentitySorter is the default SEGOC sorter: no reordering.
var IdentitySorter = chain.IdentitySorter

// AcceptAllOptional is the default optional-trigger hook: always accept.
var AcceptAllOptional = chain.AcceptAllOptional
