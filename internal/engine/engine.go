// Package engine assembles components A through F into the public-facing
// Engine facade (spec.md §6). It is the only package allowed to import
// every other internal package at once — builder, chain, pipeline, and
// registry are all kept import-cycle-free of engine itself, so engine is
// where their Deps get wired together, the way the teacher's engine.Engine
// wired dag.Graph, action.Registry, and config.EngineConf together.
package engine

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/chesedcore/Evesses/internal/builder"
	"github.com/chesedcore/Evesses/internal/chain"
	"github.com/chesedcore/Evesses/internal/enginecfg"
	"github.com/chesedcore/Evesses/internal/enginelog"
	"github.com/chesedcore/Evesses/internal/metrics"
	"github.com/chesedcore/Evesses/internal/model"
	"github.com/chesedcore/Evesses/internal/pipeline"
	"github.com/chesedcore/Evesses/internal/registry"
)

// Engine is the single entry point a host embeds (spec.md §6). It is not
// safe for concurrent use — spec.md's Non-goals exclude concurrency, and
// the reentrancy guard below exists precisely because callbacks run
// synchronously on the caller's own goroutine.
type Engine struct {
	floodgates  *registry.FloodgateRegistry
	triggers    *registry.TriggerRegistry
	history     *registry.History
	scopes      *model.ScopeStack
	constraints *model.ConstraintTracker
	stack       *chain.Stack
	pending     *chain.PendingQueue

	cfg          enginecfg.EngineConfig
	sorter       chain.SegocSorter
	optionalHook chain.OptionalTriggerHook
	logger       *slog.Logger

	running bool
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithLogger overrides the engine's default stdout text-handler logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithMaxChainIterations overrides the default max_iterations guard
// (spec.md §6, §4.3).
func WithMaxChainIterations(n int) Option {
	return func(e *Engine) { e.cfg.MaxIterations = n }
}

// WithSegocSorter installs a custom SEGOC sorter (spec.md §4.7). The
// default is identity ordering.
func WithSegocSorter(s chain.SegocSorter) Option {
	return func(e *Engine) { e.sorter = s }
}

// WithOptionalTriggerPrompt installs the host callback consulted before an
// optional trigger re-enters the chain (spec.md §4.3, §9). The default
// accepts every optional trigger.
func WithOptionalTriggerPrompt(hook chain.OptionalTriggerHook) Option {
	return func(e *Engine) { e.optionalHook = hook }
}

// New constructs an Engine with empty registries and default tunables.
func New(opts ...Option) *Engine {
	e := &Engine{
		floodgates:  registry.NewFloodgateRegistry(),
		triggers:    registry.NewTriggerRegistry(),
		history:     registry.NewHistory(),
		scopes:      model.NewScopeStack(),
		constraints: model.NewConstraintTracker(),
		stack:       chain.NewStack(),
		pending:     chain.NewPendingQueue(),
		cfg:         enginecfg.EngineConfig{MaxIterations: enginecfg.DefaultMaxIterations},
		sorter:      chain.IdentitySorter,
		logger:      enginelog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// deps builds the pipeline.Deps value the lower layers need, wired to
// this engine's registries and metrics hooks.
func (e *Engine) deps() pipeline.Deps {
	return pipeline.Deps{
		Floodgates:  e.floodgates,
		Triggers:    e.triggers,
		History:     e.history,
		Scopes:      e.scopes,
		Constraints: e.constraints,
		Pending:     e.pending,
		Logger:      e.logger,
		OnForbid: func(floodgateID, reason string) {
			metrics.EffectsForbidden.Inc()
		},
		OnNegated: func(kind, reason string) {
			e.logger.Debug("evesses: effect negated", "kind", kind, "reason", reason)
		},
		OnTriggerMatched: func(timing string) {
			metrics.TriggersMatched.WithLabelValues(timing).Inc()
		},
		OnFloodgateApplied: func(kind string) {
			metrics.FloodgatesApplied.WithLabelValues(kind).Inc()
		},
		OnConstraintViolated: func(key string) {
			metrics.ConstraintViolations.WithLabelValues(key).Inc()
		},
	}
}

// guard enforces spec.md §5/§9's reentrancy rule: callbacks must never
// call ActivateEffect or ResolveChain directly. It panics rather than
// silently corrupting the chain stack, because a reentrant call would
// interleave two independent Request/Resolution/Commit sequences on the
// same mutable stack.
func (e *Engine) guard() func() {
	if e.running {
		panic("evesses: reentrant call into ActivateEffect/ResolveChain from within a callback")
	}
	e.running = true
	return func() { e.running = false }
}

// NewEffect returns a builder for a directly-activatable effect.
func (e *Engine) NewEffect() *builder.EffectBuilder {
	return builder.NewEffectBuilder(e.constraints)
}

// OnTiming returns a builder for a trigger on (timing, layer).
func (e *Engine) OnTiming(timing string, layer int) *builder.TriggerBuilder {
	return builder.NewTriggerBuilder(e.triggers, e.constraints, timing, layer)
}

// Floodgate returns a builder for a continuous interceptor.
func (e *Engine) Floodgate() *builder.FloodgateBuilder {
	return builder.NewFloodgateBuilder(e.floodgates)
}

// PushScope opens a new temporal scope (spec.md §4.6).
func (e *Engine) PushScope(name string, layer int) {
	e.scopes.Push(name, layer)
}

// PopScope closes the innermost scope frame named name (spec.md §4.6).
func (e *Engine) PopScope(name string) {
	e.scopes.Pop(name)
}

// ActivateEffect runs eff's Request phase only — constraints, forbid
// floodgates, cost, target selection — and, on success, pushes it onto
// the chain stack (spec.md §4.1, §6). It does not resolve anything;
// callers may submit further effects before calling ResolveChain, exactly
// as spec.md §2's data-flow describes.
func (e *Engine) ActivateEffect(eff *model.Effect, ctx model.Context) error {
	defer e.guard()()

	if err := chain.RequestAndPush(e.deps(), e.stack, eff, ctx); err != nil {
		return err
	}
	metrics.EffectsActivated.Inc()
	return nil
}

// ResolveChain pops the chain stack LIFO, running Resolution+Commit for
// each entry, matching emitted events against registered triggers,
// SEGOC-sorting the resulting pending batch, and Requesting each trigger
// back onto the stack — repeating until both the stack and the pending
// queue are empty or max_iterations is exceeded (spec.md §4.3, §6).
func (e *Engine) ResolveChain(ctx model.Context) error {
	defer e.guard()()

	d := e.deps()
	iterations := 0
	err := chain.Loop(d, e.stack, e.pending, e.cfg.MaxIterations, e.sorter, e.optionalHook, ctx,
		func(n int) { iterations = n })
	metrics.ChainIterations.Observe(float64(iterations))
	if err != nil {
		var loopErr *model.InfiniteLoopDetectedError
		if errors.As(err, &loopErr) {
			metrics.InfiniteLoopDetections.Inc()
		}
		return err
	}
	metrics.ChainResolutions.Inc()
	return nil
}

// GetTimingHistory returns a deep-copied snapshot of every committed
// timing event, in commit order (spec.md §6).
func (e *Engine) GetTimingHistory() []model.TimingEvent {
	return e.history.Snapshot()
}

// ClearConstraintTracker resets all once-per-turn/times-per-turn usage
// counters (spec.md §6) — hosts call this at turn end.
func (e *Engine) ClearConstraintTracker() {
	e.constraints.Clear()
}

// SetMaxChainIterations overrides the max_iterations guard at runtime.
func (e *Engine) SetMaxChainIterations(n int) error {
	if n <= 0 {
		return fmt.Errorf("evesses: max_iterations must be positive, got %d", n)
	}
	e.cfg.MaxIterations = n
	return nil
}

// SetSegocSorter installs a custom SEGOC sorter at runtime.
func (e *Engine) SetSegocSorter(s chain.SegocSorter) {
	if s == nil {
		s = chain.IdentitySorter
	}
	e.sorter = s
}

// Logger returns the engine's structured logger, for hosts that want to
// log alongside it at the same level/handler.
func (e *Engine) Logger() *slog.Logger {
	return e.logger
}
