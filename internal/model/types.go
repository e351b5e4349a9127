package model

// Context is the opaque host game context threaded through every
// callback. spec.md §1 scopes the concrete game context out of the
// engine entirely — the engine only ever passes it through.
type Context = any

// Targets is the opaque, host-defined set of targets a selector produces
// and an action consumes.
type Targets []any

// ConstraintFunc probes (ctx) and returns nil on success or a typed
// failure (normally *model.ConstraintViolatedError, but any error is
// accepted per spec.md §6).
type ConstraintFunc func(ctx Context) error

// CostFunc is both the cost-checker (non-mutating probe) and the cost
// itself (mutating payment) — same signature, different call sites.
type CostFunc func(ctx Context) error

// TargetFunc selects targets for an effect.
type TargetFunc func(ctx Context) (Targets, error)

// ActionFunc is the typed action contract: actions return an ActionResult
// directly (spec.md §9's statically-typed rewrite). Use FromRaw to adapt
// a dynamically-typed action at the boundary instead.
type ActionFunc func(ctx Context, targets Targets) (ActionResult, error)

// TriggerFilterFunc decides whether a committed TimingEvent matches a
// trigger, beyond the timing-name/layer match the registry already does.
type TriggerFilterFunc func(ev TimingEvent) bool

// CompoundKind is the closed set of compound-step execution conditions
// (spec.md §3).
type CompoundKind int

const (
	// And always executes, irrespective of the previous step's outcome.
	And CompoundKind = iota
	// AndThen executes iff the previous step did not error.
	AndThen
	// AndIfYouDo executes iff the previous step succeeded with
	// succeeded=true.
	AndIfYouDo
	// AndThenIfYouDo is semantically identical to AndIfYouDo in this
	// design; kept as a distinct tag for reporting per spec.md §3's open
	// question.
	AndThenIfYouDo
)

func (k CompoundKind) String() string {
	switch k {
	case And:
		return "and"
	case AndThen:
		return "and_then"
	case AndIfYouDo:
		return "and_if_you_do"
	case AndThenIfYouDo:
		return "and_then_if_you_do"
	default:
		return "unknown"
	}
}

// FloodgatePhase discriminates which phase a floodgate intercepts.
type FloodgatePhase int

const (
	PhaseRequest FloodgatePhase = iota
	PhaseResolution
)

func (p FloodgatePhase) String() string {
	switch p {
	case PhaseRequest:
		return "request"
	case PhaseResolution:
		return "resolution"
	default:
		return "unknown"
	}
}

// FloodgateKind discriminates the three floodgate function contracts.
type FloodgateKind int

const (
	KindForbid FloodgateKind = iota
	KindModify
	KindReplace
)

func (k FloodgateKind) String() string {
	switch k {
	case KindForbid:
		return "forbid"
	case KindModify:
		return "modify"
	case KindReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// ForbidFunc returns true when activation of eff must fail.
type ForbidFunc func(ctx Context, eff *Effect) bool

// ModifyFunc transforms a timing event; ok=false means "no change".
type ModifyFunc func(ctx Context, ev TimingEvent) (out TimingEvent, ok bool)

// ReplaceFunc substitutes the action and/or targets about to execute;
// ok=false means "no change" (neither substituted).
type ReplaceFunc func(ctx Context, action ActionFunc, targets Targets) (newAction ActionFunc, newTargets Targets, ok bool)
