package evesses_test

import (
	"testing"

	"github.com/chesedcore/Evesses"
)

func TestActivateEffectResultWrapsErrorAsResult(t *testing.T) {
	eng := evesses.NewEngine()
	eng.Floodgate().Forbid(func(ctx evesses.Context, eff *evesses.Effect) bool { return true }).Build()

	e := eng.NewEffect().Build()
	res := evesses.ActivateEffectResult(eng, e, nil)
	if res.IsOk() {
		t.Fatal("expected a forbidden activation to produce an Err result")
	}
	if res.UnwrapErr() == nil {
		t.Fatal("expected a non-nil error")
	}
}

func TestNewEngineEndToEnd(t *testing.T) {
	eng := evesses.NewEngine()

	e := eng.NewEffect().
		Action(func(ctx evesses.Context, targets evesses.Targets) (evesses.ActionResult, error) {
			return evesses.SomeEvent(evesses.NewEvent("drawn", 2, nil)), nil
		}).
		Build()

	if err := eng.ActivateEffect(e, nil); err != nil {
		t.Fatalf("ActivateEffect: %v", err)
	}
	if err := eng.ResolveChain(nil); err != nil {
		t.Fatalf("ResolveChain: %v", err)
	}

	history := eng.GetTimingHistory()
	if len(history) != 1 || history[0].Timing != "drawn" {
		t.Fatalf("history = %v", history)
	}
}
