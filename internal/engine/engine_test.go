package engine_test

import (
	"errors"
	"testing"

	"github.com/chesedcore/Evesses/internal/engine"
	"github.com/chesedcore/Evesses/internal/model"
)

func emit(timing string, layer int, data map[string]any) model.ActionFunc {
	return func(ctx model.Context, targets model.Targets) (model.ActionResult, error) {
		return model.SomeEvent(model.NewTimingEvent(timing, layer, data)), nil
	}
}

func TestLIFOChainOrdering(t *testing.T) {
	eng := engine.New()

	e1 := eng.NewEffect().Action(emit("e1", 2, nil)).Build()
	e2 := eng.NewEffect().Action(emit("e2", 2, nil)).Build()
	e3 := eng.NewEffect().Action(emit("e3", 2, nil)).Build()

	if err := eng.ActivateEffect(e1, nil); err != nil {
		t.Fatalf("activate e1: %v", err)
	}
	if err := eng.ActivateEffect(e2, nil); err != nil {
		t.Fatalf("activate e2: %v", err)
	}
	if err := eng.ActivateEffect(e3, nil); err != nil {
		t.Fatalf("activate e3: %v", err)
	}

	if err := eng.ResolveChain(nil); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	history := eng.GetTimingHistory()
	if len(history) != 3 {
		t.Fatalf("expected 3 events, got %d", len(history))
	}
	wantOrder := []string{"e3", "e2", "e1"}
	for i, want := range wantOrder {
		if history[i].Timing != want {
			t.Errorf("history[%d].Timing = %q, want %q", i, history[i].Timing, want)
		}
		if history[i].Timestamp != int64(i) {
			t.Errorf("history[%d].Timestamp = %d, want %d", i, history[i].Timestamp, i)
		}
	}
}

func TestTriggerCascade(t *testing.T) {
	eng := engine.New()

	eng.OnTiming("destroyed", 2).Action(emit("drawn", 2, nil)).Build()
	eng.OnTiming("drawn", 2).Action(emit("lp_gained", 2, nil)).Build()

	e := eng.NewEffect().Action(emit("destroyed", 2, nil)).Build()
	if err := eng.ActivateEffect(e, nil); err != nil {
		t.Fatalf("activate: %v", err)
	}
	if err := eng.ResolveChain(nil); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	history := eng.GetTimingHistory()
	want := []string{"destroyed", "drawn", "lp_gained"}
	if len(history) != len(want) {
		t.Fatalf("got %d events, want %d", len(history), len(want))
	}
	for i, timing := range want {
		if history[i].Timing != timing {
			t.Errorf("history[%d].Timing = %q, want %q", i, history[i].Timing, timing)
		}
	}
}

func TestForbidFloodgate(t *testing.T) {
	eng := engine.New()

	eng.Floodgate().Forbid(func(ctx model.Context, eff *model.Effect) bool {
		return eff.HasTag("spell")
	}).Build()

	e := eng.NewEffect().Tag("spell").Action(emit("resolved", 2, nil)).Build()

	err := eng.ActivateEffect(e, nil)
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	var forbidden *model.ActionForbiddenError
	if !errors.As(err, &forbidden) {
		t.Fatalf("expected *model.ActionForbiddenError, got %T (%v)", err, err)
	}
	if len(eng.GetTimingHistory()) != 0 {
		t.Fatalf("expected empty history, got %d events", len(eng.GetTimingHistory()))
	}
}

func TestEffectNegationCommitsMarker(t *testing.T) {
	eng := engine.New()

	e := eng.NewEffect().Action(func(ctx model.Context, targets model.Targets) (model.ActionResult, error) {
		return model.ActionResult{}, &model.EffectNegatedError{Reason: "countered"}
	}).Build()

	if err := eng.ActivateEffect(e, nil); err != nil {
		t.Fatalf("activate: %v", err)
	}
	if err := eng.ResolveChain(nil); err != nil {
		t.Fatalf("expected resolve_chain to return nil, got %v", err)
	}

	history := eng.GetTimingHistory()
	if len(history) != 1 {
		t.Fatalf("expected exactly 1 event, got %d", len(history))
	}
	ev := history[0]
	if ev.Timing != "effect_negated" {
		t.Errorf("Timing = %q, want effect_negated", ev.Timing)
	}
	if ev.Layer != 2 {
		t.Errorf("Layer = %d, want 2", ev.Layer)
	}
	if ev.Data["reason"] != "countered" {
		t.Errorf("Data[reason] = %v, want countered", ev.Data["reason"])
	}
}

func TestAndIfYouDoSemantics(t *testing.T) {
	for _, succeeded := range []bool{false, true} {
		succeeded := succeeded
		t.Run(boolLabel(succeeded), func(t *testing.T) {
			eng := engine.New()

			main := func(ctx model.Context, targets model.Targets) (model.ActionResult, error) {
				return model.ActionResult{Succeeded: succeeded}, nil
			}
			e := eng.NewEffect().
				Action(main).
				AndIfYouDo(emit("drawn", 2, nil)).
				Build()

			if err := eng.ActivateEffect(e, nil); err != nil {
				t.Fatalf("activate: %v", err)
			}
			if err := eng.ResolveChain(nil); err != nil {
				t.Fatalf("resolve: %v", err)
			}

			drawn := 0
			for _, ev := range eng.GetTimingHistory() {
				if ev.Timing == "drawn" {
					drawn++
				}
			}
			want := 0
			if succeeded {
				want = 1
			}
			if drawn != want {
				t.Errorf("drawn events = %d, want %d", drawn, want)
			}
		})
	}
}

func boolLabel(b bool) string {
	if b {
		return "succeeded"
	}
	return "not_succeeded"
}

func TestInfiniteLoopCap(t *testing.T) {
	eng := engine.New(engine.WithMaxChainIterations(50))

	eng.OnTiming("x", 1).Action(emit("x", 1, nil)).Build()
	e := eng.NewEffect().Action(emit("x", 1, nil)).Build()

	if err := eng.ActivateEffect(e, nil); err != nil {
		t.Fatalf("activate: %v", err)
	}

	err := eng.ResolveChain(nil)
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	var loopErr *model.InfiniteLoopDetectedError
	if !errors.As(err, &loopErr) {
		t.Fatalf("expected *model.InfiniteLoopDetectedError, got %T (%v)", err, err)
	}
	if loopErr.Iterations <= 50 {
		t.Errorf("Iterations = %d, want > 50", loopErr.Iterations)
	}
}

func TestReentrancyGuardPanicsFromActivate(t *testing.T) {
	eng := engine.New()

	e := eng.NewEffect().Action(func(ctx model.Context, targets model.Targets) (model.ActionResult, error) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("expected a panic from the reentrant ActivateEffect call")
			}
		}()
		_ = eng.ActivateEffect(eng.NewEffect().Build(), ctx)
		return model.None(), nil
	}).Build()

	if err := eng.ActivateEffect(e, nil); err != nil {
		t.Fatalf("activate: %v", err)
	}
	_ = eng.ResolveChain(nil)
}

func TestOncePerTurnConstraint(t *testing.T) {
	eng := engine.New()

	build := func() *model.Effect {
		return eng.NewEffect().OncePerTurn("summon_once").Action(emit("summoned", 2, nil)).Build()
	}

	if err := eng.ActivateEffect(build(), nil); err != nil {
		t.Fatalf("first activate: %v", err)
	}

	err := eng.ActivateEffect(build(), nil)
	if err == nil {
		t.Fatal("expected a second activation with the same key to fail")
	}
	var violated *model.ConstraintViolatedError
	if !errors.As(err, &violated) {
		t.Fatalf("expected *model.ConstraintViolatedError, got %T (%v)", err, err)
	}

	eng.ClearConstraintTracker()
	if err := eng.ActivateEffect(build(), nil); err != nil {
		t.Fatalf("activate after clear: %v", err)
	}
}
