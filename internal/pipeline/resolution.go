package pipeline

import (
	"errors"

	"github.com/chesedcore/Evesses/internal/model"
)

// ResolutionPhase executes eff's main action and compound steps through
// the floodgate pipeline, then commits whatever events resulted
// (spec.md §4.1 Resolution phase, §4.1 Commit phase).
func ResolutionPhase(d Deps, eff *model.Effect, targets model.Targets, ctx model.Context) error {
	mainResult, err := runAction(d, ctx, eff.Action, targets)
	if err != nil {
		var activationNegated *model.ActivationNegatedError
		var effectNegated *model.EffectNegatedError
		switch {
		case errors.As(err, &activationNegated):
			// The effect never happened: no timing event, propagate.
			if d.OnNegated != nil {
				d.OnNegated("activation", activationNegated.Reason)
			}
			return err
		case errors.As(err, &effectNegated):
			if d.OnNegated != nil {
				d.OnNegated("effect", effectNegated.Reason)
			}
			synthetic := model.NewTimingEvent("effect_negated", 2, map[string]any{
				"effect": eff,
				"reason": effectNegated.Reason,
			})
			CommitPhase(d, []model.TimingEvent{synthetic})
			return nil
		default:
			return err
		}
	}

	prevSucceeded := mainResult.Succeeded
	prevErrored := false
	cumulative := append([]model.TimingEvent(nil), mainResult.Events...)

	for idx, step := range eff.Compounds {
		if !model.ShouldExecuteCompound(step.Kind, prevSucceeded, prevErrored) {
			continue
		}
		stepResult, stepErr := runAction(d, ctx, step.Action, targets)
		if stepErr == nil {
			cumulative = append(cumulative, stepResult.Events...)
			prevSucceeded = stepResult.Succeeded
			prevErrored = false
			continue
		}

		var effectNegated *model.EffectNegatedError
		if errors.As(stepErr, &effectNegated) {
			cumulative = append(cumulative, model.NewTimingEvent("effect_negated", 2, map[string]any{
				"effect":         eff,
				"compound_index": idx,
				"reason":         effectNegated.Reason,
			}))
		}
		// ActivationNegated on a compound step is absorbed just like the
		// main step, per spec.md §9's open-question decision: no
		// synthetic event, the chain continues. Any other error is
		// likewise absorbed — compound-step failures never abort the
		// enclosing effect.
		prevSucceeded = false
		prevErrored = true
	}

	CommitPhase(d, cumulative)
	return nil
}

func runAction(d Deps, ctx model.Context, action model.ActionFunc, targets model.Targets) (model.ActionResult, error) {
	if action == nil {
		return model.None(), nil
	}
	return ApplyWithFloodgates(d, ctx, action, targets)
}
