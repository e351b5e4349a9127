package pipeline

import (
	"errors"

	"github.com/chesedcore/Evesses/internal/model"
)

// RequestPhase runs constraint evaluation, activation floodgates, cost
// probe/payment, and target selection for eff, in the order spec.md §4.1
// Request phase specifies. It does not push onto the chain stack — that
// is the chain loop's job (component E) once Request succeeds.
func RequestPhase(d Deps, eff *model.Effect, ctx model.Context) (model.Targets, error) {
	if err := evaluateConstraints(d, eff, ctx); err != nil {
		return nil, err
	}

	if f := firstForbidding(d, ctx, eff); f != nil {
		err := &model.ActionForbiddenError{Reason: "forbidden by active floodgate", FloodgateID: f.ID}
		if d.OnForbid != nil {
			d.OnForbid(f.ID, err.Reason)
		}
		if d.OnFloodgateApplied != nil {
			d.OnFloodgateApplied("forbid")
		}
		return nil, err
	}

	if eff.CostChecker != nil {
		if err := eff.CostChecker(ctx); err != nil {
			return nil, err
		}
	}

	if eff.Cost != nil {
		// Cost payment is not refundable even on later negation — the
		// engine never rolls this back (spec.md §4.1, §9).
		if err := eff.Cost(ctx); err != nil {
			return nil, err
		}
	}

	if eff.TargetSelector == nil {
		return model.Targets{}, nil
	}
	return eff.TargetSelector(ctx)
}

// evaluateConstraints runs constraints in order, returning the first
// failure. A nil constraint is skipped with a non-fatal warning
// (spec.md §4.1 step 1).
func evaluateConstraints(d Deps, eff *model.Effect, ctx model.Context) error {
	for i, c := range eff.Constraints {
		if c == nil {
			d.logger().Warn("evesses: nil constraint skipped", "index", i)
			continue
		}
		if err := c(ctx); err != nil {
			var violated *model.ConstraintViolatedError
			if d.OnConstraintViolated != nil && errors.As(err, &violated) {
				d.OnConstraintViolated(violated.Key)
			}
			return err
		}
	}
	return nil
}

// firstForbidding scans active (Request, Forbid) floodgates in sorted
// order and returns the first whose predicate fails activation, or nil.
func firstForbidding(d Deps, ctx model.Context, eff *model.Effect) *model.Floodgate {
	for _, f := range d.Floodgates.ForPhaseKind(model.PhaseRequest, model.KindForbid) {
		if f.Forbid == nil {
			continue
		}
		if f.Forbid(ctx, eff) {
			return f
		}
	}
	return nil
}
