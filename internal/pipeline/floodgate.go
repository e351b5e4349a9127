package pipeline

import "github.com/chesedcore/Evesses/internal/model"

// ApplyWithFloodgates executes action against targets through the
// Resolution-phase floodgate pipeline (spec.md §4.2): a chained Replace
// pass, the (possibly substituted) execution itself, and — only on
// success — a Modify pass over each emitted event.
func ApplyWithFloodgates(d Deps, ctx model.Context, action model.ActionFunc, targets model.Targets) (model.ActionResult, error) {
	action, targets = applyReplacePass(d, ctx, action, targets)

	res, err := action(ctx, targets)
	if err != nil {
		// spec.md §4.2 step 3: surface execution errors immediately,
		// do not apply Modify.
		return model.ActionResult{}, err
	}

	res.Events = applyModifyPass(d, ctx, res.Events)
	return res, nil
}

// applyReplacePass walks active (Resolution, Replace) floodgates in
// sorted order, chaining substitutions (spec.md §4.2 step 1).
func applyReplacePass(d Deps, ctx model.Context, action model.ActionFunc, targets model.Targets) (model.ActionFunc, model.Targets) {
	for _, f := range d.Floodgates.ForPhaseKind(model.PhaseResolution, model.KindReplace) {
		if f.Replace == nil {
			continue
		}
		newAction, newTargets, ok := f.Replace(ctx, action, targets)
		if !ok {
			continue
		}
		if d.OnFloodgateApplied != nil {
			d.OnFloodgateApplied("replace")
		}
		if newAction != nil {
			action = newAction
		}
		if newTargets != nil {
			targets = newTargets
		}
	}
	return action, targets
}

// applyModifyPass walks active (Resolution, Modify) floodgates in sorted
// order, transforming each event in place (spec.md §4.2 step 5).
func applyModifyPass(d Deps, ctx model.Context, events []model.TimingEvent) []model.TimingEvent {
	modifiers := d.Floodgates.ForPhaseKind(model.PhaseResolution, model.KindModify)
	if len(modifiers) == 0 || len(events) == 0 {
		return events
	}
	out := make([]model.TimingEvent, len(events))
	copy(out, events)
	for _, f := range modifiers {
		if f.Modify == nil {
			continue
		}
		for i, ev := range out {
			if newEv, ok := f.Modify(ctx, ev); ok {
				out[i] = newEv
				if d.OnFloodgateApplied != nil {
					d.OnFloodgateApplied("modify")
				}
			}
		}
	}
	return out
}
