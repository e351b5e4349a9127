package model

// Trigger is a passive rule matching committed timing events and
// generating new effects in response (spec.md §3).
type Trigger struct {
	ID       string
	Timing   string
	Layer    int
	Filter   TriggerFilterFunc
	Optional bool
	Effect   *Effect
	Lifetime LifetimeHandle
}

// Matches reports whether ev matches this trigger's timing/layer and
// passes its filter, per spec.md §4.1 Commit phase step 4.
func (t *Trigger) Matches(ev TimingEvent) bool {
	if t.Timing != ev.Timing || t.Layer != ev.Layer {
		return false
	}
	if t.Filter == nil {
		return true
	}
	return t.Filter(ev)
}
