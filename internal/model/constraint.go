package model

// ConstraintTracker maps an opaque string key to a usage counter, cleared
// explicitly by the host — typically at turn end (spec.md §3).
type ConstraintTracker struct {
	usage map[string]int
}

// NewConstraintTracker returns an empty tracker.
func NewConstraintTracker() *ConstraintTracker {
	return &ConstraintTracker{usage: make(map[string]int)}
}

// CheckOncePerTurn fails iff key is already present (spec.md §4.5).
func (c *ConstraintTracker) CheckOncePerTurn(key string) error {
	if c.usage[key] > 0 {
		return &ConstraintViolatedError{Key: key}
	}
	return nil
}

// MarkUsed inserts key, recording a single use.
func (c *ConstraintTracker) MarkUsed(key string) {
	c.usage[key]++
}

// CheckTimesPerTurn fails iff the counter for key has reached max.
func (c *ConstraintTracker) CheckTimesPerTurn(key string, max int) error {
	if c.usage[key] >= max {
		return &ConstraintViolatedError{Key: key}
	}
	return nil
}

// IncrementUsage increments the counter for key.
func (c *ConstraintTracker) IncrementUsage(key string) {
	c.usage[key]++
}

// Clear resets the tracker. Idempotent: clearing an already-empty tracker
// is a no-op observable difference.
func (c *ConstraintTracker) Clear() {
	c.usage = make(map[string]int)
}

// UsageOf returns the current counter for key (0 if unseen); exposed for
// tests and diagnostics only.
func (c *ConstraintTracker) UsageOf(key string) int {
	return c.usage[key]
}
