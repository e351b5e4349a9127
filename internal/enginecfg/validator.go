package enginecfg

import "fmt"

// Validate checks an EngineConfig for range errors (a negative
// MaxIterations), aggregating them the way the teacher's config.Validate
// does.
func Validate(cfg *EngineConfig) error {
	var errs []string
	if cfg.MaxIterations < 0 {
		errs = append(errs, "max_iterations must not be negative")
	}
	if len(errs) > 0 {
		return fmt.Errorf("enginecfg validation errors: %v", errs)
	}
	return nil
}
