// Package enginecfg holds the engine's host-tunable configuration. It is
// the adapted heir of the teacher's internal/config package: where the
// teacher's RuleConfig declaratively described an entire DAG of
// scenarios/conditions/actions loaded from YAML, Evesses' effects,
// triggers, and floodgates are always built in code through
// internal/builder (spec.md's Non-goals exclude serialization of engine
// state). What survives here is the teacher's pattern for a small,
// validated, hot-reloadable tunables struct.
package enginecfg

// EngineConfig holds the engine's tunable knobs (spec.md §6).
type EngineConfig struct {
	// MaxIterations bounds the outer chain loop (spec.md §4.3). Zero
	// means "unset"; ApplyDefaults fills in 1000.
	MaxIterations int `yaml:"max_iterations"`
}

// DefaultMaxIterations mirrors spec.md §6's default of 1000.
const DefaultMaxIterations = 1000

// ApplyDefaults fills unset fields, the way the teacher's loader applies
// EngineConf defaults after an otherwise-valid YAML parse.
func (c *EngineConfig) ApplyDefaults() {
	if c.MaxIterations == 0 {
		c.MaxIterations = DefaultMaxIterations
	}
}
