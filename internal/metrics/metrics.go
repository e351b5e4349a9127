// Package metrics instruments the engine with Prometheus collectors, the
// way the teacher instruments event throughput — here repurposed from
// per-event HTTP-ingestion counters to per-effect chain-resolution
// counters. The engine never opens an HTTP listener itself (no networking
// per spec.md §1); a host that wants a /metrics endpoint wires
// promhttp.Handler() against prometheus.DefaultRegisterer itself.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EffectsActivated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "evesses_effects_activated_total",
		Help: "Total number of effects that completed the Request phase successfully.",
	})

	EffectsForbidden = promauto.NewCounter(prometheus.CounterOpts{
		Name: "evesses_effects_forbidden_total",
		Help: "Total number of effects rejected by a Request-phase forbid floodgate.",
	})

	ChainResolutions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "evesses_chain_resolutions_total",
		Help: "Total number of resolve_chain calls that ran to completion.",
	})

	ChainIterations = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "evesses_chain_iterations",
		Help:    "Outer chain-loop iterations consumed per resolve_chain call.",
		Buckets: []float64{1, 2, 3, 5, 10, 25, 50, 100, 250, 1000},
	})

	TriggersMatched = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "evesses_triggers_matched_total",
		Help: "Total number of trigger matches, labelled by timing name.",
	}, []string{"timing"})

	FloodgatesApplied = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "evesses_floodgates_applied_total",
		Help: "Total number of floodgate applications, labelled by kind.",
	}, []string{"kind"})

	InfiniteLoopDetections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "evesses_infinite_loop_detections_total",
		Help: "Total number of resolve_chain calls aborted by the max_iterations guard.",
	})

	ConstraintViolations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "evesses_constraint_violations_total",
		Help: "Total number of constraint failures, labelled by constraint key.",
	}, []string{"key"})
)
