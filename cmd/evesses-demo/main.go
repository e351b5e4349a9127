// Command evesses-demo drives the engine through a small trigger cascade
// end to end, the way the teacher's cmd/server wired config, registry,
// and engine together — minus the HTTP listener and hot-reload, since
// Evesses has no network surface (spec.md §1 Non-goals).
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/chesedcore/Evesses"
)

func main() {
	maxIter := flag.Int("max-iterations", 0, "override the chain loop's max_iterations guard (0 = default)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	opts := []evesses.Option{evesses.WithLogger(logger)}
	if *maxIter > 0 {
		opts = append(opts, evesses.WithMaxChainIterations(*maxIter))
	}
	eng := evesses.NewEngine(opts...)

	// T1: on ("destroyed", 2), mandatory, emits ("drawn", 2).
	eng.OnTiming("destroyed", 2).
		Action(func(ctx evesses.Context, targets evesses.Targets) (evesses.ActionResult, error) {
			return evesses.SomeEvent(evesses.NewEvent("drawn", 2, nil)), nil
		}).
		Build()

	// T2: on ("drawn", 2), mandatory, emits ("lp_gained", 2).
	eng.OnTiming("drawn", 2).
		Action(func(ctx evesses.Context, targets evesses.Targets) (evesses.ActionResult, error) {
			return evesses.SomeEvent(evesses.NewEvent("lp_gained", 2, map[string]any{"amount": 500})), nil
		}).
		Build()

	e := eng.NewEffect().
		Action(func(ctx evesses.Context, targets evesses.Targets) (evesses.ActionResult, error) {
			return evesses.SomeEvent(evesses.NewEvent("destroyed", 2, map[string]any{"card": "demo-monster"})), nil
		}).
		Build()

	if err := eng.ActivateEffect(e, nil); err != nil {
		slog.Error("activation failed", "error", err)
		os.Exit(1)
	}
	if err := eng.ResolveChain(nil); err != nil {
		slog.Error("chain resolution failed", "error", err)
		os.Exit(1)
	}

	for _, ev := range eng.GetTimingHistory() {
		slog.Info("committed", "timing", ev.Timing, "layer", ev.Layer, "timestamp", ev.Timestamp, "data", ev.Data)
	}
}
