// Package telemetry provides a minimal timing collector for instrumenting
// a handful of named phases in a CLI command (e.g. "balance.load",
// "balance.build") and printing a flat report of how long each took.
//
// Collectors are passed through context so instrumentation can be turned
// on or off without changing function signatures:
//
//	collector := telemetry.NewTimingCollector()
//	ctx := telemetry.WithCollector(context.Background(), collector)
//	timer := telemetry.FromContext(ctx).Start("balance.load")
//	// ... work ...
//	timer.End()
//	collector.Report(os.Stderr)
package telemetry

import (
	"context"
	"io"
)

type contextKey int

const collectorKey contextKey = iota

// Collector times named phases and reports their durations.
//
// Collector implementations must be safe for concurrent use: multiple
// goroutines may call Start independently. Individual Timer values
// returned by Start are not safe for concurrent use.
type Collector interface {
	// Start begins timing a phase and returns a Timer to be stopped with
	// End() when the phase completes.
	Start(name string) Timer

	// Report writes the collected phase durations to w, in the order
	// each was started.
	Report(w io.Writer)
}

// Timer stops a single phase's clock.
type Timer interface {
	End()
}

// WithCollector adds a collector to a context, retrievable with
// FromContext.
func WithCollector(ctx context.Context, collector Collector) context.Context {
	return context.WithValue(ctx, collectorKey, collector)
}

// FromContext extracts the collector stored in ctx, or a no-op collector
// if none was set.
func FromContext(ctx context.Context) Collector {
	if collector, ok := ctx.Value(collectorKey).(Collector); ok {
		return collector
	}
	return noOpCollector{}
}
