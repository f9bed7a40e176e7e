package pathlen

import (
	"context"
	"sync"
	"time"

	"github.com/dfacoet/hopgraph/core"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Package-level tracer and meter. Both delegate to whatever providers are
// installed globally, so nothing is exported unless the host opts in.
var (
	tracer = otel.Tracer("hopgraph.pathlen")
	meter  = otel.Meter("hopgraph.pathlen")
)

var (
	runsTotal    metric.Int64Counter
	sourcesTotal metric.Int64Counter
	runLatency   metric.Float64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the instruments. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		runsTotal, err = meter.Int64Counter(
			"pathlen_runs_total",
			metric.WithDescription("Total number of all-sources traversals"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		sourcesTotal, err = meter.Int64Counter(
			"pathlen_sources_total",
			metric.WithDescription("Total number of BFS sources processed"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		runLatency, err = meter.Float64Histogram(
			"pathlen_duration_seconds",
			metric.WithDescription("Duration of all-sources traversals"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// recordRun records one TotalDistance call.
func recordRun(ctx context.Context, d time.Duration, nodes int, mode string, success bool) {
	if err := initMetrics(); err != nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.Bool("success", success),
		attribute.String("mode", mode),
	)
	runsTotal.Add(ctx, 1, attrs)
	runLatency.Record(ctx, d.Seconds(), attrs)
	if success {
		sourcesTotal.Add(ctx, int64(nodes))
	}
}

// slogAttrs renders the common log fields of a finished computation.
func slogAttrs(t Totals, dir core.Direction, elapsed time.Duration) []any {
	return []any{
		"nodes", t.Nodes,
		"direction", dir.String(),
		"sum", t.Sum,
		"reachable_pairs", t.ReachablePairs,
		"elapsed", elapsed,
	}
}
