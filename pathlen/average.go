package pathlen

import (
	"math"
	"slices"
	"time"

	"github.com/dfacoet/hopgraph/core"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Average turns a distance sum over n nodes into the mean over all ordered
// pairs of distinct nodes. Rules, first match wins:
//
//	n == 0 → NaN
//	n == 1 → 0
//	n > 1  → sum / (n·(n−1))
//
// Unreachable pairs count in the denominator, so a graph without edges
// averages to 0.
func Average(sum int64, n int) float64 {
	switch {
	case n <= 0:
		return math.NaN()
	case n == 1:
		return 0
	}
	nf := float64(n)

	return float64(sum) / (nf * (nf - 1))
}

// ReachableAverage is Average with the denominator restricted to reachable
// ordered pairs. n == 0 → NaN, n == 1 → 0, pairs == 0 → NaN.
func ReachableAverage(sum, pairs int64, n int) float64 {
	switch {
	case n <= 0:
		return math.NaN()
	case n == 1:
		return 0
	case pairs == 0:
		return math.NaN()
	}

	return float64(sum) / float64(pairs)
}

// AverageShortestPathLength returns the average hop distance of view over
// all ordered pairs of distinct nodes, following outgoing edges, or edges in
// both directions when asUndirected is set.
//
// The result is NaN for an empty graph and 0 for a single node. With
// WithReachableOnly the denominator is the number of reachable pairs.
// Errors are those of TotalDistance; on error the value is 0.
func AverageShortestPathLength(view core.GraphView, asUndirected bool, opts ...Option) (float64, error) {
	dir := core.Directed
	if asUndirected {
		dir = core.Undirected
	}
	o := resolve(opts)
	ctx, span := tracer.Start(o.Ctx, "pathlen.AverageShortestPathLength",
		trace.WithAttributes(
			attribute.String("pathlen.direction", dir.String()),
			attribute.Bool("pathlen.reachable_only", o.ReachableOnly),
		),
	)
	defer span.End()

	start := time.Now()
	t, err := TotalDistance(view, dir, append(slices.Clip(opts), WithContext(ctx))...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	avg := t.Average()
	if o.ReachableOnly {
		avg = t.ReachableAverage()
	}
	if !math.IsNaN(avg) {
		span.SetAttributes(attribute.Float64("pathlen.average", avg))
	}
	o.Logger.Debug("pathlen: average computed",
		slogAttrs(t, dir, time.Since(start))...,
	)

	return avg, nil
}
