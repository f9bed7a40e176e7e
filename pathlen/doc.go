// Package pathlen computes the unweighted average shortest-path length of a
// graph: the mean hop distance over all ordered pairs of distinct nodes.
//
// What
//
//   - TotalDistance runs one breadth-first search per node (bfs.Searcher)
//     and folds the per-source sums into Totals{Nodes, Sum, ReachablePairs}.
//     Large graphs fan out one task per source onto a bounded
//     github.com/sourcegraph/conc result pool; small graphs run sequentially.
//   - Average applies the edge-case policy that turns a sum into a scalar.
//   - AverageShortestPathLength combines both for a core.GraphView.
//
// Policy, first match wins:
//
//	N == 0 → NaN
//	N == 1 → 0
//	N > 1  → Sum / (N·(N−1))
//
// Unreachable pairs contribute nothing to the sum but still count toward the
// denominator, so a graph without edges averages to 0. WithReachableOnly
// switches the denominator to the number of reachable ordered pairs.
//
// Undirected mode follows edges in both directions and still counts every
// pair twice, once per ordering.
//
// Concurrency
//
//	The view is shared read-only by all tasks. Each worker reuses one
//	bfs.Searcher; no accumulator is shared. The first failing task cancels
//	the rest and the call returns that error with no partial result.
//	A core.Versioned view that changes during the call is reported as
//	ErrInvalidGraph wrapping ErrGraphMutated.
//
// Telemetry
//
//	Every call opens an OpenTelemetry span and updates the counters
//	pathlen_runs_total and pathlen_sources_total and the histogram
//	pathlen_duration_seconds through the global providers. Debug records go
//	to the configured *slog.Logger.
//
// Options
//
//   - WithContext(ctx):          cancellation and deadlines.
//   - WithWorkers(n):            pool bound; 0 = GOMAXPROCS.
//   - WithParallelThreshold(n):  minimum node count for the pool (default 300).
//   - WithMaxNodes(n):           admission budget; larger graphs → ErrResourceExhausted.
//   - WithReachableOnly():       average over reachable pairs only.
//   - WithLogger(l):             slog destination.
//
// Errors
//
//   - ErrOptionViolation    invalid option value or direction.
//   - ErrInvalidGraph       nil or inconsistent view; wraps the bfs/core cause.
//   - ErrResourceExhausted  node budget exceeded or pool cannot be sized.
//   - context.Canceled / context.DeadlineExceeded.
package pathlen
