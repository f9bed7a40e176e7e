package pathlen

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/dfacoet/hopgraph/bfs"
	"github.com/dfacoet/hopgraph/core"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// partial is the contribution of one source.
type partial struct {
	sum     int64
	reached int64
}

// run carries everything a single TotalDistance call shares across tasks.
type run struct {
	view core.GraphView
	idx  *bfs.Index
	dir  core.Direction

	searchers sync.Pool // *bfs.Searcher, one live per worker
}

// TotalDistance runs one BFS per node of view and folds the results into
// Totals. Undirected counts (s,t) and (t,s) separately.
//
// Graphs with at least ParallelThreshold nodes fan out one task per source
// onto a bounded pool; smaller graphs, or Workers == 1, run sequentially.
// Either way the sums are folded after all sources are done, so the result
// does not depend on scheduling.
//
// Errors: ErrOptionViolation, ErrInvalidGraph (wrapping the bfs or core
// cause), ErrResourceExhausted, or the context error. No partial result is
// returned on failure.
func TotalDistance(view core.GraphView, dir core.Direction, opts ...Option) (Totals, error) {
	o := resolve(opts)
	if o.err != nil {
		return Totals{}, o.err
	}
	if !dir.Valid() {
		return Totals{}, fmt.Errorf("%w: %w", ErrOptionViolation, core.ErrUnknownDirection)
	}
	if view == nil {
		return Totals{}, fmt.Errorf("%w: %w", ErrInvalidGraph, bfs.ErrGraphNil)
	}

	ctx, span := tracer.Start(o.Ctx, "pathlen.TotalDistance",
		trace.WithAttributes(attribute.String("pathlen.direction", dir.String())),
	)
	defer span.End()
	start := time.Now()

	t, m, err := totalDistance(ctx, view, dir, o)
	span.SetAttributes(
		attribute.Int("pathlen.node_count", t.Nodes),
		attribute.Int("pathlen.workers", m.workers),
		attribute.String("pathlen.mode", m.name),
	)
	recordRun(ctx, time.Since(start), t.Nodes, m.name, err == nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		o.Logger.Debug("pathlen: total distance failed", "error", err, "mode", m.name)
		return Totals{}, err
	}
	o.Logger.Debug("pathlen: total distance computed",
		append(slogAttrs(t, dir, time.Since(start)), "mode", m.name, "workers", m.workers)...,
	)

	return t, nil
}

// mode describes how a call was executed.
type mode struct {
	name    string
	workers int
}

func totalDistance(ctx context.Context, view core.GraphView, dir core.Direction, o Options) (Totals, mode, error) {
	m := mode{name: "sequential", workers: 1}

	var before uint64
	versioned, isVersioned := view.(core.Versioned)
	if isVersioned {
		before = versioned.Version()
	}

	idx, err := bfs.NewIndex(view)
	if err != nil {
		return Totals{}, m, classify(err)
	}
	n := idx.Len()
	if o.MaxNodes > 0 && n > o.MaxNodes {
		return Totals{Nodes: n}, m, fmt.Errorf("%w: %d nodes exceed budget of %d", ErrResourceExhausted, n, o.MaxNodes)
	}

	workers := o.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers < 1 {
		return Totals{Nodes: n}, m, fmt.Errorf("%w: cannot size pool with %d workers", ErrResourceExhausted, workers)
	}

	r := &run{view: view, idx: idx, dir: dir}
	r.searchers.New = func() any {
		// view and dir were validated above; NewSearcher cannot fail here
		s, _ := bfs.NewSearcher(view, idx, dir)
		return s
	}

	var parts []partial
	switch {
	case n == 0:
	case n < o.ParallelThreshold || workers == 1:
		parts, err = r.sequential(ctx)
	default:
		m = mode{name: "parallel", workers: min(workers, n)}
		parts, err = r.parallel(ctx, m.workers)
	}
	if err != nil {
		return Totals{Nodes: n}, m, classify(err)
	}

	if isVersioned && versioned.Version() != before {
		return Totals{Nodes: n}, m, fmt.Errorf("%w: %w", ErrInvalidGraph, ErrGraphMutated)
	}

	t := Totals{Nodes: n}
	for _, p := range parts {
		t.Sum += p.sum
		t.ReachablePairs += p.reached
	}

	return t, m, nil
}

// sequential runs every source on one Searcher.
func (r *run) sequential(ctx context.Context) ([]partial, error) {
	s := r.searchers.Get().(*bfs.Searcher)
	defer r.searchers.Put(s)

	parts := make([]partial, r.idx.Len())
	for p := range parts {
		sum, reached, err := s.SumContext(ctx, r.idx.ID(p))
		if err != nil {
			return nil, err
		}
		parts[p] = partial{sum: sum, reached: reached}
	}

	return parts, nil
}

// parallel submits one task per source to a bounded result pool. The first
// failure cancels the remaining tasks and is the one reported.
func (r *run) parallel(ctx context.Context, workers int) ([]partial, error) {
	p := pool.NewWithResults[partial]().
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError().
		WithMaxGoroutines(workers)

	for i := range r.idx.Len() {
		source := r.idx.ID(i)
		p.Go(func(ctx context.Context) (partial, error) {
			s := r.searchers.Get().(*bfs.Searcher)
			defer r.searchers.Put(s)

			sum, reached, err := s.SumContext(ctx, source)
			return partial{sum: sum, reached: reached}, err
		})
	}

	return p.Wait()
}

// classify maps lower-level failures onto this package's sentinels.
// Context errors pass through untouched.
func classify(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrInvalidGraph, err)
}
