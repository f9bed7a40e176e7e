package pathlen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Sentinel errors for path-length computations.
var (
	// ErrInvalidGraph is returned when the view is nil or inconsistent: its
	// node set disagrees with NodeCount, a neighbor lookup fails or names a
	// node outside the set, or the view changed while being read.
	// The underlying bfs or core error stays reachable through errors.Is.
	ErrInvalidGraph = errors.New("pathlen: invalid graph view")

	// ErrGraphMutated is wrapped by ErrInvalidGraph when a core.Versioned
	// view reports a different version after the computation than before.
	ErrGraphMutated = errors.New("pathlen: graph mutated during computation")

	// ErrResourceExhausted is returned when the worker pool cannot be sized
	// or the node count exceeds the WithMaxNodes budget.
	ErrResourceExhausted = errors.New("pathlen: resource exhausted")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathlen: invalid option supplied")
)

// DefaultParallelThreshold is the node count below which sources are
// processed sequentially.
const DefaultParallelThreshold = 300

// Option configures a computation via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the tunables of TotalDistance and AverageShortestPathLength.
type Options struct {
	// Ctx cancels outstanding work; the call then fails with Ctx.Err().
	Ctx context.Context

	// Workers bounds the pool. 0 means runtime.GOMAXPROCS(0).
	Workers int

	// ParallelThreshold: graphs with fewer nodes run sequentially.
	ParallelThreshold int

	// MaxNodes, if > 0, rejects larger graphs with ErrResourceExhausted.
	MaxNodes int

	// ReachableOnly divides by the number of reachable ordered pairs
	// instead of N·(N−1).
	ReachableOnly bool

	// Logger receives Debug records; nil means slog.Default().
	Logger *slog.Logger

	err error
}

// DefaultOptions returns Options with a background context, one worker per
// available CPU, DefaultParallelThreshold and no node budget.
func DefaultOptions() Options {
	return Options{
		Ctx:               context.Background(),
		ParallelThreshold: DefaultParallelThreshold,
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}

	return o
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers bounds the number of concurrent BFS tasks.
//
//	n > 0: at most n tasks in flight
//	n == 0: runtime.GOMAXPROCS(0)
//	n < 0: ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithParallelThreshold sets the minimum node count for parallel execution.
// 0 parallelizes every non-empty graph; negative values are a violation.
func WithParallelThreshold(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: ParallelThreshold cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.ParallelThreshold = n
	}
}

// WithMaxNodes sets an admission budget; 0 disables it.
func WithMaxNodes(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxNodes cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxNodes = n
	}
}

// WithReachableOnly averages over reachable ordered pairs only.
func WithReachableOnly() Option {
	return func(o *Options) { o.ReachableOnly = true }
}

// WithLogger routes Debug records to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Totals is the aggregate of one all-sources traversal.
type Totals struct {
	// Nodes is N, isolated nodes included.
	Nodes int

	// Sum is the total hop distance over all reachable ordered pairs.
	Sum int64

	// ReachablePairs counts ordered pairs (s, t), s != t, with t reachable from s.
	ReachablePairs int64
}

// Average applies the default policy to t. See Average.
func (t Totals) Average() float64 { return Average(t.Sum, t.Nodes) }

// ReachableAverage applies the reachable-pairs policy to t. See ReachableAverage.
func (t Totals) ReachableAverage() float64 {
	return ReachableAverage(t.Sum, t.ReachablePairs, t.Nodes)
}
