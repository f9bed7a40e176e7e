package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strconv"

	"github.com/dfacoet/hopgraph/internal/config"
	"github.com/dfacoet/hopgraph/internal/edgelist"
	"github.com/dfacoet/hopgraph/pathlen"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"golang.org/x/sync/errgroup"
)

type avgFlags struct {
	configPath    string
	undirected    bool
	reachableOnly bool
	workers       int
	trace         bool
}

func newAvgCmd() *cobra.Command {
	var f avgFlags
	cmd := &cobra.Command{
		Use:   "avg FILE...",
		Short: "Average shortest-path length of edge-list files",
		Long: `Compute the average shortest-path length of every FILE.

Files are processed concurrently; results are printed as "FILE<TAB>VALUE" in
argument order. An empty graph prints NaN. Without --workers, GOMAXPROCS
goroutines are shared by the files in flight.

Settings come from --config (YAML), then HOPGRAPH_* environment variables,
then flags.

Examples:
  hopgraph avg grid.txt
  hopgraph avg --undirected --reachable-only a.txt b.txt
  hopgraph avg --trace big.txt 2> spans.json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAvg(cmd, f, args)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.configPath, "config", "", "YAML settings file")
	fl.BoolVar(&f.undirected, "undirected", false, "treat every edge as bidirectional")
	fl.BoolVar(&f.reachableOnly, "reachable-only", false, "average over reachable pairs only")
	fl.IntVar(&f.workers, "workers", 0, "concurrent BFS sources per graph (0 = GOMAXPROCS shared across files)")
	fl.BoolVar(&f.trace, "trace", false, "export spans as JSON to stderr")

	return cmd
}

func runAvg(cmd *cobra.Command, f avgFlags, files []string) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	fl := cmd.Flags()
	if fl.Changed("undirected") {
		cfg.Undirected = f.undirected
	}
	if fl.Changed("reachable-only") {
		cfg.ReachableOnly = f.reachableOnly
	}
	if fl.Changed("workers") {
		cfg.Workers = f.workers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	ctx := cmd.Context()
	if f.trace {
		shutdown, err := installTracer(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Warn("trace shutdown failed", "error", err)
			}
		}()
	}

	concurrent, perFile := splitWorkers(runtime.GOMAXPROCS(0), cfg.Workers, len(files))
	results := make([]float64, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrent)
	for i, path := range files {
		g.Go(func() error {
			graph, err := edgelist.ReadFile(path)
			if err != nil {
				return err
			}
			log := logger.With("file", path)
			log.Debug("graph loaded", "nodes", graph.NodeCount(), "edges", graph.EdgeCount())

			opts := append(cfg.PathlenOptions(),
				pathlen.WithWorkers(perFile), pathlen.WithContext(gctx), pathlen.WithLogger(log))
			avg, err := pathlen.AverageShortestPathLength(graph, cfg.Undirected, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = avg
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return printResults(cmd.OutOrStdout(), files, results)
}

// splitWorkers bounds the whole run to budget goroutines: files are processed
// min(budget, files) at a time and share the budget evenly. An explicit
// per-graph worker count is kept as given.
func splitWorkers(budget, workers, files int) (concurrent, perFile int) {
	concurrent = max(1, min(budget, files))
	if workers > 0 {
		return concurrent, workers
	}

	return concurrent, max(1, budget/concurrent)
}

func printResults(w io.Writer, files []string, results []float64) error {
	for i, path := range files {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", path, strconv.FormatFloat(results[i], 'g', -1, 64)); err != nil {
			return err
		}
	}

	return nil
}

// installTracer sends spans to w through a synchronous stdout exporter and
// returns the provider's shutdown func.
func installTracer(w io.Writer) (func(context.Context) error, error) {
	exp, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("create trace exporter: %w", err)
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exp),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}
