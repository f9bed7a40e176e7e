package main

import (
	"fmt"
	"strconv"

	"github.com/dfacoet/hopgraph/builder"
	"github.com/dfacoet/hopgraph/core"
	"github.com/dfacoet/hopgraph/internal/edgelist"
	"github.com/spf13/cobra"
)

type genFlags struct {
	bidirectional bool
	isolated      int
	seed          int64
}

// generator describes one "gen" subcommand.
type generator struct {
	use   string
	short string
	nargs int
	build func(args []string) (builder.Constructor, error)
}

func generators() []generator {
	single := func(fn func(int) builder.Constructor) func([]string) (builder.Constructor, error) {
		return func(args []string) (builder.Constructor, error) {
			n, err := atoi("N", args[0])
			if err != nil {
				return nil, err
			}
			return fn(n), nil
		}
	}

	return []generator{
		{"cycle N", "Directed cycle i → i+1 mod N", 1, single(builder.Cycle)},
		{"path N", "Directed path i → i+1", 1, single(builder.Path)},
		{"star N", "Star with arcs from node 0 to every leaf", 1, single(builder.Star)},
		{"complete N", "Complete digraph on N nodes", 1, single(builder.Complete)},
		{"grid ROWS COLS", "Lattice with arcs pointing right and down", 2, func(args []string) (builder.Constructor, error) {
			r, err := atoi("ROWS", args[0])
			if err != nil {
				return nil, err
			}
			c, err := atoi("COLS", args[1])
			if err != nil {
				return nil, err
			}
			return builder.Grid(r, c), nil
		}},
		{"random N P", "Arc u → v with probability P for every ordered pair", 2, func(args []string) (builder.Constructor, error) {
			n, err := atoi("N", args[0])
			if err != nil {
				return nil, err
			}
			p, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return nil, fmt.Errorf("P: %w", err)
			}
			return builder.RandomSparse(n, p), nil
		}},
	}
}

func atoi(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return n, nil
}

func newGenCmd() *cobra.Command {
	var f genFlags
	cmd := &cobra.Command{
		Use:   "gen KIND ARGS...",
		Short: "Write a generated graph as an edge list",
		Long: `Write a generated graph to stdout in edge-list format.

Examples:
  hopgraph gen cycle 32 --isolated 32
  hopgraph gen grid 30 11 --bidirectional
  hopgraph gen random 1000 0.01 --seed 7`,
	}
	pf := cmd.PersistentFlags()
	pf.BoolVar(&f.bidirectional, "bidirectional", false, "add the reverse of every arc")
	pf.IntVar(&f.isolated, "isolated", 0, "append this many isolated nodes")
	pf.Int64Var(&f.seed, "seed", 1, "random seed")

	for _, gen := range generators() {
		cmd.AddCommand(&cobra.Command{
			Use:   gen.use,
			Short: gen.short,
			Args:  cobra.ExactArgs(gen.nargs),
			RunE: func(cmd *cobra.Command, args []string) error {
				con, err := gen.build(args)
				if err != nil {
					return err
				}
				return runGen(cmd, f, con)
			},
		})
	}

	return cmd
}

func runGen(cmd *cobra.Command, f genFlags, con builder.Constructor) error {
	bopts := []builder.BuilderOption{builder.WithSeed(f.seed)}
	if f.bidirectional {
		bopts = append(bopts, builder.WithBidirectional())
	}
	cons := []builder.Constructor{con}
	if f.isolated > 0 {
		cons = append(cons, builder.Isolated(f.isolated))
	}

	g, err := builder.BuildGraph([]core.GraphOption{core.WithLoops(), core.WithMultiEdges()}, bopts, cons...)
	if err != nil {
		return err
	}

	return edgelist.Write(cmd.OutOrStdout(), g)
}
