package main

import (
	"io"

	"github.com/spf13/cobra"
)

// newRootCmd wires the command tree. Output goes to stdout and stderr so
// tests can capture it.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "hopgraph",
		Short: "Average shortest-path length of unweighted graphs",
		Long: `hopgraph reads graphs as edge lists ("u v" per line) and reports the
average number of hops between ordered pairs of distinct nodes.

Subcommands:
  avg  - average shortest-path length of one or more edge-list files
  gen  - write a generated graph as an edge list`,
		SilenceUsage: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.AddCommand(newAvgCmd(), newGenCmd())

	return root
}
