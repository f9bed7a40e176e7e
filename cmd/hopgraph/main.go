// Command hopgraph computes average shortest-path lengths of edge-list
// graphs and generates reference graphs.
//
// Examples:
//
//	hopgraph gen grid 30 11 > grid.txt
//	hopgraph avg grid.txt
//	hopgraph avg --undirected --workers 4 a.txt b.txt
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
