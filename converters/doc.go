// Package converters provides two-way adapters between hopgraph views and
// gonum graphs (gonum.org/v1/gonum/graph):
//
//   - FromGonum:         any gonum graph.Graph → immutable core.Snapshot
//   - ToGonum:           core.GraphView → *simple.DirectedGraph
//   - ToGonumUndirected: core.GraphView → *simple.UndirectedGraph
//
// gonum's simple graphs hold at most one edge per node pair and no
// self-loops. Exports therefore merge parallel edges and drop loops; neither
// changes hop distances, so averages computed on either side agree.
//
// Use converters to run hopgraph metrics on graphs produced by gonum
// generators, or to cross-check hopgraph against gonum's path package.
package converters
