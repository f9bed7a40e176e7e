// Package builder provides deterministic sample-graph constructors for tests,
// benchmarks, examples and the hopgraph CLI.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – Constructor:     a closure that appends one topology to a core.Graph.
//     – BuildGraph:      creates a graph and applies constructors in order.
//     – Apply:           applies constructors to an existing graph.
//   - Configuration primitives:
//     – BuilderOption:   a function that mutates builderConfig before use.
//     – WithSeed, WithRand: RNG for RandomSparse.
//     – WithBidirectional: mirror every emitted arc.
//   - Topologies (directed arcs):
//     – Cycle, Path, Grid (right/down), Star (outward), Complete,
//     RandomSparse, Isolated, EdgeList.
//
// Guarantees:
//
//   - Composability: each constructor appends a fresh block of nodes and only
//     wires arcs inside it, so Cycle(32) + Isolated(32) is a 64-node graph.
//   - Fast-fail on invalid option parameters via panics in option-constructors.
//   - Structured runtime errors for invalid build parameters, wrapping the
//     method name for easy filtering with errors.Is.
//   - Same inputs, options, seed and constructor order ⇒ identical graphs.
package builder
