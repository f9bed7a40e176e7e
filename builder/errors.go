// SPDX-License-Identifier: MIT
// Package: hopgraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`.
//   • Constructors never panic; validation panics are confined to option
//     constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is smaller
// than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires an RNG
// (WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrEndpointOutOfRange indicates an EdgeList pair naming a node outside 0..n-1.
var ErrEndpointOutOfRange = errors.New("builder: edge endpoint out of range")

// ErrConstructFailed indicates a programmer error at the orchestration level
// (nil constructor, nil graph).
var ErrConstructFailed = errors.New("builder: construction failed")
