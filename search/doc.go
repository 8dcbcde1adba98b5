// Package search holds the bounded one-dimensional numerical primitives the
// Edgeworth solvers are built from.
//
// Primitives:
//   - Bisect     : bracketed bisection for a level of a non-decreasing function.
//   - GridArgMin : first minimiser over a fixed grid (NaN counts as +Inf).
//   - Descend    : coordinate descent with a halving step inside open bounds.
//   - Minimize   : GridArgMin followed by Descend from the best grid point.
//
// Design principles:
//   - Deterministic: no randomness, first-wins tie breaking.
//   - Bounded: every loop has an explicit iteration cap, so a pathological
//     objective can slow a search down but never hang it.
//   - No global convergence claim: Minimize finds a local minimum near the
//     best grid sample. Callers decide whether the value is good enough.
package search
