// Package equilibrium searches for Walrasian equilibria of a two-agent,
// two-good exchange economy.
//
// A candidate price ratio p (good X priced in units of good Y) restricts
// agent A to the budget line through the endowment ω = (AX, AY):
//
//	y(x) = AY + p·(AX − x)
//
// Market clearing is implicit: agent B holds the complement in the box. Along
// the line the solver minimises the excess-demand error
//
//	E(x) = |MRS_A(x, y) − p| + |MRS_B(TotalX−x, TotalY−y) − p|
//
// (+Inf when (x, y) leaves the box shrunk by Margin) with a GridSamples-point
// grid over x followed by coordinate descent. A price contributes an
// equilibrium when the refined E is below Tolerance. Prices are spaced
// log-uniformly, exp(linspace(LogMin, LogMax, Prices)).
//
// Candidates are deduplicated in price order: one landing within
// DedupeRadius of an already reported point is dropped.
//
// ⚠️ The sweep is sampling-based: equilibria between sampled prices, or
// outside the grid's reach, are not reported. An empty result is a valid
// outcome, not an error.
//
// Complexity: O(Prices · (GridSamples + MaxIter)) error evaluations; prices
// run on a bounded errgroup pool and are merged in price order.
package equilibrium
