// Package mrs computes marginal rates of substitution by numerical
// differentiation.
//
// The marginal rate of substitution of good X for good Y at bundle (x, y) is
// the ratio of marginal utilities
//
//	MRS(x, y) = (∂u/∂x) / (∂u/∂y)
//
// i.e. the magnitude of the indifference curve's slope. Both partials are
// forward differences with a fixed step ε (DefaultStep = 1e-6):
//
//	∂u/∂x ≈ (u(x+ε, y) − u(x, y)) / ε
//	∂u/∂y ≈ (u(x, y+ε) − u(x, y)) / ε
//
// The scheme has O(ε) truncation bias and ε is not scaled to the magnitude
// of u or of (x, y); utilities with very steep gradients may need a custom
// Options.Step. When ∂u/∂y is exactly zero MRS returns +Inf instead of
// failing.
//
// Finite differences are delegated to gonum's diff/fd with the Forward
// stencil; the origin value u(x, y) is evaluated once and shared by both
// partials.
package mrs
