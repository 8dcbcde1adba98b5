package mrs

import (
	"math"

	"gonum.org/v1/gonum/diff/fd"

	"github.com/katalvlaran/edgeworth/economy"
)

// DefaultStep is the forward-difference step ε.
const DefaultStep = 1e-6

// Options configures the finite-difference scheme.
type Options struct {
	// Step is the forward-difference step ε. Zero or negative ⇒ DefaultStep.
	Step float64
}

// DefaultOptions returns Options{Step: DefaultStep}.
func DefaultOptions() Options {
	return Options{Step: DefaultStep}
}

func (o Options) step() float64 {
	if o.Step > 0 {
		return o.Step
	}

	return DefaultStep
}

// Partials returns the forward-difference marginal utilities (∂u/∂x, ∂u/∂y)
// at (x, y). Three evaluations of u, deterministic, no retries.
func Partials(u economy.Utility, x, y float64, opts Options) (dx, dy float64) {
	origin := u.Eval(x, y)
	settings := &fd.Settings{
		Formula:     fd.Forward,
		Step:        opts.step(),
		OriginKnown: true,
		OriginValue: origin,
	}
	var grad [2]float64
	fd.Gradient(grad[:], func(p []float64) float64 { return u.Eval(p[0], p[1]) }, []float64{x, y}, settings)

	return grad[0], grad[1]
}

// MRS returns (∂u/∂x)/(∂u/∂y) at (x, y), or +Inf when ∂u/∂y is exactly zero.
func MRS(u economy.Utility, x, y float64, opts Options) float64 {
	dx, dy := Partials(u, x, y, opts)
	if dy == 0 {
		return math.Inf(1)
	}

	return dx / dy
}

// AtPoint is MRS evaluated at an allocation.
func AtPoint(u economy.Utility, p economy.Point, opts Options) float64 {
	return MRS(u, p.X, p.Y, opts)
}

// Pair returns agent A's MRS at p and agent B's MRS at the complement of p.
func Pair(ua, ub economy.Utility, box economy.Box, p economy.Point, opts Options) (mrsA, mrsB float64) {
	return AtPoint(ua, p, opts), AtPoint(ub, box.Complement(p), opts)
}

// Gap is |MRS_A(p) − MRS_B(complement(p))|, the distance from Pareto
// efficiency used by the contract-curve search. It is NaN when both rates are
// +Inf; callers treat NaN as "no improvement".
func Gap(ua, ub economy.Utility, box economy.Box, p economy.Point, opts Options) float64 {
	a, b := Pair(ua, ub, box, p, opts)

	return math.Abs(a - b)
}
