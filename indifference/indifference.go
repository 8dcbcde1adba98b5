package indifference

import (
	"fmt"
	"math"

	"github.com/katalvlaran/edgeworth/economy"
	"github.com/katalvlaran/edgeworth/search"
)

// Curves returns opts.NumCurves indifference curves of u over the window
// [MinX, maxX] × [MinY, maxY], ordered by increasing level.
func Curves(u economy.Utility, maxX, maxY float64, opts Options) ([]Curve, error) {
	if err := validate(maxX, maxY, opts); err != nil {
		return nil, err
	}

	levels := Levels(u, maxX, maxY, opts.NumCurves)
	for _, l := range levels {
		if math.IsNaN(l) || math.IsInf(l, 0) {
			return nil, fmt.Errorf("%w: levels span [%g, %g]", ErrUndefinedLevel, levels[0], levels[len(levels)-1])
		}
	}
	xs := search.Linspace(opts.MinX, maxX, opts.Samples)
	out := make([]Curve, len(levels))
	for i, level := range levels {
		c, err := trace(u, level, xs, maxY, opts)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}

	return out, nil
}

// Trace returns the single curve u(x, y) = level sampled on opts.Samples x
// values in [MinX, maxX].
func Trace(u economy.Utility, level, maxX, maxY float64, opts Options) (Curve, error) {
	if err := validate(maxX, maxY, opts); err != nil {
		return Curve{}, err
	}

	return trace(u, level, search.Linspace(opts.MinX, maxX, opts.Samples), maxY, opts)
}

// Levels returns n utility levels evenly spaced between u(maxX/4, maxY/4) and
// u(3maxX/4, 3maxY/4). n == 1 yields only the lower level; n ≤ 0 yields nil.
func Levels(u economy.Utility, maxX, maxY float64, n int) []float64 {
	lo := u.Eval(maxX/4, maxY/4)
	hi := u.Eval(3*maxX/4, 3*maxY/4)

	return search.Linspace(lo, hi, n)
}

func trace(u economy.Utility, level float64, xs []float64, maxY float64, opts Options) (Curve, error) {
	bo := search.BisectOptions{Tolerance: opts.Tolerance, MaxIter: opts.MaxIter}
	ys := make(economy.Series, len(xs))
	for j, x := range xs {
		// Unreachable (or undefined) inside the window: report a gap, not a
		// clamped end.
		if !(u.Eval(x, opts.MinY) <= level && u.Eval(x, maxY) >= level) {
			ys[j] = math.NaN()
			continue
		}
		y, err := search.Bisect(func(y float64) float64 { return u.Eval(x, y) }, level, opts.MinY, maxY, bo)
		if err != nil {
			return Curve{}, fmt.Errorf("indifference: level %g at x=%g: %w", level, x, err)
		}
		ys[j] = y
	}

	return Curve{Level: level, X: economy.Series(xs), Y: ys}, nil
}

// Validate reports ErrBadOptions for non-positive counts or tolerance and
// ErrBadDomain for a non-finite window origin.
func (o Options) Validate() error {
	if o.NumCurves < 1 || o.Samples < 2 {
		return fmt.Errorf("%w: need NumCurves ≥ 1 and Samples ≥ 2, got %d and %d",
			ErrBadOptions, o.NumCurves, o.Samples)
	}
	if !(o.Tolerance > 0) || math.IsInf(o.Tolerance, 0) {
		return fmt.Errorf("%w: tolerance %g", ErrBadOptions, o.Tolerance)
	}
	if math.IsNaN(o.MinX) || math.IsInf(o.MinX, 0) || math.IsNaN(o.MinY) || math.IsInf(o.MinY, 0) {
		return ErrBadDomain
	}

	return nil
}

func validate(maxX, maxY float64, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	for _, v := range [...]float64{maxX, maxY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrBadDomain
		}
	}
	if maxX <= opts.MinX || maxY <= opts.MinY {
		return fmt.Errorf("%w: [%g, %g] × [%g, %g]", ErrBadDomain, opts.MinX, maxX, opts.MinY, maxY)
	}

	return nil
}
