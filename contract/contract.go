package contract

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/edgeworth/economy"
	"github.com/katalvlaran/edgeworth/mrs"
	"github.com/katalvlaran/edgeworth/search"
)

// Curve approximates the contract curve of ua and ub inside box.
// It is CurveContext with a background context.
func Curve(ua, ub economy.Utility, box economy.Box, opts Options) (Result, error) {
	return CurveContext(context.Background(), ua, ub, box, opts)
}

// CurveContext is Curve with cancellation: once ctx is done no further slice
// starts and ctx.Err() is returned.
func CurveContext(ctx context.Context, ua, ub economy.Utility, box economy.Box, opts Options) (Result, error) {
	if err := box.Validate(); err != nil {
		return Result{}, err
	}
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}

	xs := search.Linspace(opts.ScanLow*box.TotalX, opts.ScanHigh*box.TotalX, opts.Points)
	ys := search.Linspace(opts.ScanLow*box.TotalY, opts.ScanHigh*box.TotalY, opts.ScanSamples)
	descent := search.DescentOptions{
		Step:    opts.StepFraction * box.TotalY,
		MinStep: opts.MinStepFraction * box.TotalY,
		Lower:   opts.RefineLow * box.TotalY,
		Upper:   opts.RefineHigh * box.TotalY,
		MaxIter: opts.MaxIter,
	}

	// One slot per slice, written by exactly one goroutine.
	slots := make([]*Candidate, len(xs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers(opts.Workers))
	for i, x := range xs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c, err := refineSlice(ua, ub, box, x, ys, descent, opts)
			if err != nil {
				return err
			}
			slots[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	accepted := make([]Candidate, 0, len(slots))
	for _, c := range slots {
		if c != nil {
			accepted = append(accepted, *c)
		}
	}
	res := Result{Accepted: accepted}
	if opts.Smooth && opts.Window > 1 && len(accepted) >= opts.Window {
		res.X, res.Y = smooth(accepted, opts.Window)
	} else {
		res.X, res.Y = raw(accepted)
	}

	return res, nil
}

// refineSlice returns the accepted point of one x slice or nil.
func refineSlice(ua, ub economy.Utility, box economy.Box, x float64, ys []float64,
	descent search.DescentOptions, opts Options) (*Candidate, error) {
	gap := func(y float64) float64 {
		return mrs.Gap(ua, ub, box, economy.Point{X: x, Y: y}, opts.MRS)
	}

	i, best, err := search.GridArgMin(gap, ys)
	if err != nil {
		return nil, err
	}
	if !(best < opts.PreTolerance) {
		return nil, nil
	}
	res, err := search.Descend(gap, ys[i], best, descent)
	if err != nil {
		return nil, fmt.Errorf("contract: slice x=%g: %w", x, err)
	}
	if !(res.Value < opts.Tolerance) {
		return nil, nil
	}

	return &Candidate{Point: economy.Point{X: x, Y: res.X}, Gap: res.Value}, nil
}

func raw(pts []Candidate) (economy.Series, economy.Series) {
	xs, ys := make(economy.Series, len(pts)), make(economy.Series, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
	}

	return xs, ys
}

// smooth applies a centred moving average of width w over Y; X is read at
// the window centres. Requires len(pts) ≥ w ≥ 1.
func smooth(pts []Candidate, w int) (economy.Series, economy.Series) {
	n := len(pts) - w + 1
	half := (w - 1) / 2
	xs, ys := make(economy.Series, n), make(economy.Series, n)

	var sum float64
	for i := 0; i < w; i++ {
		sum += pts[i].Y
	}
	for k := 0; k < n; k++ {
		if k > 0 {
			sum += pts[k+w-1].Y - pts[k-1].Y
		}
		xs[k] = pts[k+half].X
		ys[k] = sum / float64(w)
	}

	return xs, ys
}

func workers(n int) int {
	if n > 0 {
		return n
	}

	return runtime.GOMAXPROCS(0)
}

// Validate reports ErrBadOptions for out-of-range fields.
func (o Options) Validate() error {
	switch {
	case o.Points < 1 || o.ScanSamples < 1:
		return fmt.Errorf("%w: Points and ScanSamples must be ≥ 1", ErrBadOptions)
	case !(0 <= o.ScanLow && o.ScanLow < o.ScanHigh && o.ScanHigh <= 1):
		return fmt.Errorf("%w: need 0 ≤ ScanLow < ScanHigh ≤ 1, got %g, %g", ErrBadOptions, o.ScanLow, o.ScanHigh)
	case !(0 <= o.RefineLow && o.RefineLow < o.RefineHigh && o.RefineHigh <= 1):
		return fmt.Errorf("%w: need 0 ≤ RefineLow < RefineHigh ≤ 1, got %g, %g", ErrBadOptions, o.RefineLow, o.RefineHigh)
	case !positive(o.PreTolerance) || !positive(o.Tolerance):
		return fmt.Errorf("%w: tolerances must be finite and > 0", ErrBadOptions)
	case !positive(o.StepFraction) || !positive(o.MinStepFraction):
		return fmt.Errorf("%w: step fractions must be finite and > 0", ErrBadOptions)
	case o.Smooth && o.Window < 1:
		return fmt.Errorf("%w: Window must be ≥ 1 when smoothing", ErrBadOptions)
	}

	return nil
}

func positive(v float64) bool { return v > 0 && !math.IsInf(v, 1) }
