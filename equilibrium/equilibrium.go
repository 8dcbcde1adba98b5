package equilibrium

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

// Find sweeps price ratios and returns the deduplicated equilibria in price
// order. It is FindContext with a background context.
func Find(ua, ub economy.Utility, e economy.Endowment, opts Options) ([]Equilibrium, error) {
	return FindContext(context.Background(), ua, ub, e, opts)
}

// FindContext is Find with cancellation: once ctx is done no further price
// starts and ctx.Err() is returned.
func FindContext(ctx context.Context, ua, ub economy.Utility, e economy.Endowment, opts Options) ([]Equilibrium, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	box := e.Box()
	prices := search.Logspace(opts.LogMin, opts.LogMax, opts.Prices)
	// Interior grid: both box edges are excluded.
	grid := search.Linspace(0, box.TotalX, opts.GridSamples+2)[1 : opts.GridSamples+1]
	descent := search.DescentOptions{
		Step:    box.TotalX / float64(opts.GridSamples+1) / 2,
		MinStep: opts.MinStepFraction * box.TotalX,
		Lower:   0,
		Upper:   box.TotalX,
		MaxIter: opts.MaxIter,
	}

	slots := make([]*Equilibrium, len(prices))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers(opts.Workers))
	for i, p := range prices {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			eq, err := atPrice(ua, ub, e, box, p, grid, descent, opts)
			if err != nil {
				return err
			}
			slots[i] = eq
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	found := make([]Equilibrium, 0, len(slots))
	for _, eq := range slots {
		if eq != nil {
			found = append(found, *eq)
		}
	}

	return dedupe(found, opts.DedupeRadius), nil
}

// BudgetY returns agent A's y on the budget line through the endowment at
// price p.
func BudgetY(e economy.Endowment, p, x float64) float64 {
	return e.AY + p*(e.AX-x)
}

// ExcessError is |MRS_A(pt) − p| + |MRS_B(complement(pt)) − p|. It is zero
// exactly at an equilibrium allocation for price p.
func ExcessError(ua, ub economy.Utility, box economy.Box, pt economy.Point, p float64, opts mrs.Options) float64 {
	a, b := mrs.Pair(ua, ub, box, pt, opts)

	return math.Abs(a-p) + math.Abs(b-p)
}

func atPrice(ua, ub economy.Utility, e economy.Endowment, box economy.Box, p float64,
	grid []float64, descent search.DescentOptions, opts Options) (*Equilibrium, error) {
	objective := func(x float64) float64 {
		pt := economy.Point{X: x, Y: BudgetY(e, p, x)}
		if !box.Contains(pt, opts.Margin) {
			return math.Inf(1)
		}
		return ExcessError(ua, ub, box, pt, p, opts.MRS)
	}

	res, err := search.Minimize(objective, grid, descent)
	if err != nil {
		return nil, fmt.Errorf("equilibrium: price %g: %w", p, err)
	}
	if !(res.Value < opts.Tolerance) {
		return nil, nil
	}

	pt := economy.Point{X: res.X, Y: BudgetY(e, p, res.X)}
	a, b := mrs.Pair(ua, ub, box, pt, opts.MRS)

	return &Equilibrium{Point: pt, Price: p, MRSA: a, MRSB: b, Error: res.Value}, nil
}

// dedupe walks candidates in price order and drops any candidate within
// radius of an already kept point, so kept points are pairwise at least
// radius apart.
func dedupe(cands []Equilibrium, radius float64) []Equilibrium {
	kept := make([]Equilibrium, 0, len(cands))
next:
	for _, c := range cands {
		for _, k := range kept {
			if c.Distance(k.Point) < radius {
				continue next
			}
		}
		kept = append(kept, c)
	}

	return kept
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
	case o.Prices < 1 || o.GridSamples < 1:
		return fmt.Errorf("%w: Prices and GridSamples must be ≥ 1", ErrBadOptions)
	case math.IsNaN(o.LogMin) || math.IsNaN(o.LogMax) || math.IsInf(o.LogMin, 0) || math.IsInf(o.LogMax, 0):
		return fmt.Errorf("%w: price range must be finite", ErrBadOptions)
	case o.LogMin > o.LogMax || (o.LogMin == o.LogMax && o.Prices > 1):
		return fmt.Errorf("%w: need LogMin < LogMax, got %g, %g", ErrBadOptions, o.LogMin, o.LogMax)
	case !(o.Margin >= 0) || !(o.DedupeRadius >= 0):
		return fmt.Errorf("%w: Margin and DedupeRadius must be ≥ 0", ErrBadOptions)
	case !(o.Tolerance > 0) || !(o.MinStepFraction > 0) || math.IsInf(o.MinStepFraction, 1):
		return fmt.Errorf("%w: Tolerance and MinStepFraction must be > 0", ErrBadOptions)
	}

	return nil
}
