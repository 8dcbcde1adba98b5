package edgeworth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/edgeworth/contract"
	"github.com/katalvlaran/edgeworth/economy"
	"github.com/katalvlaran/edgeworth/equilibrium"
	"github.com/katalvlaran/edgeworth/indifference"
	"github.com/katalvlaran/edgeworth/utility"
)

// Solve validates p, parses both utilities and runs the solvers concurrently.
//
// Stages:
//  1. Endowment check: economy.ErrDegenerateEndowment.
//  2. Parse both expressions, probing at the box centre:
//     utility.ErrInvalidExpression wrapped with the agent's field name.
//  3. Fan out indifference ×2, contract, equilibrium and surfaces.
//
// Stages 1 and 2 fail before any solver runs. Non-convergence inside the
// solvers is never an error: it shows up as shorter curves or fewer
// equilibria. An agent whose utility is undefined at the indifference level
// anchors gets no curves; the other artefacts are still reported. Cancelling ctx stops the sweeps and returns ctx.Err().
func Solve(ctx context.Context, p Problem, opts Options) (*Result, error) {
	ua, ub, box, err := Prepare(p)
	if err != nil {
		return nil, err
	}

	res := &Result{Box: box, Endowment: p.Endowment.A()}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		res.IndifferenceA, err = curves(ua, box, opts.Indifference)
		return wrap("indifference_a", err)
	})
	g.Go(func() error {
		var err error
		res.IndifferenceB, err = curves(ub, box, opts.Indifference)
		return wrap("indifference_b", err)
	})
	g.Go(func() error {
		var err error
		res.Contract, err = contract.CurveContext(gctx, ua, ub, box, opts.Contract)
		return wrap("contract", err)
	})
	g.Go(func() error {
		var err error
		res.Equilibria, err = equilibrium.FindContext(gctx, ua, ub, p.Endowment, opts.Equilibrium)
		return wrap("equilibrium", err)
	})
	if n := opts.SurfaceResolution; n > 0 {
		g.Go(func() error {
			res.SurfaceA, res.SurfaceB = Surfaces(ua, ub, box, n)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// A cancellation that raced the last solver still counts.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return res, nil
}

// Prepare runs the validation stages of Solve and returns both compiled
// utilities together with the Edgeworth box.
func Prepare(p Problem) (ua, ub *utility.Function, box economy.Box, err error) {
	if err = p.Endowment.Validate(); err != nil {
		return nil, nil, economy.Box{}, fmt.Errorf("edgeworth: %w", err)
	}
	box = p.Endowment.Box()
	c := box.Center()

	if ua, err = utility.Parse(p.UtilityA, utility.WithProbe(c.X, c.Y)); err != nil {
		return nil, nil, economy.Box{}, fmt.Errorf("edgeworth: utility_a: %w", err)
	}
	if ub, err = utility.Parse(p.UtilityB, utility.WithProbe(c.X, c.Y)); err != nil {
		return nil, nil, economy.Box{}, fmt.Errorf("edgeworth: utility_b: %w", err)
	}

	return ua, ub, box, nil
}

// curves is indifference.Curves with ErrUndefinedLevel absorbed into an
// empty set.
func curves(u economy.Utility, box economy.Box, opts indifference.Options) ([]indifference.Curve, error) {
	cs, err := indifference.Curves(u, box.TotalX, box.TotalY, opts)
	if errors.Is(err, indifference.ErrUndefinedLevel) {
		return []indifference.Curve{}, nil
	}

	return cs, err
}

func wrap(stage string, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("edgeworth: %s: %w", stage, err)
}
