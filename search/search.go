package search

import (
	"math"
)

// Bisect returns the lower end of the final bracket for the level set
// f(t) = level on [lo, hi], assuming f is non-decreasing.
//
// Algorithm:
//
//	while hi − lo > Tolerance (and iterations < MaxIter):
//	    mid = (lo + hi) / 2
//	    if f(mid) < level: lo = mid   else: hi = mid
//	return lo
//
// Contracts:
//   - Monotonicity is a precondition and is NOT verified: for a
//     non-monotone f the result is some bracket end, not an error.
//   - If the level is unattainable on [lo, hi] the result converges to an
//     end of the bracket; callers that care must check f there themselves.
//
// Errors: ErrBadBracket, ErrBadTolerance.
//
// Complexity: O(log₂((hi−lo)/Tolerance)) evaluations of f.
func Bisect(f Func1, level, lo, hi float64, opts BisectOptions) (float64, error) {
	if !isFinite(lo) || !isFinite(hi) || lo >= hi {
		return 0, ErrBadBracket
	}
	if !isFinite(opts.Tolerance) || opts.Tolerance <= 0 {
		return 0, ErrBadTolerance
	}
	maxIter := opts.MaxIter
	if maxIter <= 0 {
		maxIter = DefaultBisectMaxIter
	}

	for i := 0; hi-lo > opts.Tolerance && i < maxIter; i++ {
		mid := (lo + hi) / 2
		if f(mid) < level {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo, nil
}

// GridArgMin evaluates f at every grid point and returns the first index
// attaining the minimum. NaN values are treated as +Inf. When every value is
// +Inf (or NaN) the index is 0 and the value +Inf.
//
// Errors: ErrEmptyGrid.
//
// Complexity: O(len(grid)) evaluations.
func GridArgMin(f Func1, grid []float64) (int, float64, error) {
	if len(grid) == 0 {
		return 0, 0, ErrEmptyGrid
	}
	best, bestVal := 0, math.Inf(1)
	for i, t := range grid {
		v := f(t)
		if v < bestVal { // NaN never compares less
			best, bestVal = i, v
		}
	}

	return best, bestVal, nil
}

// Descend runs coordinate descent from x0 (with known value fx0):
//
//	while step ≥ MinStep:
//	    probe x−step and x+step (skipping probes outside (Lower, Upper))
//	    move to the better probe if it strictly improves f, else halve step
//
// Strict improvement (and NaN never improving) guarantees termination even
// without the MaxIter cap, which bounds the work on flat or noisy objectives.
//
// Errors: ErrBadTolerance when Step or MinStep is not finite and positive.
//
// Complexity: O(MaxIter) evaluations, two per iteration.
func Descend(f Func1, x0, fx0 float64, opts DescentOptions) (Result, error) {
	if !isFinite(opts.Step) || opts.Step <= 0 || !isFinite(opts.MinStep) || opts.MinStep <= 0 {
		return Result{}, ErrBadTolerance
	}
	maxIter := opts.MaxIter
	if maxIter <= 0 {
		maxIter = DefaultDescentMaxIter
	}
	if math.IsNaN(fx0) {
		fx0 = math.Inf(1)
	}

	var (
		x, fx = x0, fx0
		step  = opts.Step
		iter  int
	)
	for ; step >= opts.MinStep; iter++ {
		if iter >= maxIter {
			return Result{X: x, Value: fx, Iterations: iter, Converged: false}, nil
		}
		bestX, bestVal := x, fx
		for _, cand := range [2]float64{x - step, x + step} {
			if cand <= opts.Lower || cand >= opts.Upper {
				continue
			}
			if v := f(cand); v < bestVal {
				bestX, bestVal = cand, v
			}
		}
		if bestVal < fx {
			x, fx = bestX, bestVal
			continue
		}
		step /= 2
	}

	return Result{X: x, Value: fx, Iterations: iter, Converged: true}, nil
}

// Minimize locates a local minimum of f: GridArgMin over grid, then Descend
// from the best grid sample. It reports a Result even when nothing finite was
// found (Value = +Inf); deciding acceptance is up to the caller.
//
// Errors: ErrEmptyGrid, ErrBadTolerance.
//
// Complexity: O(len(grid) + MaxIter) evaluations.
func Minimize(f Func1, grid []float64, opts DescentOptions) (Result, error) {
	i, v, err := GridArgMin(f, grid)
	if err != nil {
		return Result{}, err
	}
	if math.IsInf(v, 1) {
		return Result{X: grid[i], Value: v, Converged: true}, nil
	}

	return Descend(f, grid[i], v, opts)
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
