package search_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/edgeworth/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBisect_Square finds √2 as the level-2 crossing of t².
func TestBisect_Square(t *testing.T) {
	f := func(t float64) float64 { return t * t }
	got, err := search.Bisect(f, 2, 0, 2, search.DefaultBisectOptions())
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, got, 1e-6)
	assert.LessOrEqual(t, got, math.Sqrt2, "result is the lower bracket end")
}

// TestBisect_Unattainable converges onto a bracket end.
func TestBisect_Unattainable(t *testing.T) {
	f := func(t float64) float64 { return t }
	opts := search.DefaultBisectOptions()

	hi, err := search.Bisect(f, 100, 0, 1, opts)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, hi, 1e-6)

	lo, err := search.Bisect(f, -100, 0, 1, opts)
	require.NoError(t, err)
	assert.Equal(t, 0.0, lo)
}

// TestBisect_MaxIter stops after the configured number of halvings.
func TestBisect_MaxIter(t *testing.T) {
	calls := 0
	f := func(t float64) float64 { calls++; return t }
	_, err := search.Bisect(f, 0.3, 0, 1, search.BisectOptions{Tolerance: 1e-12, MaxIter: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

// TestBisect_Errors rejects bad brackets and tolerances.
func TestBisect_Errors(t *testing.T) {
	f := func(t float64) float64 { return t }
	opts := search.DefaultBisectOptions()

	_, err := search.Bisect(f, 0, 1, 1, opts)
	assert.ErrorIs(t, err, search.ErrBadBracket)
	_, err = search.Bisect(f, 0, 2, 1, opts)
	assert.ErrorIs(t, err, search.ErrBadBracket)
	_, err = search.Bisect(f, 0, math.NaN(), 1, opts)
	assert.ErrorIs(t, err, search.ErrBadBracket)
	_, err = search.Bisect(f, 0, 0, 1, search.BisectOptions{})
	assert.ErrorIs(t, err, search.ErrBadTolerance)
}

// TestGridArgMin returns the first minimiser and ignores NaN.
func TestGridArgMin(t *testing.T) {
	vals := map[float64]float64{0: 3, 1: math.NaN(), 2: 1, 3: 1, 4: 2}
	f := func(t float64) float64 { return vals[t] }

	i, v, err := search.GridArgMin(f, []float64{0, 1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 2, i)
	assert.Equal(t, 1.0, v)

	_, _, err = search.GridArgMin(f, nil)
	assert.ErrorIs(t, err, search.ErrEmptyGrid)

	i, v, err = search.GridArgMin(func(float64) float64 { return math.NaN() }, []float64{5, 6})
	require.NoError(t, err)
	assert.Equal(t, 0, i)
	assert.True(t, math.IsInf(v, 1))
}

// TestDescend_Parabola converges to the vertex within MinStep.
func TestDescend_Parabola(t *testing.T) {
	f := func(t float64) float64 { return (t - 1.3) * (t - 1.3) }
	opts := search.DescentOptions{Step: 0.5, MinStep: 1e-7, Lower: math.Inf(-1), Upper: math.Inf(1)}
	res, err := search.Descend(f, 0, f(0), opts)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.InDelta(t, 1.3, res.X, 1e-6)
	assert.InDelta(t, 0, res.Value, 1e-12)
	assert.Greater(t, res.Iterations, 0)
}

// TestDescend_Bounds never probes outside the open interval.
func TestDescend_Bounds(t *testing.T) {
	f := func(t float64) float64 {
		if t <= 0 || t >= 1 {
			panic("probe outside bounds")
		}
		return -t
	}
	opts := search.DescentOptions{Step: 0.3, MinStep: 1e-6, Lower: 0, Upper: 1}
	res, err := search.Descend(f, 0.5, f(0.5), opts)
	require.NoError(t, err)
	assert.Less(t, res.X, 1.0)
	assert.InDelta(t, 1.0, res.X, 1e-5)
}

// TestDescend_MaxIter reports non-convergence instead of looping on.
func TestDescend_MaxIter(t *testing.T) {
	f := func(t float64) float64 { return -t }
	opts := search.DescentOptions{Step: 1, MinStep: 1e-3, Lower: math.Inf(-1), Upper: math.Inf(1), MaxIter: 10}
	res, err := search.Descend(f, 0, 0, opts)
	require.NoError(t, err)
	assert.False(t, res.Converged)
	assert.Equal(t, 10, res.Iterations)
	assert.Equal(t, 10.0, res.X)
}

// TestDescend_Errors rejects non-positive steps.
func TestDescend_Errors(t *testing.T) {
	f := func(t float64) float64 { return t }
	_, err := search.Descend(f, 0, 0, search.DescentOptions{Step: 0, MinStep: 1})
	assert.ErrorIs(t, err, search.ErrBadTolerance)
	_, err = search.Descend(f, 0, 0, search.DescentOptions{Step: 1, MinStep: math.Inf(1)})
	assert.ErrorIs(t, err, search.ErrBadTolerance)
}

// TestMinimize picks the right basin from the grid and refines it.
func TestMinimize(t *testing.T) {
	// Two basins: a shallow one at 1 and the global one at 4.
	f := func(t float64) float64 { return math.Min((t-1)*(t-1)+1, (t-4)*(t-4)) }
	grid := search.Linspace(0, 5, 11)
	res, err := search.Minimize(f, grid, search.DescentOptions{Step: 0.25, MinStep: 1e-8, Lower: 0, Upper: 5})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, res.X, 1e-6)

	inf := func(float64) float64 { return math.Inf(1) }
	res, err = search.Minimize(inf, grid, search.DescentOptions{Step: 1, MinStep: 1})
	require.NoError(t, err)
	assert.True(t, math.IsInf(res.Value, 1))
	assert.Equal(t, 0, res.Iterations)
}

// TestLinspaceLogspace checks ends, counts and the degenerate sizes.
func TestLinspaceLogspace(t *testing.T) {
	xs := search.Linspace(0.1, 10, 100)
	require.Len(t, xs, 100)
	assert.Equal(t, 0.1, xs[0])
	assert.Equal(t, 10.0, xs[99])
	for i := 1; i < len(xs); i++ {
		assert.Greater(t, xs[i], xs[i-1])
	}

	assert.Nil(t, search.Linspace(0, 1, 0))
	assert.Equal(t, []float64{3}, search.Linspace(3, 9, 1))

	ps := search.Logspace(-4, 4, 100)
	require.Len(t, ps, 100)
	assert.InDelta(t, math.Exp(-4), ps[0], 1e-15)
	assert.InDelta(t, math.Exp(4), ps[99], 1e-12)
}
