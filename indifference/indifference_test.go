package indifference_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/edgeworth/economy"
	"github.com/katalvlaran/edgeworth/indifference"
	"github.com/katalvlaran/edgeworth/utility"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCurves_LevelProperty: every finite sample sits on its level.
func TestCurves_LevelProperty(t *testing.T) {
	u := utility.MustParse("x**0.5 * y**0.5")
	curves, err := indifference.Curves(u, 15, 15, indifference.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, curves, 5)

	for _, c := range curves {
		require.Len(t, c.X, 100)
		require.Len(t, c.Y, 100)
		assert.Greater(t, c.Y.Finite(), 0, "level %g has no attainable sample", c.Level)
		for i := range c.X {
			if i > 0 {
				assert.Greater(t, c.X[i], c.X[i-1])
			}
			if math.IsNaN(c.Y[i]) {
				continue
			}
			assert.InDelta(t, c.Level, u.Eval(c.X[i], c.Y[i]), 1e-5, "x=%g", c.X[i])
		}
	}
}

// TestCurves_LevelsIncrease spans u(max/4) .. u(3max/4).
func TestCurves_LevelsIncrease(t *testing.T) {
	u := utility.MustParse("x + y")
	curves, err := indifference.Curves(u, 8, 8, indifference.DefaultOptions())
	require.NoError(t, err)
	want := []float64{4, 6, 8, 10, 12}
	for i, c := range curves {
		assert.InDelta(t, want[i], c.Level, 1e-12)
	}
}

// TestCurves_UnattainableIsNaN: at x = 0.1 the level 3.75 of √(xy) needs
// y = 140.6, far outside the window.
func TestCurves_UnattainableIsNaN(t *testing.T) {
	u := utility.MustParse("sqrt(x*y)")
	curves, err := indifference.Curves(u, 15, 15, indifference.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, math.IsNaN(curves[0].Y[0]))
	assert.Less(t, curves[0].Y.Finite(), 100)
}

// TestTrace follows a straight line for a linear utility.
func TestTrace(t *testing.T) {
	u := economy.UtilityFunc(func(x, y float64) float64 { return x + 2*y })
	opts := indifference.DefaultOptions()
	opts.Samples = 10
	c, err := indifference.Trace(u, 10, 8, 6, opts)
	require.NoError(t, err)
	assert.Equal(t, 10.0, c.Level)
	for i := range c.X {
		assert.InDelta(t, (10-c.X[i])/2, c.Y[i], 1e-6)
	}
}

// TestLevels covers the single-level and empty cases.
func TestLevels(t *testing.T) {
	u := economy.UtilityFunc(func(x, y float64) float64 { return x * y })
	assert.Equal(t, []float64{4}, indifference.Levels(u, 8, 8, 1))
	assert.Nil(t, indifference.Levels(u, 8, 8, 0))
}

// TestCurves_Errors maps bad windows and options to sentinels.
func TestCurves_Errors(t *testing.T) {
	u := utility.MustParse("x*y")
	def := indifference.DefaultOptions()

	_, err := indifference.Curves(u, 0.05, 10, def)
	assert.ErrorIs(t, err, indifference.ErrBadDomain)
	_, err = indifference.Curves(u, 10, math.Inf(1), def)
	assert.ErrorIs(t, err, indifference.ErrBadDomain)

	bad := def
	bad.NumCurves = 0
	_, err = indifference.Curves(u, 10, 10, bad)
	assert.ErrorIs(t, err, indifference.ErrBadOptions)

	bad = def
	bad.Samples = 1
	_, err = indifference.Curves(u, 10, 10, bad)
	assert.ErrorIs(t, err, indifference.ErrBadOptions)

	bad = def
	bad.Tolerance = 0
	_, err = indifference.Trace(u, 1, 10, 10, bad)
	assert.ErrorIs(t, err, indifference.ErrBadOptions)
}

// TestCurves_UndefinedLevel: log(x − 5) has no value at (2.5, 2.5).
func TestCurves_UndefinedLevel(t *testing.T) {
	u := utility.MustParse("log(x - 5) + y", utility.WithProbe(6, 1))
	_, err := indifference.Curves(u, 10, 10, indifference.DefaultOptions())
	assert.ErrorIs(t, err, indifference.ErrUndefinedLevel)
}

// TestCurves_UndefinedSamplesAreGaps: where u itself is NaN the sample is NaN.
func TestCurves_UndefinedSamplesAreGaps(t *testing.T) {
	u := utility.MustParse("log(x - 2) + log(y)", utility.WithProbe(5, 5))
	curves, err := indifference.Curves(u, 15, 15, indifference.DefaultOptions())
	require.NoError(t, err)
	for _, c := range curves {
		assert.True(t, math.IsNaN(c.Y[0]), "x=%g is outside the domain", c.X[0])
	}
}

// TestCurves_Deterministic: two runs agree bit for bit.
func TestCurves_Deterministic(t *testing.T) {
	u := utility.MustParse("log(x) + 2*log(y)")
	a, err := indifference.Curves(u, 12, 9, indifference.DefaultOptions())
	require.NoError(t, err)
	b, err := indifference.Curves(u, 12, 9, indifference.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Level, b[i].Level)
		assert.Equal(t, a[i].X, b[i].X)
		for j := range a[i].Y {
			ya, yb := a[i].Y[j], b[i].Y[j]
			assert.True(t, ya == yb || (math.IsNaN(ya) && math.IsNaN(yb)), "curve %d sample %d", i, j)
		}
	}
}
