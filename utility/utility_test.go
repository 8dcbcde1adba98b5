package utility_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/edgeworth/economy"
	"github.com/katalvlaran/edgeworth/utility"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Compile-time check: a parsed Function is a Utility.
var _ economy.Utility = (*utility.Function)(nil)

// TestParse_Evaluates checks values of typical utility specifications.
func TestParse_Evaluates(t *testing.T) {
	cases := []struct {
		expr string
		x, y float64
		want float64
	}{
		{"x**0.5 * y**0.5", 4, 9, 6},
		{"x^0.5 * y^0.5", 4, 9, 6},
		{"x**0.3 * y**0.7", 1, 1, 1},
		{"log(x) + log(y)", math.E, math.E, 2},
		{"ln(x) + 2*ln(y)", 1, math.E, 2},
		{"log(x, 2)", 8, 1, 3},
		{"log10(x) + log2(y)", 100, 8, 5},
		{"sqrt(x*y)", 2, 8, 4},
		{"exp(x) * exp(-y)", 3, 3, 1},
		{"min(x, 2*y)", 5, 2, 4},
		{"Min(x, y, 1)", 5, 2, 1},
		{"max(x, y)", 5, 2, 5},
		{"Max(x, y) - abs(-y)", 5, 2, 3},
		{"pow(x, 2) + Abs(y)", 3, -1, 10},
		{"x + y", 1.5, 2.5, 4},
		{"2*x + 3*y - 1", 1, 1, 4},
		{"x / y / 2", 8, 2, 2},
		{"-x**2", 3, 0, -9},
		{"(-x)**2", 3, 0, 9},
		{"2**3**2", 0, 0, 512},
		{"x**-1", 4, 0, 0.25},
		{"+x - -y", 1, 2, 3},
		{"pi * e / E", 1, 1, math.Pi},
		{"1e2 * x + .5 * y", 1, 2, 101},
		{"  x*y  ", 2, 3, 6},
		{"sin(x)**2 + cos(x)**2 + tan(0*y)", 0.7, 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			f, err := utility.Parse(tc.expr)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, f.Eval(tc.x, tc.y), 1e-12)
		})
	}
}

// TestParse_Precedence inspects the parsed tree.
func TestParse_Precedence(t *testing.T) {
	cases := map[string]string{
		"x**0.5*y**0.5": "((x**0.5)*(y**0.5))",
		"-x**2":         "(-(x**2))",
		"2**3**2":       "(2**(3**2))",
		"x + y * 2":     "(x + (y*2))",
		"(x + y) * 2":   "((x + y)*2)",
		"x - y - 1":     "((x - y) - 1)",
		"min(x, y)":     "min(x, y)",
	}
	for expr, want := range cases {
		f, err := utility.Parse(expr)
		require.NoError(t, err, expr)
		assert.Equal(t, want, f.Tree(), expr)
	}
}

// TestParse_Invalid verifies malformed input yields ErrInvalidExpression.
func TestParse_Invalid(t *testing.T) {
	cases := []string{
		"x +* y",
		"",
		"   ",
		"x y",
		"x + ",
		"(x + y",
		"x + y)",
		"foo(x)",
		"z + 1",
		"log()",
		"sqrt(x, y)",
		"min(x)",
		"pow(x)",
		"sqrt",
		"x $ y",
		"2e",
		"x,y",
		"1/(x-1)",
		"log(x - 1)",
		"sqrt(x - 2)",
	}
	for _, expr := range cases {
		t.Run(expr, func(t *testing.T) {
			f, err := utility.Parse(expr)
			assert.Nil(t, f)
			require.Error(t, err)
			assert.ErrorIs(t, err, utility.ErrInvalidExpression)

			var se *utility.SyntaxError
			require.True(t, errors.As(err, &se))
			assert.NotEmpty(t, se.Msg)
			assert.Contains(t, err.Error(), "invalid expression")
		})
	}
}

// TestParse_ErrorOffset points at the offending token.
func TestParse_ErrorOffset(t *testing.T) {
	_, err := utility.Parse("x +* y")
	var se *utility.SyntaxError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 3, se.Offset)

	_, err = utility.Parse("x + unknown")
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 4, se.Offset)
	assert.Contains(t, se.Msg, "unknown")
}

// TestParse_Probe moves the probe point into the function's domain.
func TestParse_Probe(t *testing.T) {
	_, err := utility.Parse("log(x - 1)")
	assert.ErrorIs(t, err, utility.ErrInvalidExpression)

	f, err := utility.Parse("log(x - 1)", utility.WithProbe(7.5, 7.5))
	require.NoError(t, err)
	assert.InDelta(t, math.Log(6.5), f.Eval(7.5, 7.5), 1e-12)
}

// TestParse_WithVariables renames the goods.
func TestParse_WithVariables(t *testing.T) {
	f, err := utility.Parse("apples**0.5 * pears**0.5", utility.WithVariables("apples", "pears"))
	require.NoError(t, err)
	assert.InDelta(t, 6.0, f.Eval(4, 9), 1e-12)
	vx, vy := f.Variables()
	assert.Equal(t, "apples", vx)
	assert.Equal(t, "pears", vy)

	_, err = utility.Parse("x*y", utility.WithVariables("apples", "pears"))
	assert.ErrorIs(t, err, utility.ErrInvalidExpression, "x is no longer declared")

	for _, bad := range [][2]string{{"a", "a"}, {"", "y"}, {"1x", "y"}, {"pi", "y"}, {"x", "log"}} {
		_, err = utility.Parse("1", utility.WithVariables(bad[0], bad[1]))
		assert.ErrorIs(t, err, utility.ErrInvalidExpression, "%v", bad)
	}
}

// TestFunction_EvalSlice is the batch path used by surface plots.
func TestFunction_EvalSlice(t *testing.T) {
	f := utility.MustParse("x*y")
	got := f.EvalSlice(nil, []float64{1, 2, 3}, []float64{4, 5, 6})
	assert.Equal(t, []float64{4, 10, 18}, got)

	dst := make([]float64, 2)
	out := f.EvalSlice(dst, []float64{2, 3}, []float64{2, 3})
	assert.Equal(t, []float64{4, 9}, dst)
	assert.Equal(t, dst, out)

	assert.Panics(t, func() { f.EvalSlice(nil, []float64{1}, []float64{1, 2}) })
	assert.Panics(t, func() { f.EvalSlice(make([]float64, 3), []float64{1}, []float64{1}) })
}

// TestFunction_Grid checks the row-major-by-y layout.
func TestFunction_Grid(t *testing.T) {
	f := utility.MustParse("x + 10*y")
	z := f.Grid([]float64{1, 2, 3}, []float64{0, 1})
	require.Len(t, z, 2)
	assert.Equal(t, []float64{1, 2, 3}, z[0])
	assert.Equal(t, []float64{11, 12, 13}, z[1])
}

// TestFunction_String keeps the trimmed source.
func TestFunction_String(t *testing.T) {
	f := utility.MustParse("  x * y ")
	assert.Equal(t, "x * y", f.String())
}

// TestMustParse_Panics on invalid input.
func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { utility.MustParse("x +* y") })
}
