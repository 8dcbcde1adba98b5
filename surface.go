package edgeworth

import (
	"github.com/katalvlaran/edgeworth/economy"
	"github.com/katalvlaran/edgeworth/search"
)

// surfaceInset keeps the grid off the box edges, where log and negative
// powers diverge.
const surfaceInset = 0.01

// gridder is a utility with a batch tensor-grid path, such as
// *utility.Function.
type gridder interface {
	Grid(xs, ys []float64) [][]float64
}

// Surfaces samples both utilities on an n×n grid over the box. Agent B is
// evaluated at the complement bundle (TotalX − x, TotalY − y).
//
// Complexity: O(n²) evaluations per agent.
func Surfaces(ua, ub economy.Utility, box economy.Box, n int) (a, b *Surface) {
	xs := search.Linspace(surfaceInset*box.TotalX, (1-surfaceInset)*box.TotalX, n)
	ys := search.Linspace(surfaceInset*box.TotalY, (1-surfaceInset)*box.TotalY, n)

	cx, cy := make([]float64, len(xs)), make([]float64, len(ys))
	for j, x := range xs {
		cx[j] = box.TotalX - x
	}
	for i, y := range ys {
		cy[i] = box.TotalY - y
	}

	a = &Surface{X: xs, Y: ys, Z: sample(ua, xs, ys)}
	b = &Surface{X: xs, Y: ys, Z: sample(ub, cx, cy)}

	return a, b
}

// sample returns z[i][j] = u(xs[j], ys[i]), through u's Grid when it has one.
func sample(u economy.Utility, xs, ys []float64) []economy.Series {
	var z [][]float64
	if g, ok := u.(gridder); ok {
		z = g.Grid(xs, ys)
	} else {
		z = make([][]float64, len(ys))
		for i, y := range ys {
			z[i] = make([]float64, len(xs))
			for j, x := range xs {
				z[i][j] = u.Eval(x, y)
			}
		}
	}

	out := make([]economy.Series, len(z))
	for i, row := range z {
		out[i] = row
	}

	return out
}
