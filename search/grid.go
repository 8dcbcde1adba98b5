package search

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Linspace returns n evenly spaced values over [lo, hi], both ends included.
// n == 1 yields [lo]; n ≤ 0 yields nil.
func Linspace(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{lo}
	}

	out := floats.Span(make([]float64, n), lo, hi)
	out[n-1] = hi // Span accumulates rounding into the last sample

	return out
}

// Logspace returns exp(Linspace(lo, hi, n)): n values log-uniformly spaced
// between e^lo and e^hi.
func Logspace(lo, hi float64, n int) []float64 {
	out := Linspace(lo, hi, n)
	for i := range out {
		out[i] = math.Exp(out[i])
	}

	return out
}
