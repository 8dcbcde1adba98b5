package indifference_test

import (
	"testing"

	"github.com/katalvlaran/edgeworth/indifference"
	"github.com/katalvlaran/edgeworth/utility"
)

func BenchmarkCurves(b *testing.B) {
	u := utility.MustParse("x**0.3 * y**0.7")
	opts := indifference.DefaultOptions()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = indifference.Curves(u, 15, 15, opts)
	}
}
