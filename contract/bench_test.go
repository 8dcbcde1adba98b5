package contract_test

import (
	"testing"

	"github.com/katalvlaran/edgeworth/contract"
	"github.com/katalvlaran/edgeworth/economy"
	"github.com/katalvlaran/edgeworth/utility"
)

func BenchmarkCurve(b *testing.B) {
	ua := utility.MustParse("x**0.5 * y**0.5")
	ub := utility.MustParse("x**0.3 * y**0.7")
	box := economy.Box{TotalX: 15, TotalY: 15}
	for _, workers := range []int{1, 0} {
		opts := contract.DefaultOptions()
		opts.Workers = workers
		name := "serial"
		if workers == 0 {
			name = "pool"
		}
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = contract.Curve(ua, ub, box, opts)
			}
		})
	}
}
