package indifference_test

import (
	"fmt"

	"github.com/katalvlaran/edgeworth/indifference"
	"github.com/katalvlaran/edgeworth/utility"
)

// ExampleCurves traces the middle curve of a Cobb-Douglas utility.
func ExampleCurves() {
	u := utility.MustParse("x**0.5 * y**0.5")
	curves, err := indifference.Curves(u, 15, 15, indifference.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	mid := curves[2]
	fmt.Printf("curves=%d level=%.2f samples=%d\n", len(curves), mid.Level, len(mid.X))
	// Output:
	// curves=5 level=7.50 samples=100
}
