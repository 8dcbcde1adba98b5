package equilibrium

import (
	"errors"

	"github.com/katalvlaran/edgeworth/economy"
	"github.com/katalvlaran/edgeworth/mrs"
	"github.com/katalvlaran/edgeworth/search"
)

// ErrBadOptions indicates counts, ranges or tolerances out of range.
var ErrBadOptions = errors.New("equilibrium: invalid options")

// Options configures Find.
type Options struct {
	Prices          int         `json:"prices" yaml:"prices"`                       // number of sampled price ratios
	LogMin          float64     `json:"log_min" yaml:"log_min"`                     // ln of the lowest price
	LogMax          float64     `json:"log_max" yaml:"log_max"`                     // ln of the highest price
	GridSamples     int         `json:"grid_samples" yaml:"grid_samples"`           // interior x samples per price
	Margin          float64     `json:"margin" yaml:"margin"`                       // distance kept from the box edges
	Tolerance       float64     `json:"tolerance" yaml:"tolerance"`                 // acceptance threshold on E
	DedupeRadius    float64     `json:"dedupe_radius" yaml:"dedupe_radius"`         // Euclidean collapse radius
	MinStepFraction float64     `json:"min_step_fraction" yaml:"min_step_fraction"` // descent stop, relative to TotalX
	MaxIter         int         `json:"max_iter" yaml:"max_iter"`                   // descent cap per price
	MRS             mrs.Options `json:"-" yaml:"-"`
	Workers         int         `json:"-" yaml:"-"` // ≤ 0 ⇒ GOMAXPROCS
}

// DefaultOptions returns 100 prices over [e⁻⁴, e⁴], a 30-point grid,
// acceptance at 0.1 and a dedupe radius of 0.5.
func DefaultOptions() Options {
	return Options{
		Prices:          100,
		LogMin:          -4,
		LogMax:          4,
		GridSamples:     30,
		Margin:          0.1,
		Tolerance:       0.1,
		DedupeRadius:    0.5,
		MinStepFraction: 1e-5,
		MaxIter:         search.DefaultDescentMaxIter,
		MRS:             mrs.DefaultOptions(),
	}
}

// Equilibrium is an allocation for agent A at which both agents' MRS match
// the price ratio within tolerance.
type Equilibrium struct {
	economy.Point
	Price float64 `json:"price"`
	MRSA  float64 `json:"mrs_a"`
	MRSB  float64 `json:"mrs_b"`
	Error float64 `json:"error"`
}
