package indifference

import (
	"errors"

	"github.com/katalvlaran/edgeworth/economy"
	"github.com/katalvlaran/edgeworth/search"
)

var (
	// ErrBadDomain indicates maxX ≤ MinX, maxY ≤ MinY or a non-finite bound.
	ErrBadDomain = errors.New("indifference: empty or non-finite domain")

	// ErrBadOptions indicates a non-positive count or tolerance.
	ErrBadOptions = errors.New("indifference: invalid options")

	// ErrUndefinedLevel indicates u is NaN or ±Inf at a level anchor
	// (maxX/4, maxY/4) or (3maxX/4, 3maxY/4).
	ErrUndefinedLevel = errors.New("indifference: utility undefined at level anchor")
)

// Defaults.
const (
	DefaultNumCurves = 5
	DefaultSamples   = 100
	DefaultMinX      = 0.1
	DefaultMinY      = 0.1
)

// Options configures Curves.
//
// Fields:
//   - NumCurves: number of levels (≥ 1).
//   - Samples  : x samples per curve (≥ 2), evenly spaced on [MinX, maxX].
//   - MinX, MinY: lower bounds of the sampling window; keep them > 0 for
//     utilities with log or fractional powers.
//   - Tolerance: bracket width at which bisection stops.
//   - MaxIter  : bisection cap per sample (≤ 0 ⇒ search default).
type Options struct {
	NumCurves int     `json:"num_curves" yaml:"num_curves"`
	Samples   int     `json:"samples" yaml:"samples"`
	MinX      float64 `json:"min_x" yaml:"min_x"`
	MinY      float64 `json:"min_y" yaml:"min_y"`
	Tolerance float64 `json:"tolerance" yaml:"tolerance"`
	MaxIter   int     `json:"max_iter" yaml:"max_iter"`
}

// DefaultOptions returns five curves of 100 samples each, window starting at
// (0.1, 0.1), bisection to 1e-6.
func DefaultOptions() Options {
	return Options{
		NumCurves: DefaultNumCurves,
		Samples:   DefaultSamples,
		MinX:      DefaultMinX,
		MinY:      DefaultMinY,
		Tolerance: search.DefaultBisectTolerance,
		MaxIter:   search.DefaultBisectMaxIter,
	}
}

// Curve is one indifference curve. X and Y have equal length; NaN in Y marks
// a sample where the level is unattainable.
type Curve struct {
	Level float64        `json:"level"`
	X     economy.Series `json:"x"`
	Y     economy.Series `json:"y"`
}
