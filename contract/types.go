package contract

import (
	"errors"

	"github.com/katalvlaran/edgeworth/economy"
	"github.com/katalvlaran/edgeworth/mrs"
	"github.com/katalvlaran/edgeworth/search"
)

// ErrBadOptions indicates counts, fractions or tolerances out of range.
var ErrBadOptions = errors.New("contract: invalid options")

// Options configures Curve. Fractions are relative to the box sides.
//
// Fields:
//   - Points, ScanSamples: x slices and coarse y samples per slice.
//   - ScanLow, ScanHigh  : sweep window for both x and the coarse y scan.
//   - RefineLow, RefineHigh: open bounds for the descent.
//   - PreTolerance: best scan gap a slice needs to be refined at all.
//   - Tolerance   : acceptance threshold for the refined gap.
//   - StepFraction, MinStepFraction: initial and final descent steps.
//   - MaxIter: descent cap per slice (≤ 0 ⇒ search default).
//   - Window : moving-average width; Smooth=false keeps raw points.
//   - MRS    : finite-difference settings.
//   - Workers: pool size (≤ 0 ⇒ GOMAXPROCS).
type Options struct {
	Points          int         `json:"points" yaml:"points"`
	ScanSamples     int         `json:"scan_samples" yaml:"scan_samples"`
	ScanLow         float64     `json:"scan_low" yaml:"scan_low"`
	ScanHigh        float64     `json:"scan_high" yaml:"scan_high"`
	RefineLow       float64     `json:"refine_low" yaml:"refine_low"`
	RefineHigh      float64     `json:"refine_high" yaml:"refine_high"`
	PreTolerance    float64     `json:"pre_tolerance" yaml:"pre_tolerance"`
	Tolerance       float64     `json:"tolerance" yaml:"tolerance"`
	StepFraction    float64     `json:"step_fraction" yaml:"step_fraction"`
	MinStepFraction float64     `json:"min_step_fraction" yaml:"min_step_fraction"`
	MaxIter         int         `json:"max_iter" yaml:"max_iter"`
	Window          int         `json:"window" yaml:"window"`
	Smooth          bool        `json:"smooth" yaml:"smooth"`
	MRS             mrs.Options `json:"-" yaml:"-"`
	Workers         int         `json:"-" yaml:"-"`
}

// DefaultOptions returns 200 slices, 50-sample scans, acceptance at 0.1 and a
// five-point moving average.
func DefaultOptions() Options {
	return Options{
		Points:          200,
		ScanSamples:     50,
		ScanLow:         0.05,
		ScanHigh:        0.95,
		RefineLow:       0.01,
		RefineHigh:      0.99,
		PreTolerance:    1.0,
		Tolerance:       0.1,
		StepFraction:    0.1,
		MinStepFraction: 1e-6,
		MaxIter:         search.DefaultDescentMaxIter,
		Window:          5,
		Smooth:          true,
		MRS:             mrs.DefaultOptions(),
	}
}

// Candidate is a refined slice point together with its MRS gap.
type Candidate struct {
	economy.Point
	Gap float64 `json:"gap"`
}

// Result is the contract curve handed to renderers. X and Y have equal
// length with X non-decreasing; Accepted keeps the unsmoothed points.
type Result struct {
	X        economy.Series `json:"x"`
	Y        economy.Series `json:"y"`
	Accepted []Candidate    `json:"accepted"`
}
