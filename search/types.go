package search

import "errors"

var (
	// ErrBadBracket indicates lo ≥ hi or a non-finite bracket end.
	ErrBadBracket = errors.New("search: invalid bracket")

	// ErrBadTolerance indicates a non-positive or non-finite tolerance/step.
	ErrBadTolerance = errors.New("search: tolerance must be finite and > 0")

	// ErrEmptyGrid indicates a grid with no samples.
	ErrEmptyGrid = errors.New("search: empty grid")
)

// Func1 is a scalar function of one variable.
type Func1 func(float64) float64

// Defaults.
const (
	// DefaultBisectTolerance is the bracket width at which Bisect stops.
	DefaultBisectTolerance = 1e-6

	// DefaultBisectMaxIter caps halvings; 200 halvings shrink any finite
	// float64 bracket far below DefaultBisectTolerance.
	DefaultBisectMaxIter = 200

	// DefaultDescentMaxIter caps Descend iterations (moves plus halvings).
	DefaultDescentMaxIter = 10_000
)

// BisectOptions configures Bisect.
type BisectOptions struct {
	Tolerance float64 // bracket width to stop at; > 0
	MaxIter   int     // ≤ 0 ⇒ DefaultBisectMaxIter
}

// DefaultBisectOptions returns the tolerance 1e-6 / 200 iterations policy.
func DefaultBisectOptions() BisectOptions {
	return BisectOptions{Tolerance: DefaultBisectTolerance, MaxIter: DefaultBisectMaxIter}
}

// DescentOptions configures Descend and the refinement stage of Minimize.
//
// Fields:
//   - Step    : initial probe distance from the current point.
//   - MinStep : the search stops once the step falls below MinStep.
//   - Lower, Upper: open bounds; probes outside (Lower, Upper) are skipped.
//     Set both to ±Inf for an unbounded search.
//   - MaxIter : cap on iterations (each iteration either moves or halves).
type DescentOptions struct {
	Step    float64
	MinStep float64
	Lower   float64
	Upper   float64
	MaxIter int
}

// Result is the outcome of Descend or Minimize.
type Result struct {
	X          float64 // best abscissa found
	Value      float64 // objective at X (+Inf if nothing finite was seen)
	Iterations int     // descent iterations spent
	Converged  bool    // false when MaxIter stopped the descent first
}
