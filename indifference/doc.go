// Package indifference traces level sets of a two-good utility function.
//
// For every requested level ū and every x sample the solver bisects for the
// y with u(x, y) = ū, producing one curve per level with strictly increasing
// x and a shared utility value.
//
// Levels are spread evenly between u(maxX/4, maxY/4) and u(3maxX/4, 3maxY/4),
// so the default five curves pass through the middle of the plotting window.
//
// ⚠️ Precondition: u must be non-decreasing in y. This is assumed, not
// checked: a non-monotone utility yields a wrong y, never an error.
// Samples whose level is not reachable for y in [MinY, maxY] are NaN.
//
// Complexity: O(NumCurves · Samples · log₂((maxY−MinY)/Tolerance)) evaluations.
package indifference
