// Package contract approximates the contract curve of a two-agent exchange
// economy: the allocations where both agents' marginal rates of substitution
// agree, i.e. the Pareto-efficient locus inside the Edgeworth box.
//
// 🚀 Algorithm (per x slice, x swept over [ScanLow, ScanHigh]·TotalX):
//
//  1. Coarse scan: gap(y) = |MRS_A(x, y) − MRS_B(TotalX−x, TotalY−y)| over
//     ScanSamples values of y in [ScanLow, ScanHigh]·TotalY.
//  2. Slices whose best scan gap is not below PreTolerance are skipped.
//  3. Coordinate descent from the best scan sample: step StepFraction·TotalY,
//     halving down to MinStepFraction·TotalY, probes kept inside
//     (RefineLow, RefineHigh)·TotalY.
//  4. The refined point is accepted when its gap is below Tolerance.
//
// Accepted points are smoothed with a centred moving average of Window
// samples over Y (X taken at the window centres). With fewer than Window
// accepted points the raw sequence is returned.
//
// ✨ Properties:
//   - Slices are independent and run on a bounded errgroup pool; results are
//     merged by slice index, so output does not depend on Workers.
//   - Slices that fail to converge are dropped silently. The curve may have
//     gaps or be empty; neither is an error.
//   - Every raw point in Result.Accepted satisfies gap < Tolerance.
//
// ⚙️ Complexity: O(Points · (ScanSamples + MaxIter)) MRS evaluations, three
// utility calls each.
package contract
