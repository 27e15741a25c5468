// SPDX-License-Identifier: MIT

// Package curve measures how far one closed 3D polyline lies from another.
//
// What:
//
//   - A curve is an ordered point sequence, implicitly closed: point i joins
//     point i+1 and the last point joins the first.
//   - Segments derives the cyclic segment list; Length sums it.
//   - Index is a static R-tree over a curve's segments answering exact
//     closest-point-on-curve queries.
//   - Distance(source, target) visits every source vertex, finds the gap to
//     the closest point on target, weights it by half the length of each of
//     the two source segments meeting at the vertex, and divides the sum by
//     the total source length.
//   - Compare evaluates both directions and their mean; CompareTo does the
//     same against a prebuilt target Index.
//   - Project maps every point onto its closest point of an indexed curve.
//
// Why:
//
//   - The weighting is a trapezoidal approximation of the mean gap along the
//     source curve, so densely sampled stretches do not dominate.
//   - The metric is asymmetric: Distance(a, b) and Distance(b, a) generally
//     differ. Distance(a, a) is exactly 0.
//   - Scaling both curves by k scales the result by k.
//
// Errors:
//
//   - ErrInvalidCurve:    fewer than two points, or a NaN/Inf coordinate.
//   - ErrNilIndex:        nil *Index passed as a target.
//   - ErrDegenerateCurve: all points coincide, so the total length is zero.
//   - ErrOptionViolation: invalid Option.
//
// Complexity:
//
//   - NewIndex: O(N log N) for N target segments.
//   - Distance: O(M log N) for M source vertices, split over Workers goroutines.
//     The sum is taken in vertex order, so the result does not depend on the
//     worker count.
package curve
