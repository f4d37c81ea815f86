// Package bspline evaluates B-spline curves of arbitrary order and dimension.
//
// A [Spline] is defined by a non-decreasing knot vector and a sequence of
// control points. For a spline of order p (the polynomial degree) with n
// control points there are n+p+1 knots, and the curve is defined for
// parameters in the support [knots[p], knots[n]]. Points on the curve are
// computed with [de Boor's algorithm].
//
// # Building splines
//
// [Create] pads the knot vector on request. Repeating the first and last knot
// p additional times produces a clamped spline, which starts exactly at its
// first control point and ends exactly at its last. [Clamped] is shorthand for
// padding both ends.
//
// Splines are immutable once built. All methods are safe for concurrent use.
//
// # Sampling
//
// [Spline.Walk] and [Spline.WalkRange] invoke a callback at evenly spaced
// parameters. [Spline.Samples] returns the same sequence as an iterator. The
// final sample always lands exactly on the end of the range, regardless of
// accumulated floating-point error.
//
// [de Boor's algorithm]: https://en.wikipedia.org/wiki/De_Boor%27s_algorithm
package bspline
