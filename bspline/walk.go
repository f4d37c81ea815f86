package bspline

import (
	"fmt"
	"iter"
	"math"

	"honnef.co/go/knotfield/vec"
)

// Walk calls fn for points sampled every delta along the whole domain of the
// spline. See [Spline.WalkRange].
func (s *Spline) Walk(delta float64, fn func(pt vec.Vec, s *Spline)) error {
	lo, hi := s.Domain()
	return s.WalkRange(delta, lo, hi, fn)
}

// WalkRange calls fn for the points at a, a+delta, a+2·delta, and so on,
// floor((b-a)/delta)+1 times in total. The first sample is taken at exactly
// a and, if there is more than one, the last at exactly b.
// fn is called synchronously and in order of increasing parameter.
//
// delta must be positive, and a <= b must both lie in the domain. Arguments
// are validated before fn is called for the first time.
func (s *Spline) WalkRange(delta, a, b float64, fn func(pt vec.Vec, s *Spline)) error {
	samples, err := s.Samples(delta, a, b)
	if err != nil {
		return err
	}
	for _, pt := range samples {
		fn(pt, s)
	}
	return nil
}

// Samples returns an iterator over the same parameters and points that
// [Spline.WalkRange] visits, yielding each parameter together with its point.
func (s *Spline) Samples(delta, a, b float64) (iter.Seq2[float64, vec.Vec], error) {
	if !(delta > 0) {
		return nil, fmt.Errorf("delta %g must be positive: %w", delta, ErrInvalidArgument)
	}
	if err := s.checkDomain(a); err != nil {
		return nil, err
	}
	if err := s.checkDomain(b); err != nil {
		return nil, err
	}
	if a > b {
		return nil, fmt.Errorf("range start %g is after its end %g: %w", a, b, ErrInvalidArgument)
	}
	steps := math.Floor((b - a) / delta)
	if math.IsInf(steps, 0) || steps >= math.MaxInt {
		return nil, fmt.Errorf("delta %g is too small for range [%g, %g]: %w", delta, a, b, ErrInvalidArgument)
	}
	n := int(steps) + 1

	return func(yield func(float64, vec.Vec) bool) {
		for i := range n {
			tau := a + float64(i)*delta
			if i > 0 && (i == n-1 || tau > b) {
				tau = b
			}
			if !yield(tau, s.deBoor(tau, s.findK(tau))) {
				break
			}
		}
	}, nil
}
