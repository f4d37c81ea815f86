package bspline

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"honnef.co/go/knotfield/vec"
)

var (
	// ErrInvalidArgument is returned for malformed knot vectors, control
	// points, and sampling parameters.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOutOfDomain is returned when a parameter lies outside the support of
	// the spline.
	ErrOutOfDomain = errors.New("parameter out of domain")
	// ErrPreconditionViolation is returned by [Spline.InterpolateK] when the
	// supplied knot span doesn't contain the parameter.
	ErrPreconditionViolation = errors.New("precondition violation")
)

// degenerateSpan is the relative width below which a knot span is considered
// empty during de Boor recursion.
const degenerateSpan = 1e-12

// Spline is a B-spline curve. The zero value is not usable; create splines
// with [Create] or [Clamped].
type Spline struct {
	order  int
	dims   int
	knots  []float64
	points []float64
	// last is the index of the last non-empty knot span in the support.
	last int
}

// Clamped is like [Create] with both ends of the knot vector padded.
func Clamped(order int, knots []float64, points []vec.Vec) (*Spline, error) {
	return Create(order, knots, points, true, true)
}

// Create builds a spline of the given order from knots and control points.
//
// If repeatBegin is true, the first knot is repeated order additional times;
// likewise repeatEnd repeats the last knot. After padding, the number of
// knots must equal len(points)+order+1. All control points must have the same,
// non-zero dimension, and the knots must be finite and non-decreasing.
//
// Create copies its inputs; later modifications to knots or points don't
// affect the spline.
func Create(order int, knots []float64, points []vec.Vec, repeatBegin, repeatEnd bool) (*Spline, error) {
	if order < 1 {
		return nil, fmt.Errorf("order %d must be at least 1: %w", order, ErrInvalidArgument)
	}
	if order >= len(points) {
		return nil, fmt.Errorf("order %d needs more control points than its order, got %d: %w",
			order, len(points), ErrInvalidArgument)
	}
	if len(knots) == 0 {
		return nil, fmt.Errorf("no knots: %w", ErrInvalidArgument)
	}

	dims := len(points[0])
	if dims == 0 {
		return nil, fmt.Errorf("control points have no components: %w", ErrInvalidArgument)
	}
	for i, pt := range points {
		if len(pt) != dims {
			return nil, fmt.Errorf("control point %d has %d components, want %d: %w",
				i, len(pt), dims, ErrInvalidArgument)
		}
	}

	for i, k := range knots {
		if math.IsNaN(k) || math.IsInf(k, 0) {
			return nil, fmt.Errorf("knot %d is %g: %w", i, k, ErrInvalidArgument)
		}
		if i > 0 && k < knots[i-1] {
			return nil, fmt.Errorf("knot %d (%g) is smaller than its predecessor (%g): %w",
				i, k, knots[i-1], ErrInvalidArgument)
		}
	}

	n := len(knots)
	if repeatBegin {
		n += order
	}
	if repeatEnd {
		n += order
	}
	if want := len(points) + order + 1; n != want {
		return nil, fmt.Errorf("got %d knots after padding, want %d for %d control points of order %d: %w",
			n, want, len(points), order, ErrInvalidArgument)
	}

	padded := make([]float64, 0, n)
	if repeatBegin {
		for range order {
			padded = append(padded, knots[0])
		}
	}
	padded = append(padded, knots...)
	if repeatEnd {
		for range order {
			padded = append(padded, knots[len(knots)-1])
		}
	}

	flat := make([]float64, 0, len(points)*dims)
	for _, pt := range points {
		flat = append(flat, pt...)
	}

	s := &Spline{
		order:  order,
		dims:   dims,
		knots:  padded,
		points: flat,
	}
	lo, hi := s.Domain()
	if !(lo < hi) {
		return nil, fmt.Errorf("support [%g, %g] is empty: %w", lo, hi, ErrInvalidArgument)
	}
	last := len(points) - 1
	for padded[last] == padded[last+1] {
		last--
	}
	s.last = last
	return s, nil
}

// Order returns the polynomial order (degree) of the spline.
func (s *Spline) Order() int { return s.order }

// Dims returns the dimension of the spline's points.
func (s *Spline) Dims() int { return s.dims }

// Knots returns a copy of the padded knot vector.
func (s *Spline) Knots() []float64 {
	return append([]float64(nil), s.knots...)
}

// ControlPoints returns copies of the control points.
func (s *Spline) ControlPoints() []vec.Vec {
	out := make([]vec.Vec, s.numPoints())
	for i := range out {
		out[i] = s.point(i).Clone()
	}
	return out
}

// Domain returns the support of the spline, [knots[order], knots[len(knots)-order-1]].
func (s *Spline) Domain() (lo, hi float64) {
	return s.knots[s.order], s.knots[len(s.knots)-s.order-1]
}

func (s *Spline) numPoints() int {
	return len(s.points) / s.dims
}

func (s *Spline) point(i int) vec.Vec {
	return vec.Vec(s.points[i*s.dims : (i+1)*s.dims])
}

func (s *Spline) checkDomain(tau float64) error {
	lo, hi := s.Domain()
	// written so that NaN fails the check
	if !(tau >= lo && tau <= hi) {
		return fmt.Errorf("%g not in [%g, %g]: %w", tau, lo, hi, ErrOutOfDomain)
	}
	return nil
}

// FindK returns the index i of the knot span containing tau, that is
// knots[i] <= tau < knots[i+1]. At the upper end of the support, FindK returns
// the last non-empty span. FindK is monotonic in tau.
func (s *Spline) FindK(tau float64) (int, error) {
	if err := s.checkDomain(tau); err != nil {
		return 0, err
	}
	return s.findK(tau), nil
}

func (s *Spline) findK(tau float64) int {
	if _, hi := s.Domain(); tau == hi {
		return s.last
	}
	// The first knot greater than tau lies in (order, numPoints], because
	// knots[order] <= tau < knots[numPoints].
	return sort.Search(len(s.knots), func(i int) bool { return s.knots[i] > tau }) - 1
}

// Interpolate returns the point on the spline at parameter tau, which must lie
// in the spline's domain.
func (s *Spline) Interpolate(tau float64) (vec.Vec, error) {
	if err := s.checkDomain(tau); err != nil {
		return nil, err
	}
	return s.deBoor(tau, s.findK(tau)), nil
}

// InterpolateK is like [Spline.Interpolate] but uses the caller-supplied knot
// span k instead of searching for it. k must satisfy
// knots[k] <= tau < knots[k+1], or knots[k] < tau == knots[k+1] when tau is
// the upper end of the domain. Otherwise, ErrPreconditionViolation is
// returned.
func (s *Spline) InterpolateK(tau float64, k int) (vec.Vec, error) {
	if err := s.checkDomain(tau); err != nil {
		return nil, err
	}
	if k < s.order || k >= s.numPoints() {
		return nil, fmt.Errorf("span %d not in [%d, %d]: %w", k, s.order, s.numPoints()-1, ErrPreconditionViolation)
	}
	t0, t1 := s.knots[k], s.knots[k+1]
	_, hi := s.Domain()
	ok := t0 <= tau && tau < t1
	if !ok && tau == hi {
		ok = t0 < tau && tau == t1
	}
	if !ok {
		return nil, fmt.Errorf("span %d [%g, %g) doesn't contain %g: %w", k, t0, t1, tau, ErrPreconditionViolation)
	}
	return s.deBoor(tau, k), nil
}

func (s *Spline) deBoor(tau float64, k int) vec.Vec {
	p, n := s.order, s.dims
	// d holds the p+1 control points affecting span k, blended in place.
	d := make([]float64, (p+1)*n)
	copy(d, s.points[(k-p)*n:(k+1)*n])

	for r := 1; r <= p; r++ {
		for j := p; j >= r; j-- {
			i := j + k - p
			den := s.knots[i+p-r+1] - s.knots[i]
			if den <= degenerateSpan*math.Max(1, math.Abs(s.knots[i])) {
				// Repeated knots contribute nothing; d[j] takes d[j-1] as is.
				copy(d[j*n:(j+1)*n], d[(j-1)*n:j*n])
				continue
			}
			alpha := (tau - s.knots[i]) / den
			prev := d[(j-1)*n : j*n]
			cur := d[j*n : (j+1)*n]
			for c := range cur {
				cur[c] = (1-alpha)*prev[c] + alpha*cur[c]
			}
		}
	}

	out := make(vec.Vec, n)
	copy(out, d[p*n:])
	return out
}
