// Package vec provides n-dimensional coordinate vectors for points and
// directions in the other packages of this module.
//
// A [Vec] is a plain slice of float64. Its dimension is its length. Binary
// operations require operands of identical dimension and panic otherwise, the
// same way indexing out of range would.
package vec

import (
	"fmt"
	"math"
	"strings"

	"github.com/viterin/vek"
)

type Vec []float64

// Of returns the vector made of the given components.
func Of(xs ...float64) Vec {
	return Vec(xs)
}

// Zero returns the zero vector of dimension n.
func Zero(n int) Vec {
	return make(Vec, n)
}

// Dims returns the number of components of v.
func (v Vec) Dims() int {
	return len(v)
}

// Clone returns a copy of v that doesn't share its backing array.
func (v Vec) Clone() Vec {
	if v == nil {
		return nil
	}
	return append(Vec(nil), v...)
}

func (v Vec) String() string {
	var sb strings.Builder
	sb.WriteString("⟨")
	for i, x := range v {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", x)
	}
	sb.WriteString("⟩")
	return sb.String()
}

func (v Vec) mustMatch(o Vec) {
	if len(v) != len(o) {
		panic(fmt.Sprintf("vec: dimension mismatch: %d != %d", len(v), len(o)))
	}
}

// Dot returns the dot product of v and o.
func (v Vec) Dot(o Vec) float64 {
	v.mustMatch(o)
	if len(v) == 0 {
		return 0
	}
	return vek.Dot(v, o)
}

// Hypot returns the magnitude of the vector.
func (v Vec) Hypot() float64 {
	if len(v) == 0 {
		return 0
	}
	return vek.Norm(v)
}

// Hypot2 returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Vec.Hypot].
func (v Vec) Hypot2() float64 {
	return v.Dot(v)
}

// Distance returns the euclidean distance between v and o.
func (v Vec) Distance(o Vec) float64 {
	v.mustMatch(o)
	if len(v) == 0 {
		return 0
	}
	return vek.Distance(v, o)
}

// Add adds two vectors and returns the resulting vector.
func (v Vec) Add(o Vec) Vec {
	v.mustMatch(o)
	if len(v) == 0 {
		return Vec{}
	}
	return vek.Add(v, o)
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec) Sub(o Vec) Vec {
	v.mustMatch(o)
	if len(v) == 0 {
		return Vec{}
	}
	return vek.Sub(v, o)
}

func (v Vec) Mul(f float64) Vec {
	if len(v) == 0 {
		return Vec{}
	}
	return vek.MulNumber(v, f)
}

// Lerp linearly interpolates between two vectors.
func (v Vec) Lerp(o Vec, t float64) Vec {
	// v + t * (o-v)
	d := o.Sub(v)
	if len(d) == 0 {
		return d
	}
	vek.MulNumber_Inplace(d, t)
	vek.Add_Inplace(d, v)
	return d
}

// Normalize returns a vector of magnitude 1.0 with the same direction as v.
// This produces a NaN vector if the magnitude is 0.
func (v Vec) Normalize() Vec {
	out := v.Clone()
	if len(out) == 0 {
		return out
	}
	vek.DivNumber_Inplace(out, v.Hypot())
	return out
}

// Floor returns a new vector with every component rounded down to the nearest
// integer.
func (v Vec) Floor() Vec {
	if len(v) == 0 {
		return Vec{}
	}
	return vek.Floor(v)
}

// Equal reports whether v and o have the same dimension and identical
// components.
func (v Vec) Equal(o Vec) bool {
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if v[i] != o[i] {
			return false
		}
	}
	return true
}

// IsInf reports whether at least one component is infinite.
func (v Vec) IsInf() bool {
	for _, x := range v {
		if math.IsInf(x, 0) {
			return true
		}
	}
	return false
}

// IsNaN reports whether at least one component is NaN.
func (v Vec) IsNaN() bool {
	for _, x := range v {
		if math.IsNaN(x) {
			return true
		}
	}
	return false
}
