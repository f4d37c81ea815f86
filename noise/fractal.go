package noise

import (
	"fmt"
	"math"

	"honnef.co/go/knotfield/vec"
)

// Fractal sums several octaves of noise at increasing frequency and
// decreasing amplitude, producing fractional Brownian motion.
type Fractal struct {
	// Octaves is the number of noise layers.
	Octaves int
	// Persistence is the amplitude multiplier from one octave to the next,
	// typically 0.5.
	Persistence float64
	// Lacunarity is the frequency multiplier from one octave to the next,
	// typically 2. Integer values keep the sum tileable with the same period
	// as the grid.
	Lacunarity float64
}

// Validate reports whether f describes a usable sum.
func (f Fractal) Validate() error {
	if f.Octaves < 1 {
		return fmt.Errorf("%d octaves, want at least 1: %w", f.Octaves, ErrInvalidArgument)
	}
	if !(f.Persistence > 0) || math.IsInf(f.Persistence, 0) {
		return fmt.Errorf("persistence %g must be positive and finite: %w", f.Persistence, ErrInvalidArgument)
	}
	if !(f.Lacunarity > 0) || math.IsInf(f.Lacunarity, 0) {
		return fmt.Errorf("lacunarity %g must be positive and finite: %w", f.Lacunarity, ErrInvalidArgument)
	}
	return nil
}

// Eval returns the weighted sum of the octaves of g at v, normalized by the
// total amplitude so that it stays within the range of a single octave. Eval
// returns 0 if f fails [Fractal.Validate].
func (f Fractal) Eval(g *Grid, v vec.Vec) float64 {
	if f.Validate() != nil {
		return 0
	}
	amplitude := 1.0
	frequency := 1.0
	sum := 0.0
	norm := 0.0
	for range f.Octaves {
		sum += amplitude * g.Noise(v.Mul(frequency))
		norm += amplitude
		amplitude *= f.Persistence
		frequency *= f.Lacunarity
	}
	return sum / norm
}
