package noise

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"

	"honnef.co/go/knotfield/vec"
)

func TestFractalSingleOctave(t *testing.T) {
	g := mustNew(t, []int{4, 4}, 1, 42)
	f := Fractal{Octaves: 1, Persistence: 0.5, Lacunarity: 2}
	for _, p := range randomPoints(50, 2, -4, 4) {
		diff(t, g.Noise(p), f.Eval(g, p))
	}
}

func TestFractalSum(t *testing.T) {
	g := mustNew(t, []int{4, 4, 4}, 1, 42)
	f := Fractal{Octaves: 3, Persistence: 0.5, Lacunarity: 2}
	for _, p := range randomPoints(50, 3, -4, 4) {
		want := (g.Noise(p) + 0.5*g.Noise(p.Mul(2)) + 0.25*g.Noise(p.Mul(4))) / 1.75
		diff(t, want, f.Eval(g, p), cmpopts.EquateApprox(0, 1e-12))
	}
}

func TestFractalProperties(t *testing.T) {
	g := mustNew(t, []int{5, 5}, 1, 8)
	f := Fractal{Octaves: 5, Persistence: 0.6, Lacunarity: 2}
	for _, p := range randomPoints(500, 2, -10, 10) {
		n := f.Eval(g, p)
		if !(n >= -1 && n <= 1) {
			t.Fatalf("fractal noise at %v is %g, out of bounds", p, n)
		}
		// integer lacunarity keeps the period of the grid
		q := p.Add(vec.Of(5, 0))
		diff(t, n, f.Eval(g, q), cmpopts.EquateApprox(0, 1e-9))
	}
	if n := f.Eval(g, vec.Of(3, -2)); n != 0 {
		t.Errorf("fractal noise at lattice vertex is %g, want 0", n)
	}
}

func TestFractalValidate(t *testing.T) {
	valid := Fractal{Octaves: 4, Persistence: 0.5, Lacunarity: 2}
	if err := valid.Validate(); err != nil {
		t.Errorf("unexpected error: %s", err)
	}
	for _, f := range []Fractal{
		{Octaves: 0, Persistence: 0.5, Lacunarity: 2},
		{Octaves: 4, Persistence: 0, Lacunarity: 2},
		{Octaves: 4, Persistence: math.NaN(), Lacunarity: 2},
		{Octaves: 4, Persistence: 0.5, Lacunarity: -2},
		{Octaves: 4, Persistence: 0.5, Lacunarity: math.Inf(1)},
	} {
		if err := f.Validate(); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%+v: got %v, want ErrInvalidArgument", f, err)
		}
	}
	g := mustNew(t, []int{2, 2}, 1, 0)
	diff(t, 0.0, Fractal{}.Eval(g, vec.Of(0.5, 0.5)))
	// -1 would cancel the amplitudes of an even number of octaves
	diff(t, 0.0, Fractal{Octaves: 2, Persistence: -1, Lacunarity: 2}.Eval(g, vec.Of(0.3, 0.7)))
	diff(t, 0.0, Fractal{Octaves: 3, Persistence: -0.5, Lacunarity: 2}.Eval(g, vec.Of(0.3, 0.7)))
}
