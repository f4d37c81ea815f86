package noise_test

import (
	"fmt"
	"math"
	"strings"

	"honnef.co/go/knotfield/noise"
	"honnef.co/go/knotfield/vec"
)

func ExampleGrid_Noise() {
	// An 8×8 lattice with 4 lattice cells per unit repeats every 2 units.
	g, err := noise.New([]int{8, 8}, 4, 42)
	if err != nil {
		panic(err)
	}
	// (0.25, 0.5) maps to the lattice vertex (1, 2).
	fmt.Println(noise.Noise2(g, 0.25, 0.5) == 0)
	a := noise.Noise2(g, 0.3, 0.7)
	b := noise.Noise2(g, 2.3, 0.7)
	fmt.Println(math.Abs(a-b) < 1e-9)
	// Output:
	// true
	// true
}

func ExampleFractal() {
	g, err := noise.New([]int{16, 16}, 1, 7)
	if err != nil {
		panic(err)
	}
	f := noise.Fractal{Octaves: 4, Persistence: 0.5, Lacunarity: 2}
	if err := f.Validate(); err != nil {
		panic(err)
	}

	// Render a patch as ASCII shades.
	const shades = " .:-=+*#%@"
	var sb strings.Builder
	for y := range 16 {
		for x := range 64 {
			n := f.Eval(g, vec.Of(float64(x)/4, float64(y)/2))
			i := int((n + 1) / 2 * float64(len(shades)))
			sb.WriteByte(shades[max(0, min(i, len(shades)-1))])
		}
		sb.WriteByte('\n')
	}
	fmt.Print(sb.String())
}
