package noise

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/viterin/vek"

	"honnef.co/go/knotfield/vec"
)

// ErrInvalidArgument is returned for malformed grid shapes and parameters.
var ErrInvalidArgument = errors.New("invalid argument")

// MaxDims is the largest number of dimensions a [Grid] supports. Each
// evaluation visits 2^dims cell corners.
const MaxDims = 16

// maxCells bounds the number of lattice cells.
const maxCells = 1 << 30

// Grid is a periodic lattice of unit gradients. The zero value is not usable;
// create grids with [New] or [NewWithEngine].
type Grid struct {
	dims       int
	size       []int
	resolution float64
	seed       uint64
	engine     Engine
	rng        *rand.Rand

	// gradients holds one unit vector per cell, row-major with the last axis
	// varying fastest.
	gradients []float64
	// offsets holds the 2^dims corner offsets of a unit cell. Component i of
	// corner c is bit i of c.
	offsets []float64
}

// New returns a grid of the given shape, using the [PCG] engine.
// See [NewWithEngine].
func New(size []int, resolution float64, seed uint64) (*Grid, error) {
	return NewWithEngine(size, resolution, seed, PCG)
}

// NewWithEngine returns a grid with len(size) dimensions and size[i] cells
// along axis i, filled with random unit gradients drawn from
// engine(seed). Input coordinates are multiplied by resolution before the
// lattice lookup, so the noise repeats every size[i]/resolution units.
//
// The grid must have between 2 and [MaxDims] dimensions, every axis at least
// one cell, and resolution must be positive and finite.
func NewWithEngine(size []int, resolution float64, seed uint64, engine Engine) (*Grid, error) {
	if len(size) < 2 || len(size) > MaxDims {
		return nil, fmt.Errorf("grid has %d dimensions, want between 2 and %d: %w", len(size), MaxDims, ErrInvalidArgument)
	}
	numel := 1
	for i, n := range size {
		if n <= 0 {
			return nil, fmt.Errorf("axis %d has size %d: %w", i, n, ErrInvalidArgument)
		}
		if numel > maxCells/n {
			return nil, fmt.Errorf("grid %v has more than %d cells: %w", size, maxCells, ErrInvalidArgument)
		}
		numel *= n
	}
	if !(resolution > 0) || math.IsInf(resolution, 0) {
		return nil, fmt.Errorf("resolution %g must be positive and finite: %w", resolution, ErrInvalidArgument)
	}
	if engine == nil {
		return nil, fmt.Errorf("nil engine: %w", ErrInvalidArgument)
	}

	dims := len(size)
	corners := 1 << dims
	offsets := make([]float64, corners*dims)
	for c := range corners {
		for i := range dims {
			offsets[c*dims+i] = float64((c >> i) & 1)
		}
	}

	g := &Grid{
		dims:       dims,
		size:       append([]int(nil), size...),
		resolution: resolution,
		engine:     engine,
		gradients:  make([]float64, numel*dims),
		offsets:    offsets,
	}
	g.Reseed(seed)
	return g, nil
}

// Dims returns the number of dimensions of the grid.
func (g *Grid) Dims() int { return g.dims }

// Size returns a copy of the grid's shape.
func (g *Grid) Size() []int { return append([]int(nil), g.size...) }

// Resolution returns the factor that input coordinates are scaled by.
func (g *Grid) Resolution() float64 { return g.resolution }

// Seed returns the seed the gradients were last generated from.
func (g *Grid) Seed() uint64 { return g.seed }

// Reseed resets the random generator to seed and regenerates every gradient
// in place. It must not be called concurrently with any other method.
func (g *Grid) Reseed(seed uint64) {
	g.seed = seed
	g.rng = rand.New(g.engine(seed))
	d := g.dims
	for k := 0; k < len(g.gradients); k += d {
		g.randomUnit(g.gradients[k : k+d])
	}
}

// randomUnit fills dst with a uniformly distributed unit vector.
func (g *Grid) randomUnit(dst []float64) {
	if len(dst) == 2 {
		y, x := math.Sincos(2 * math.Pi * g.rng.Float64())
		dst[0], dst[1] = x, y
		return
	}
	// Normalized Gaussian samples are uniform on the sphere.
	for {
		for i := range dst {
			dst[i] = g.rng.NormFloat64()
		}
		if n := vek.Norm(dst); n > 1e-9 {
			vek.DivNumber_Inplace(dst, n)
			return
		}
	}
}

func wrap(x float64, n int) int {
	i := int(x) % n
	if i < 0 {
		i += n
	}
	return i
}

// index returns the offset into g.gradients of the cell containing the
// lattice-space point p.
func (g *Grid) index(p []float64) int {
	k := 0
	for i, x := range p {
		k = k*g.size[i] + wrap(math.Floor(x), g.size[i])
	}
	return k * g.dims
}

// gradient returns the gradient of the cell containing p, which is in lattice
// space. Coordinates wrap around.
func (g *Grid) gradient(p vec.Vec) vec.Vec {
	k := g.index(p)
	return vec.Vec(g.gradients[k : k+g.dims]).Clone()
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// Noise returns the noise value at v. Its magnitude is at most √dims / 2,
// which keeps grids of up to four dimensions within [-1, 1]. Noise panics if
// len(v) isn't equal to g.Dims().
func (g *Grid) Noise(v vec.Vec) float64 {
	d := g.dims
	if len(v) != d {
		panic(fmt.Sprintf("noise: got %d-dimensional point for %d-dimensional grid", len(v), d))
	}

	cell := make([]float64, d)
	frac := make([]float64, d)
	weight := make([]float64, d)
	for i, x := range v {
		p := x * g.resolution
		cell[i] = math.Floor(p)
		frac[i] = p - cell[i]
		weight[i] = fade(frac[i])
	}

	corners := 1 << d
	dots := make([]float64, corners)
	corner := make([]float64, d)
	delta := make([]float64, d)
	for c := range corners {
		off := g.offsets[c*d : (c+1)*d]
		for i := range d {
			corner[i] = cell[i] + off[i]
			delta[i] = frac[i] - off[i]
		}
		k := g.index(corner)
		dots[c] = vek.Dot(g.gradients[k:k+d], delta)
	}

	// Collapse one axis per pass. Pairs (2j, 2j+1) differ in the lowest bit,
	// which after i passes corresponds to axis i.
	for i := range d {
		half := corners >> (i + 1)
		for j := range half {
			a, b := dots[2*j], dots[2*j+1]
			dots[j] = a + weight[i]*(b-a)
		}
	}
	return dots[0]
}

// Noise2 returns the noise of a two-dimensional grid at (x, y).
func Noise2(g *Grid, x, y float64) float64 {
	return g.Noise(vec.Of(x, y))
}

// Noise3 returns the noise of a three-dimensional grid at (x, y, z).
func Noise3(g *Grid, x, y, z float64) float64 {
	return g.Noise(vec.Of(x, y, z))
}

// Noise4 returns the noise of a four-dimensional grid at (x, y, z, w).
func Noise4(g *Grid, x, y, z, w float64) float64 {
	return g.Noise(vec.Of(x, y, z, w))
}
