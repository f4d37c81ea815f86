// Package noise implements seedable, tileable gradient noise in two or more
// dimensions.
//
// A [Grid] owns a periodic lattice of random unit gradient vectors. [Grid.Noise]
// blends the contributions of the 2ⁿ corners of the lattice cell containing a
// point, using the quintic fade curve 6t⁵ − 15t⁴ + 10t³, as described by Ken
// Perlin in [Improving Noise]. The result is a continuous scalar field that is
// exactly zero at every lattice vertex and that repeats every
// size[i]/resolution units along axis i. For up to four dimensions its values
// lie in [-1, 1].
//
// The gradients are drawn from a [math/rand/v2] generator created by an
// [Engine]. The same seed and engine always produce the same field.
//
// Noise evaluation is safe for concurrent use. [Grid.Reseed] is not; callers
// must make sure no evaluation is in progress while reseeding.
//
// [Improving Noise]: https://mrl.cs.nyu.edu/~perlin/paper445.pdf
package noise
