package noise

import (
	"encoding/binary"
	"math/rand/v2"
)

// An Engine creates the random source that a [Grid] draws its gradients from.
// It is called once per construction and once per [Grid.Reseed], and must
// return an identical sequence for identical seeds.
type Engine func(seed uint64) rand.Source

const goldenRatio64 = 0x9e3779b97f4a7c15

// PCG returns a PCG source whose two state words are derived from seed. It is
// the default engine.
func PCG(seed uint64) rand.Source {
	return rand.NewPCG(mix(seed), mix(seed+goldenRatio64))
}

// ChaCha8 returns a ChaCha8 source keyed by seed.
func ChaCha8(seed uint64) rand.Source {
	var key [32]byte
	for i := range 4 {
		binary.LittleEndian.PutUint64(key[i*8:], mix(seed+uint64(i)*goldenRatio64))
	}
	return rand.NewChaCha8(key)
}

// mix is the SplitMix64 finalizer.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
