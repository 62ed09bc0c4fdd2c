// Package rng wraps seeded 32-bit pseudo-random number generators.
//
// Three generators implement Generator: LCG (minstd_rand), Xorshift64 and
// MT19937. The Mersenne Twister reproduces the output of C++ std::mt19937
// for the same seed, and is what a Table hands out behind opaque handles.
//
// Generators are not safe for concurrent use. Table is.
package rng

import "errors"

// ErrZeroSeed is returned when a seed would leave a generator stuck at zero.
var ErrZeroSeed = errors.New("rng: seed leaves generator state at zero")

type Generator interface {
	// Next advances the generator and returns the new value.
	Next() uint32
	NextN(n int) []uint32
	// Uniform01 returns the next value scaled to [0, 1].
	Uniform01() float64
	Uniforms01(n int) []float64
	// Reset restores the state the generator was seeded with.
	Reset()
}

const two32 = 1 << 32

func nextN(g Generator, n int) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = g.Next()
	}
	return out
}

func uniforms01(g Generator, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = g.Uniform01()
	}
	return out
}
