package rng

import "fmt"

const (
	lcgA = 48271
	lcgM = 1<<31 - 1
)

// LCG is the Park-Miller linear congruential generator, equivalent to
// C++11 minstd_rand.
type LCG struct {
	seed uint32
	r    uint32
}

func NewLCG(seed uint32) (*LCG, error) {
	if uint64(seed)%lcgM == 0 {
		return nil, fmt.Errorf("lcg seed %d: %w", seed, ErrZeroSeed)
	}
	return &LCG{seed: seed, r: seed}, nil
}

func (g *LCG) Next() uint32 {
	g.r = uint32(uint64(g.r) * lcgA % lcgM)
	return g.r
}

func (g *LCG) NextN(n int) []uint32 { return nextN(g, n) }

func (g *LCG) Uniform01() float64 {
	return float64(g.Next()) / lcgM
}

func (g *LCG) Uniforms01(n int) []float64 { return uniforms01(g, n) }

func (g *LCG) Reset() { g.r = g.seed }
