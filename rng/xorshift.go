package rng

// Xorshift64 keeps 64 bits of state and returns the low 32 bits.
type Xorshift64 struct {
	seed uint64
	r    uint64
}

// NewXorshift64 seeds both halves of the state with seed. Zero is rejected
// because xorshift never leaves the all-zero state.
func NewXorshift64(seed uint32) (*Xorshift64, error) {
	if seed == 0 {
		return nil, ErrZeroSeed
	}
	s := uint64(seed)<<32 | uint64(seed)
	return &Xorshift64{seed: s, r: s}, nil
}

func (g *Xorshift64) Next() uint32 {
	x := g.r
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	g.r = x
	return uint32(x)
}

func (g *Xorshift64) NextN(n int) []uint32 { return nextN(g, n) }

func (g *Xorshift64) Uniform01() float64 {
	return float64(g.Next()) / two32
}

func (g *Xorshift64) Uniforms01(n int) []float64 { return uniforms01(g, n) }

func (g *Xorshift64) Reset() { g.r = g.seed }
