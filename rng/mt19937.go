package rng

const (
	mtN         = 624
	mtM         = 397
	mtMatrixA   = 0x9908b0df
	mtUpperMask = 0x80000000
	mtLowerMask = 0x7fffffff

	// DefaultSeed is std::mt19937::default_seed.
	DefaultSeed uint32 = 5489
)

// MT19937 is the 32-bit Mersenne Twister.
type MT19937 struct {
	seed  uint32
	state [mtN]uint32
	index int
}

func NewMT19937(seed uint32) *MT19937 {
	g := &MT19937{}
	g.Seed(seed)
	return g
}

// Seed reinitialises the state with the Knuth multiplier used by init_genrand.
func (g *MT19937) Seed(seed uint32) {
	g.seed = seed
	g.state[0] = seed
	for i := 1; i < mtN; i++ {
		prev := g.state[i-1]
		g.state[i] = 1812433253*(prev^(prev>>30)) + uint32(i)
	}
	g.index = mtN
}

func (g *MT19937) twist() {
	for i := 0; i < mtN; i++ {
		y := g.state[i]&mtUpperMask | g.state[(i+1)%mtN]&mtLowerMask
		v := g.state[(i+mtM)%mtN] ^ y>>1
		if y&1 != 0 {
			v ^= mtMatrixA
		}
		g.state[i] = v
	}
	g.index = 0
}

func (g *MT19937) Next() uint32 {
	if g.index >= mtN {
		g.twist()
	}
	y := g.state[g.index]
	g.index++

	y ^= y >> 11
	y ^= y << 7 & 0x9d2c5680
	y ^= y << 15 & 0xefc60000
	y ^= y >> 18
	return y
}

func (g *MT19937) NextN(n int) []uint32 { return nextN(g, n) }

func (g *MT19937) Uniform01() float64 {
	return float64(g.Next()) / two32
}

func (g *MT19937) Uniforms01(n int) []float64 { return uniforms01(g, n) }

func (g *MT19937) Reset() { g.Seed(g.seed) }
