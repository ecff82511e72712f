package terrain

// chunkRNG is a small xorshift generator keyed by world seed and chunk
// coordinate. Every random decision in feature placement flows through it,
// so rivers, lakes and trees are reproducible from the seed alone.
type chunkRNG struct {
	state uint64
}

func newChunkRNG(seed int64, cx, cy int) *chunkRNG {
	state := uint64(uint32(cx))<<32 ^ uint64(uint32(cy))<<1 ^ uint64(seed)
	if state == 0 {
		state = 0x9e3779b97f4a7c15
	}
	return &chunkRNG{state: state}
}

func (r *chunkRNG) next() uint64 {
	r.state ^= r.state << 7
	r.state ^= r.state >> 9
	r.state ^= r.state << 8
	return r.state
}

// Float returns a value in [0, 1).
func (r *chunkRNG) Float() float64 {
	return float64(r.next()&0xFFFFFF) / (1 << 24)
}

// Intn returns a value in [0, n).
func (r *chunkRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.next() % uint64(n))
}

// Range returns a value in [min, max].
func (r *chunkRNG) Range(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min+1)
}
