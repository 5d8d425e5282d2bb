package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Uint32n returns a random uint32 in [0, n).
func (r *RNG) Uint32n(n uint32) uint32 {
	if n == 0 {
		return 0
	}
	return r.r.Uint32N(n)
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// FillNoise fills cells with a sparse noisy state from a 32-bit LCG.
// Roughly one cell in seven gets a high value and one in thirteen a medium
// value; the rest stay zero. The same seed always produces the same state,
// which makes it suitable for cross-run comparison fixtures.
func FillNoise(cells []uint32, seed uint32) {
	state := seed*1103515245 + 12345
	for i := range cells {
		state = state*1103515245 + 12345
		noise := (state >> 16) & 0xFFFF
		switch {
		case i%7 == 0:
			cells[i] = noise * 100
		case i%13 == 0:
			cells[i] = noise / 10
		default:
			cells[i] = 0
		}
	}
}
