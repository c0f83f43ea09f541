package lesson

import "math/rand/v2"

// Rand is the randomness a lesson consumes. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// NewRand returns a deterministic source for the given seed.
func NewRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewRandomRand returns a source seeded from the runtime's entropy.
func NewRandomRand() Rand {
	return NewRand(rand.Uint64())
}
