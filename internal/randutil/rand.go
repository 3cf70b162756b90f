// Package randutil derives reproducible random sources for decks and simulations.
package randutil

import (
	rand "math/rand/v2"

	"github.com/coder/quartz"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Both PCG words are derived from the one seed so that a seed printed in a log
// is enough to replay a session.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Seed picks a seed from the clock. A zero seed is never returned so callers
// can keep using 0 to mean "unset".
func Seed(clock quartz.Clock) int64 {
	seed := clock.Now().UnixNano()
	if seed == 0 {
		seed = goldenRatio64 >> 1
	}
	return seed
}

// Derive returns the seed for the n-th independent stream below seed.
func Derive(seed int64, n int) int64 {
	return int64(mix(uint64(seed) + uint64(n)*goldenRatio64))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
