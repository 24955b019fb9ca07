package randutil

import (
	rand "math/rand/v2"

	"github.com/coder/quartz"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Two 64-bit PCG seeds are derived from it so equal seeds always replay the
// same shuffles.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Resolve returns seed unchanged when it is non-zero. A zero seed means "pick
// one", and is replaced by a value derived from the clock so callers can log
// it and replay the session later.
func Resolve(seed int64, clock quartz.Clock) int64 {
	if seed != 0 {
		return seed
	}
	s := int64(mix(uint64(clock.Now().UnixNano())) >> 1)
	if s == 0 {
		s = 1
	}
	return s
}

// Derive returns the n-th child seed of seed. Workers use it to get
// independent, reproducible streams.
func Derive(seed int64, n int) int64 {
	return int64(mix(uint64(seed) + uint64(n+1)*goldenRatio64))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
