package util

import (
	"math/rand"
	"time"
)

// NewRand returns a seeded random source. A seed of 0 picks a time-based
// seed, any other value makes the sequence reproducible across runs.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
