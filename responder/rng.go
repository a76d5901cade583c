package responder

import (
	"math/rand"
	"time"
)

// RNG selects among candidate responses. *rand.Rand satisfies it.
type RNG interface {
	Intn(int) int
}

var defaultRng RNG = rand.New(rand.NewSource(time.Now().UnixNano()))

// NewRNG returns a source seeded with seed, or the time-seeded process
// default when seed is 0.
func NewRNG(seed int64) RNG {
	if seed == 0 {
		return defaultRng
	}
	return rand.New(rand.NewSource(seed))
}

func pick(candidates []string, rng RNG) string {
	return candidates[rng.Intn(len(candidates))]
}
