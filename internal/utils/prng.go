// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// RandomSource is the randomness the simulation draws from. Tests substitute scripted values.
type RandomSource interface {
	Intn(n int) int
	Float64() float64
}

// PRNGService wraps a seeded *rand.Rand so a whole session can be replayed from one seed.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService creates a service with the given seed.
// A seed of 0 uses the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed actually in use.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn returns a random int in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a random float in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range returns a random float in [min, min+spread).
func Range(r RandomSource, min, spread float64) float64 {
	return min + r.Float64()*spread
}

// Centered returns a random float in [-spread/2, spread/2).
func Centered(r RandomSource, spread float64) float64 {
	return (r.Float64() - 0.5) * spread
}
