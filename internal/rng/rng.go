package rng

import "math/rand"

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Seeded returns a reproducible Generator for the seed
func Seeded(seed int64) Generator {
	return rand.New(rand.NewSource(seed)) // nolint:gosec
}
