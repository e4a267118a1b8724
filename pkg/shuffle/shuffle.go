package shuffle

import "math/rand"

const (
	// Modulus is the Mersenne prime 2^31-1 used by the Park-Miller generator.
	Modulus int64 = 2147483647
	// Multiplier is the Park-Miller multiplier.
	Multiplier int64 = 16807
)

// Seeded returns a permutation of items driven by a Park-Miller generator
// seeded with seed. The input slice is never modified and the same
// (items, seed) pair always yields the same order.
func Seeded[T any](items []T, seed int64) []T {
	result := make([]T, len(items))
	copy(result, items)

	s := normalize(seed)
	for i := len(result) - 1; i > 0; i-- {
		s = (s * Multiplier) % Modulus
		j := s % int64(i+1)
		result[i], result[j] = result[j], result[i]
	}
	return result
}

// RandomSeed returns a fresh seed in [0, Modulus-1).
func RandomSeed() int64 {
	return rand.Int63n(Modulus)
}

// normalize folds any int64 into [0, Modulus) so the multiplication above
// cannot overflow.
func normalize(seed int64) int64 {
	s := seed % Modulus
	if s < 0 {
		s += Modulus
	}
	return s
}
