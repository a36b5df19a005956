package util

import "math/rand"

// New returns a seeded source for crit/dodge rolls. Seed 0 is remapped so a
// zero-valued config still yields a deterministic, non-degenerate stream.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	return rand.New(rand.NewSource(seed))
}
