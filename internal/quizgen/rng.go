package quizgen

import (
	"crypto/rand"
	"math/big"
)

// Randomness uses crypto/rand throughout. A predictable generator would let a
// learner anticipate targets and option positions instead of recalling the
// character, so the weak math/rand sequencing is deliberately avoided.

// randInt returns a uniform random int in [0, n). Panics if n <= 0; callers
// guard their pool sizes.
func randInt(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand only fails if the platform source is broken; there is
		// no meaningful recovery for a UI-driven draw.
		panic("quizgen: crypto rand failed: " + err.Error())
	}
	return int(v.Int64())
}

// shuffle permutes s in place with a Fisher-Yates shuffle.
func shuffle[T any](s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := randInt(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// shuffled returns a shuffled copy, leaving the input untouched.
func shuffled[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	shuffle(out)
	return out
}
