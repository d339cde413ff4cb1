// Package selection implements the question-picking algorithms: uniform
// shuffling, topic-balanced assembly across curriculum units, and
// weak-topic-targeted assembly for review rounds.
//
// Every function takes the random source as an argument so callers (and
// tests) control determinism.
package selection

import (
	"math/rand/v2"

	"github.com/abhisek/studiq/internal/questionbank"
)

// Question is the minimal view the selectors need.
// questionbank.Objective and questionbank.FreeText both satisfy it.
type Question interface {
	QuestionID() string
	QuestionUnit() questionbank.Unit
	QuestionTopicKey() string
}

// Shuffle returns a new slice with the elements of items in uniformly
// random order (Fisher-Yates). The input is never mutated.
func Shuffle[T any](rng *rand.Rand, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
