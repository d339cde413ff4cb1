package selection

import "math/rand/v2"

// Targeted picks up to total questions, preferring topics in weakTopics
// and never returning a question whose id is in excludeIDs. Questions
// outside the weak topics fill whatever quota remains. With an empty
// weakTopics set it degrades to a plain random sample.
func Targeted[T Question](rng *rand.Rand, pool []T, weakTopics map[string]bool, excludeIDs map[string]bool, total int) []T {
	var priority, other []T
	for _, q := range pool {
		if excludeIDs[q.QuestionID()] {
			continue
		}
		if weakTopics[q.QuestionTopicKey()] {
			priority = append(priority, q)
		} else {
			other = append(other, q)
		}
	}

	priority = Shuffle(rng, priority)
	other = Shuffle(rng, other)

	selected := make([]T, 0, total)
	for _, q := range priority {
		if len(selected) >= total {
			break
		}
		selected = append(selected, q)
	}
	for _, q := range other {
		if len(selected) >= total {
			break
		}
		selected = append(selected, q)
	}

	return Shuffle(rng, selected)
}
