package selection

import (
	"math/rand/v2"

	"github.com/abhisek/studiq/internal/questionbank"
)

// Balanced picks min(total, len(pool)) questions with no duplicate ids,
// split as evenly as possible between the two units. Within each unit,
// questions are drawn round-robin across topics so no single topic
// dominates the unit's share; both topic visiting order and the question
// picked from each topic are randomized.
//
// Undersized pools degrade silently: if a unit cannot meet its quota the
// shortfall is absorbed by a uniform fill from the unselected remainder.
func Balanced[T Question](rng *rand.Rand, pool []T, total int) []T {
	perUnit := total / 2

	var unit1, unit2 []T
	for _, q := range pool {
		if q.QuestionUnit() == questionbank.Unit1 {
			unit1 = append(unit1, q)
		} else {
			unit2 = append(unit2, q)
		}
	}

	selected := pickFromUnit(rng, unit1, perUnit)
	selected = append(selected, pickFromUnit(rng, unit2, perUnit)...)

	// Fill from the unselected remainder when the per-unit draws came
	// up short of the requested total.
	if len(selected) < total {
		chosen := make(map[string]bool, len(selected))
		for _, q := range selected {
			chosen[q.QuestionID()] = true
		}
		for _, q := range Shuffle(rng, pool) {
			if len(selected) >= total {
				break
			}
			if !chosen[q.QuestionID()] {
				chosen[q.QuestionID()] = true
				selected = append(selected, q)
			}
		}
	}

	selected = Shuffle(rng, selected)
	if len(selected) > total {
		selected = selected[:total]
	}
	return selected
}

// pickFromUnit draws up to count questions from one unit's pool,
// round-robin across topic groups.
func pickFromUnit[T Question](rng *rand.Rand, unitPool []T, count int) []T {
	if len(unitPool) == 0 || count <= 0 {
		return nil
	}

	byTopic := make(map[string][]T)
	var topics []string
	for _, q := range unitPool {
		key := q.QuestionTopicKey()
		if _, ok := byTopic[key]; !ok {
			topics = append(topics, key)
		}
		byTopic[key] = append(byTopic[key], q)
	}

	// Shuffling each group up front randomizes which of a topic's
	// questions round r picks.
	for key := range byTopic {
		byTopic[key] = Shuffle(rng, byTopic[key])
	}

	var selected []T
	chosen := make(map[string]bool, count)

	for round := 0; len(selected) < count; round++ {
		added := false
		for _, key := range Shuffle(rng, topics) {
			if len(selected) >= count {
				break
			}
			group := byTopic[key]
			if round >= len(group) {
				continue
			}
			q := group[round]
			if chosen[q.QuestionID()] {
				continue
			}
			chosen[q.QuestionID()] = true
			selected = append(selected, q)
			added = true
		}
		if !added {
			break // every topic exhausted
		}
	}

	return selected
}
