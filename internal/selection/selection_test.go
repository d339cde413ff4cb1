package selection

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/abhisek/studiq/internal/questionbank"
)

func newRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func q(id string, unit questionbank.Unit, topic string) questionbank.Objective {
	return questionbank.Objective{
		Meta: questionbank.Meta{
			ID:       id,
			Unit:     unit,
			Topic:    topic,
			TopicKey: questionbank.SlugifyTopic(topic),
		},
	}
}

// buildPool creates n questions per topic for each (unit, topic) pair.
func buildPool(perTopic int, unitTopics map[questionbank.Unit][]string) []questionbank.Objective {
	var pool []questionbank.Objective
	for unit, topics := range unitTopics {
		for _, topic := range topics {
			for i := 0; i < perTopic; i++ {
				id := fmt.Sprintf("u%d-%s-%d", unit, questionbank.SlugifyTopic(topic), i)
				pool = append(pool, q(id, unit, topic))
			}
		}
	}
	return pool
}

func ids(qs []questionbank.Objective) map[string]int {
	out := make(map[string]int)
	for _, it := range qs {
		out[it.ID]++
	}
	return out
}

func TestShuffle_PreservesMultiset(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7, 8}
	got := Shuffle(newRNG(1), in)

	if len(got) != len(in) {
		t.Fatalf("len = %d, want %d", len(got), len(in))
	}
	counts := make(map[int]int)
	for _, v := range got {
		counts[v]++
	}
	for _, v := range in {
		counts[v]--
	}
	for v, c := range counts {
		if c != 0 {
			t.Errorf("element %d count off by %d", v, c)
		}
	}
}

func TestShuffle_DoesNotMutateInput(t *testing.T) {
	in := []string{"a", "b", "c", "d", "e"}
	want := []string{"a", "b", "c", "d", "e"}
	Shuffle(newRNG(7), in)
	for i := range in {
		if in[i] != want[i] {
			t.Fatalf("input mutated at %d: %v", i, in)
		}
	}
}

func TestShuffle_DeterministicWithSeed(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6}
	a := Shuffle(newRNG(42), in)
	b := Shuffle(newRNG(42), in)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different orders: %v vs %v", a, b)
		}
	}
}

func TestBalanced_SizeAndUniqueness(t *testing.T) {
	pool := buildPool(4, map[questionbank.Unit][]string{
		questionbank.Unit1: {"A", "B", "C"},
		questionbank.Unit2: {"D", "E", "F"},
	})
	poolIDs := ids(pool)

	for _, total := range []int{0, 1, 4, 10, 24, len(pool), len(pool) + 10} {
		got := Balanced(newRNG(3), pool, total)

		want := total
		if len(pool) < want {
			want = len(pool)
		}
		if len(got) != want {
			t.Errorf("total=%d: len = %d, want %d", total, len(got), want)
		}
		for id, n := range ids(got) {
			if n > 1 {
				t.Errorf("total=%d: id %s selected %d times", total, id, n)
			}
			if poolIDs[id] == 0 {
				t.Errorf("total=%d: id %s not in pool", total, id)
			}
		}
	}
}

func TestBalanced_ConcreteFourQuestionPool(t *testing.T) {
	pool := []questionbank.Objective{
		q("Q1", questionbank.Unit1, "A"),
		q("Q2", questionbank.Unit1, "A"),
		q("Q3", questionbank.Unit1, "B"),
		q("Q4", questionbank.Unit1, "B"),
	}
	got := Balanced(newRNG(5), pool, 4)
	if len(got) != 4 {
		t.Fatalf("len = %d, want 4", len(got))
	}
	seen := ids(got)
	for _, id := range []string{"Q1", "Q2", "Q3", "Q4"} {
		if seen[id] != 1 {
			t.Errorf("id %s selected %d times, want exactly once", id, seen[id])
		}
	}
}

func TestBalanced_TopicFairnessWithinUnit(t *testing.T) {
	// 2 topics per unit, plenty of questions each. For a 12-question set,
	// each unit contributes 6 and no topic should exceed ceil(6/2)+1 = 4.
	pool := buildPool(10, map[questionbank.Unit][]string{
		questionbank.Unit1: {"A", "B"},
		questionbank.Unit2: {"C", "D"},
	})

	for seed := uint64(0); seed < 20; seed++ {
		got := Balanced(newRNG(seed), pool, 12)
		perTopic := make(map[string]int)
		for _, it := range got {
			perTopic[it.TopicKey]++
		}
		for topic, n := range perTopic {
			if n > 4 {
				t.Errorf("seed=%d: topic %s supplied %d questions, want <= 4", seed, topic, n)
			}
		}
	}
}

func TestBalanced_EmptyUnitAbsorbedByFill(t *testing.T) {
	pool := buildPool(5, map[questionbank.Unit][]string{
		questionbank.Unit1: {"A", "B"},
	})
	got := Balanced(newRNG(9), pool, 8)
	if len(got) != 8 {
		t.Errorf("len = %d, want 8 despite empty unit 2", len(got))
	}
}

func TestTargeted_NeverReturnsExcluded(t *testing.T) {
	pool := buildPool(5, map[questionbank.Unit][]string{
		questionbank.Unit1: {"A", "B"},
		questionbank.Unit2: {"C"},
	})
	exclude := map[string]bool{}
	for i, it := range pool {
		if i%2 == 0 {
			exclude[it.ID] = true
		}
	}

	got := Targeted(newRNG(11), pool, map[string]bool{"a": true}, exclude, 10)
	for _, it := range got {
		if exclude[it.ID] {
			t.Errorf("excluded id %s was returned", it.ID)
		}
	}
}

func TestTargeted_WeakTopicsFirst(t *testing.T) {
	// 6 weak-topic questions and 6 others; with total=6 the result must
	// be entirely weak-topic questions.
	pool := buildPool(6, map[questionbank.Unit][]string{
		questionbank.Unit1: {"Weak"},
		questionbank.Unit2: {"Other"},
	})
	got := Targeted(newRNG(13), pool, map[string]bool{"weak": true}, nil, 6)
	if len(got) != 6 {
		t.Fatalf("len = %d, want 6", len(got))
	}
	for _, it := range got {
		if it.TopicKey != "weak" {
			t.Errorf("question %s from topic %s, want weak only", it.ID, it.TopicKey)
		}
	}
}

func TestTargeted_FallsBackToOtherTopics(t *testing.T) {
	pool := buildPool(2, map[questionbank.Unit][]string{
		questionbank.Unit1: {"Weak", "Other"},
	})
	got := Targeted(newRNG(17), pool, map[string]bool{"weak": true}, nil, 4)
	if len(got) != 4 {
		t.Errorf("len = %d, want 4", len(got))
	}
}

func TestTargeted_EmptyWeakSetIsRandomSample(t *testing.T) {
	pool := buildPool(3, map[questionbank.Unit][]string{
		questionbank.Unit1: {"A", "B"},
	})
	got := Targeted(newRNG(19), pool, nil, nil, 4)
	if len(got) != 4 {
		t.Errorf("len = %d, want 4", len(got))
	}
	for id, n := range ids(got) {
		if n > 1 {
			t.Errorf("id %s selected %d times", id, n)
		}
	}
}
