package progress

import (
	"math"
	"reflect"
	"testing"
	"time"
)

func subjectWith(stats map[string][2]int) *SubjectProfile {
	sp := NewSubjectProfile()
	for key, pair := range stats {
		sp.TopicStats[key] = &TopicStats{
			TopicKey:       key,
			TotalAttempted: pair[0],
			TotalCorrect:   pair[1],
		}
	}
	return sp
}

func TestWeakTopicsAttemptGate(t *testing.T) {
	sp := subjectWith(map[string][2]int{
		"deadlocks":  {2, 0}, // 0% but only 2 attempts, not enough signal
		"threads":    {3, 1}, // 33%, gated in
		"scheduling": {10, 9},
	})
	got := WeakTopics(sp, DefaultWeakThreshold)
	if !reflect.DeepEqual(got, []string{"threads"}) {
		t.Fatalf("WeakTopics = %v, want [threads]", got)
	}
}

func TestWeakTopicsThresholdIsStrict(t *testing.T) {
	sp := subjectWith(map[string][2]int{
		"exactly": {5, 3}, // 0.6 exactly, not weak
		"below":   {5, 2}, // 0.4
	})
	got := WeakTopics(sp, DefaultWeakThreshold)
	if !reflect.DeepEqual(got, []string{"below"}) {
		t.Fatalf("WeakTopics = %v, want [below]", got)
	}
}

func TestStrongTopicsThresholdIsInclusive(t *testing.T) {
	sp := subjectWith(map[string][2]int{
		"exactly": {5, 4}, // 0.8 exactly, strong
		"below":   {5, 3},
		"gated":   {2, 2}, // perfect but under the attempt gate
	})
	got := StrongTopics(sp, DefaultStrongThreshold)
	if !reflect.DeepEqual(got, []string{"exactly"}) {
		t.Fatalf("StrongTopics = %v, want [exactly]", got)
	}
}

func TestTopicAccuraciesHasNoGate(t *testing.T) {
	sp := subjectWith(map[string][2]int{
		"a": {1, 1},
		"b": {4, 1},
	})
	got := TopicAccuracies(sp)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].TopicKey != "a" || got[0].Accuracy != 1 {
		t.Errorf("got[0] = %+v", got[0])
	}
	if got[1].TopicKey != "b" || got[1].Accuracy != 0.25 {
		t.Errorf("got[1] = %+v", got[1])
	}
}

func TestOverallAccuracy(t *testing.T) {
	sp := subjectWith(map[string][2]int{
		"a": {6, 3},
		"b": {4, 4},
	})
	if got := OverallAccuracy(sp); math.Abs(got-0.7) > 1e-9 {
		t.Fatalf("OverallAccuracy = %v, want 0.7", got)
	}
	if got := OverallAccuracy(NewSubjectProfile()); got != 0 {
		t.Fatalf("empty OverallAccuracy = %v, want 0", got)
	}
	if got := OverallAccuracy(nil); got != 0 {
		t.Fatalf("nil OverallAccuracy = %v, want 0", got)
	}
}

func TestRecentWrongIDs(t *testing.T) {
	sp := NewSubjectProfile()
	sp.TopicStats["a"] = &TopicStats{TopicKey: "a", RecentWrongIDs: []string{"q1", "q2"}}
	sp.TopicStats["b"] = &TopicStats{TopicKey: "b", RecentWrongIDs: []string{"q3"}}
	got := RecentWrongIDs(sp)
	for _, id := range []string{"q1", "q2", "q3"} {
		if !got[id] {
			t.Errorf("missing %s in %v", id, got)
		}
	}
	if len(got) != 3 {
		t.Errorf("len = %d, want 3", len(got))
	}
}

func historyEntry(score, total int) SessionEntry {
	return SessionEntry{
		SessionID:      "s",
		Date:           time.Now(),
		Score:          score,
		TotalQuestions: total,
		Mode:           ModeTest,
	}
}

func TestRecommendationsEmptyProfile(t *testing.T) {
	for _, sp := range []*SubjectProfile{nil, NewSubjectProfile()} {
		got := Recommendations(sp)
		if len(got) != 1 || got[0] != "Take your first test to get personalized recommendations." {
			t.Fatalf("Recommendations = %v", got)
		}
	}
}

func TestRecommendationsWeakLine(t *testing.T) {
	sp := subjectWith(map[string][2]int{
		"virtual-memory": {4, 1},
		"cpu-scheduling": {4, 1},
	})
	sp.TestsCompleted = 3
	got := Recommendations(sp)
	if len(got) == 0 {
		t.Fatal("no recommendations")
	}
	want := "Focus on Cpu Scheduling, Virtual Memory - your accuracy there is below 60%."
	if got[0] != want {
		t.Fatalf("got[0] = %q, want %q", got[0], want)
	}
}

func TestRecommendationsStrongGateNeedsFiveAttempts(t *testing.T) {
	// Strong by accuracy at 4/4, but praise waits for five attempts.
	sp := subjectWith(map[string][2]int{"threads": {4, 4}})
	sp.TestsCompleted = 3
	for _, line := range Recommendations(sp) {
		if line == "Great work on Threads - keep it sharp with an occasional review." {
			t.Fatal("strong line fired under five attempts")
		}
	}

	sp = subjectWith(map[string][2]int{"threads": {5, 5}})
	sp.TestsCompleted = 3
	got := Recommendations(sp)
	if len(got) == 0 || got[0] != "Great work on Threads - keep it sharp with an occasional review." {
		t.Fatalf("Recommendations = %v", got)
	}
}

func TestRecommendationsTrend(t *testing.T) {
	sp := subjectWith(map[string][2]int{"threads": {6, 4}})
	sp.TestsCompleted = 6
	sp.History = []SessionEntry{
		historyEntry(4, 10), historyEntry(5, 10), historyEntry(4, 10),
		historyEntry(7, 10), historyEntry(8, 10), historyEntry(7, 10),
	}
	found := false
	for _, line := range Recommendations(sp) {
		if line == "Your recent scores are trending up - whatever you're doing, keep doing it." {
			found = true
		}
	}
	if !found {
		t.Fatal("expected trend line for improving history")
	}

	// Flat history stays quiet.
	sp.History = []SessionEntry{
		historyEntry(5, 10), historyEntry(5, 10), historyEntry(5, 10),
		historyEntry(5, 10), historyEntry(5, 10), historyEntry(5, 10),
	}
	for _, line := range Recommendations(sp) {
		if line == "Your recent scores are trending up - whatever you're doing, keep doing it." {
			t.Fatal("trend line fired for flat history")
		}
	}
}

func TestRecommendationsTestCountNudges(t *testing.T) {
	sp := NewSubjectProfile()
	sp.PracticeSessionsCompleted = 2
	got := Recommendations(sp)
	found := false
	for _, line := range got {
		if line == "Take a full test to get a complete picture of where you stand." {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected full-test nudge, got %v", got)
	}

	sp.TestsCompleted = 2
	got = Recommendations(sp)
	found = false
	for _, line := range got {
		if line == "You've taken 2 test(s) so far - a few more will sharpen these recommendations." {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected few-more-tests nudge, got %v", got)
	}
}

func TestRecommendationsGenericFallback(t *testing.T) {
	// Enough tests, no weak or strong signal, no trend.
	sp := subjectWith(map[string][2]int{"threads": {4, 3}}) // 0.75, neither weak nor strong
	sp.TestsCompleted = 3
	got := Recommendations(sp)
	if len(got) != 1 || got[0] != "Keep practicing regularly to maintain your performance." {
		t.Fatalf("Recommendations = %v", got)
	}
}

func TestFormatTopicName(t *testing.T) {
	cases := map[string]string{
		"virtual-memory": "Virtual Memory",
		"tcp":            "Tcp",
		"":               "",
	}
	for in, want := range cases {
		if got := FormatTopicName(in); got != want {
			t.Errorf("FormatTopicName(%q) = %q, want %q", in, got, want)
		}
	}
}
