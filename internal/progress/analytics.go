package progress

import "sort"

const (
	// DefaultWeakThreshold marks a topic weak below this accuracy.
	DefaultWeakThreshold = 0.6
	// DefaultStrongThreshold marks a topic strong at or above this accuracy.
	DefaultStrongThreshold = 0.8

	// minAttempts is the floor below which a topic carries too little
	// signal to be classified either way.
	minAttempts = 3
)

// WeakTopics returns topic keys with at least minAttempts attempts and
// accuracy strictly below threshold, sorted for stable output.
func WeakTopics(sp *SubjectProfile, threshold float64) []string {
	if sp == nil {
		return nil
	}
	var out []string
	for key, ts := range sp.TopicStats {
		if ts.TotalAttempted >= minAttempts && ts.Accuracy() < threshold {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

// StrongTopics returns topic keys with at least minAttempts attempts
// and accuracy at or above threshold, sorted for stable output.
func StrongTopics(sp *SubjectProfile, threshold float64) []string {
	if sp == nil {
		return nil
	}
	var out []string
	for key, ts := range sp.TopicStats {
		if ts.TotalAttempted >= minAttempts && ts.Accuracy() >= threshold {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

// TopicAccuracy is the per-topic accuracy summary exposed to callers.
type TopicAccuracy struct {
	TopicKey  string
	Attempted int
	Correct   int
	Accuracy  float64
}

// TopicAccuracies lists accuracy for every attempted topic, sorted by
// topic key. No attempt gate applies here; this is the raw view.
func TopicAccuracies(sp *SubjectProfile) []TopicAccuracy {
	if sp == nil {
		return nil
	}
	out := make([]TopicAccuracy, 0, len(sp.TopicStats))
	for key, ts := range sp.TopicStats {
		out = append(out, TopicAccuracy{
			TopicKey:  key,
			Attempted: ts.TotalAttempted,
			Correct:   ts.TotalCorrect,
			Accuracy:  ts.Accuracy(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TopicKey < out[j].TopicKey })
	return out
}

// OverallAccuracy is total correct over total attempted across all
// topics, or 0 with no attempts.
func OverallAccuracy(sp *SubjectProfile) float64 {
	if sp == nil {
		return 0
	}
	var attempted, correct int
	for _, ts := range sp.TopicStats {
		attempted += ts.TotalAttempted
		correct += ts.TotalCorrect
	}
	if attempted == 0 {
		return 0
	}
	return float64(correct) / float64(attempted)
}

// RecentWrongIDs gathers the recently missed question ids across all
// topics of the subject.
func RecentWrongIDs(sp *SubjectProfile) map[string]bool {
	out := make(map[string]bool)
	if sp == nil {
		return out
	}
	for _, ts := range sp.TopicStats {
		for _, id := range ts.RecentWrongIDs {
			out[id] = true
		}
	}
	return out
}
