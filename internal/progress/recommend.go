package progress

import (
	"fmt"
	"sort"
	"strings"
)

// strongRecommendAttempts is the stricter attempt gate used when
// congratulating on strong topics; three attempts is enough to flag a
// weakness but praise waits for more evidence.
const strongRecommendAttempts = 5

// trendMargin is how much the recent accuracy average must beat the
// prior one before the improvement line fires.
const trendMargin = 0.05

// Recommendations derives short study-advice lines from a subject's
// ledger, in a fixed priority order: weak topics, strong topics, score
// trend, test-count nudges, generic fallback. A subject with no data
// at all gets a single onboarding line.
func Recommendations(sp *SubjectProfile) []string {
	if sp.empty() {
		return []string{"Take your first test to get personalized recommendations."}
	}

	var recs []string

	if weak := WeakTopics(sp, DefaultWeakThreshold); len(weak) > 0 {
		names := make([]string, len(weak))
		for i, key := range weak {
			names[i] = FormatTopicName(key)
		}
		recs = append(recs, fmt.Sprintf("Focus on %s - your accuracy there is below 60%%.", strings.Join(names, ", ")))
	}

	if strong := strongForRecommendation(sp); len(strong) > 0 {
		names := make([]string, len(strong))
		for i, key := range strong {
			names[i] = FormatTopicName(key)
		}
		recs = append(recs, fmt.Sprintf("Great work on %s - keep it sharp with an occasional review.", strings.Join(names, ", ")))
	}

	if improving(sp.History) {
		recs = append(recs, "Your recent scores are trending up - whatever you're doing, keep doing it.")
	}

	switch {
	case sp.TestsCompleted == 0:
		recs = append(recs, "Take a full test to get a complete picture of where you stand.")
	case sp.TestsCompleted < 3:
		recs = append(recs, fmt.Sprintf("You've taken %d test(s) so far - a few more will sharpen these recommendations.", sp.TestsCompleted))
	}

	if len(recs) == 0 {
		recs = append(recs, "Keep practicing regularly to maintain your performance.")
	}
	return recs
}

// strongForRecommendation applies the stricter five-attempt gate on
// top of the strong-accuracy threshold.
func strongForRecommendation(sp *SubjectProfile) []string {
	var out []string
	for key, ts := range sp.TopicStats {
		if ts.TotalAttempted >= strongRecommendAttempts && ts.Accuracy() >= DefaultStrongThreshold {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

// improving compares the average accuracy of the last three sessions
// against the three before them.
func improving(history []SessionEntry) bool {
	if len(history) < 2 {
		return false
	}
	recent := history[max(0, len(history)-3):]
	older := history[max(0, len(history)-6):max(0, len(history)-3)]
	if len(older) == 0 {
		return false
	}
	return avgAccuracy(recent) > avgAccuracy(older)+trendMargin
}

func avgAccuracy(entries []SessionEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	var sum float64
	for _, e := range entries {
		if e.TotalQuestions > 0 {
			sum += float64(e.Score) / float64(e.TotalQuestions)
		}
	}
	return sum / float64(len(entries))
}

// FormatTopicName turns a topic key like "virtual-memory" into a
// human-readable "Virtual Memory".
func FormatTopicName(key string) string {
	words := strings.Split(key, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
