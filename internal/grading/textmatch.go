package grading

import (
	"math"
	"strings"
	"unicode"
)

// normalize lowercases text and collapses every run of non-alphanumeric
// characters into a single space.
func normalize(s string) string {
	var b strings.Builder
	space := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(r)
			continue
		}
		space = true
	}
	return b.String()
}

// keywordHits counts how many keywords occur as substrings of the
// normalized answer.
func keywordHits(answer string, keywords []string) int {
	norm := normalize(answer)
	hits := 0
	for _, kw := range keywords {
		if strings.Contains(norm, normalize(kw)) {
			hits++
		}
	}
	return hits
}

// freeTextCorrect applies the keyword-overlap heuristic: at least
// ceil(len(keywords)/2) keywords must appear, with a floor of one
// required hit. A blank answer is always wrong.
//
// This is deliberately a heuristic, not semantic understanding; changing
// the threshold changes pass/fail outcomes for existing content.
func freeTextCorrect(answer string, keywords []string) bool {
	if strings.TrimSpace(answer) == "" {
		return false
	}
	required := int(math.Ceil(float64(len(keywords)) / 2))
	if required < 1 {
		required = 1
	}
	return keywordHits(answer, keywords) >= required
}
