// Package grading scores submissions against objective and free-text
// question sets. Grading is pure: it never fails, and a missing or
// malformed answer simply counts as incorrect.
package grading

import "github.com/abhisek/studiq/internal/questionbank"

// Report is the outcome of grading one submission. The wrong lists keep
// the full question values so callers can display them and feed their
// topics into follow-up selection.
type Report struct {
	TotalQuestions   int
	TotalCorrect     int
	ObjectiveCorrect int
	FreeTextCorrect  int
	WrongObjective   []questionbank.Objective
	WrongFreeText    []questionbank.FreeText
}

// Grade scores a submission. objectiveAnswers maps question id to the
// chosen option index; freeTextAnswers maps question id to the written
// answer. Questions without a submitted answer are incorrect.
func Grade(
	objective []questionbank.Objective,
	freeText []questionbank.FreeText,
	objectiveAnswers map[string]int,
	freeTextAnswers map[string]string,
) Report {
	report := Report{
		TotalQuestions: len(objective) + len(freeText),
	}

	for _, q := range objective {
		chosen, answered := objectiveAnswers[q.ID]
		if answered && chosen == q.CorrectOption {
			report.ObjectiveCorrect++
			continue
		}
		report.WrongObjective = append(report.WrongObjective, q)
	}

	for _, q := range freeText {
		if freeTextCorrect(freeTextAnswers[q.ID], q.Keywords) {
			report.FreeTextCorrect++
			continue
		}
		report.WrongFreeText = append(report.WrongFreeText, q)
	}

	report.TotalCorrect = report.ObjectiveCorrect + report.FreeTextCorrect
	return report
}

// WeakTopics returns the deduplicated topic keys appearing in either
// wrong list, in first-seen order. This set seeds the follow-up bank for
// the next targeted round.
func WeakTopics(report Report) []string {
	seen := make(map[string]bool)
	var topics []string
	add := func(key string) {
		if !seen[key] {
			seen[key] = true
			topics = append(topics, key)
		}
	}
	for _, q := range report.WrongObjective {
		add(q.TopicKey)
	}
	for _, q := range report.WrongFreeText {
		add(q.TopicKey)
	}
	return topics
}
