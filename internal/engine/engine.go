// Package engine orchestrates the study flows: assembling papers,
// grading submissions, recording outcomes, and building follow-up
// rounds from what went wrong.
package engine

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/abhisek/studiq/internal/grading"
	"github.com/abhisek/studiq/internal/progress"
	"github.com/abhisek/studiq/internal/questionbank"
	"github.com/abhisek/studiq/internal/selection"
)

// Paper size defaults carried over from the original curriculum:
// a full test is 24 objective plus 4 free-text questions, and review
// and follow-up rounds run 10 questions each.
const (
	TestObjectiveCount = 24
	TestFreeTextCount  = 4
	ReviewCount        = 10
	FollowUpCount      = 10
)

// Service drives test, practice, and review sessions over a loaded
// question bank. It is not safe for concurrent use; the CLI runs one
// session at a time.
type Service struct {
	bank     questionbank.Bank
	profiles *progress.Service
	rng      *rand.Rand
}

// Option configures a Service.
type Option func(*Service)

// WithRand overrides the random source. Tests use this for
// deterministic selection.
func WithRand(rng *rand.Rand) Option {
	return func(s *Service) { s.rng = rng }
}

// NewService builds a Service over the bank and profile store.
func NewService(bank questionbank.Bank, profiles *progress.Service, opts ...Option) *Service {
	s := &Service{
		bank:     bank,
		profiles: profiles,
		rng:      rand.New(rand.NewPCG(rand.Uint64(), uint64(time.Now().UnixNano()))),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) pool(subject questionbank.Subject) (*questionbank.Pool, error) {
	pool := s.bank.Pool(subject)
	if pool == nil {
		return nil, fmt.Errorf("no question pool for subject %q", subject)
	}
	return pool, nil
}

// TestPaper is a full assembled test.
type TestPaper struct {
	Subject   questionbank.Subject
	Objective []questionbank.Objective
	FreeText  []questionbank.FreeText
}

// BuildTest assembles a full test: objective and free-text questions
// drawn balanced across units and topics. Undersized pools yield a
// shorter paper rather than an error.
func (s *Service) BuildTest(subject questionbank.Subject) (*TestPaper, error) {
	pool, err := s.pool(subject)
	if err != nil {
		return nil, err
	}
	return &TestPaper{
		Subject:   subject,
		Objective: selection.Balanced(s.rng, pool.Objective, TestObjectiveCount),
		FreeText:  selection.Balanced(s.rng, pool.FreeText, TestFreeTextCount),
	}, nil
}

// PracticeQuestion draws one random drill question, never repeating
// the immediately preceding one. ok is false when the pool has no
// eligible question.
func (s *Service) PracticeQuestion(subject questionbank.Subject, excludeID string) (questionbank.Objective, bool, error) {
	pool, err := s.pool(subject)
	if err != nil {
		return questionbank.Objective{}, false, err
	}

	eligible := pool.Objective
	if excludeID != "" {
		eligible = make([]questionbank.Objective, 0, len(pool.Objective))
		for _, q := range pool.Objective {
			if q.ID != excludeID {
				eligible = append(eligible, q)
			}
		}
	}
	if len(eligible) == 0 {
		return questionbank.Objective{}, false, nil
	}
	return eligible[s.rng.IntN(len(eligible))], true, nil
}

// BuildReview assembles a review round targeting the learner's stored
// weak topics, skipping questions already seen this sitting. With no
// recorded weakness the whole pool is fair game.
func (s *Service) BuildReview(ctx context.Context, userID string, subject questionbank.Subject, seenIDs map[string]bool) ([]questionbank.Objective, error) {
	pool, err := s.pool(subject)
	if err != nil {
		return nil, err
	}

	sp, err := s.profiles.Subject(ctx, userID, subject)
	if err != nil {
		return nil, err
	}

	weak := make(map[string]bool)
	for _, key := range progress.WeakTopics(sp, progress.DefaultWeakThreshold) {
		weak[key] = true
	}

	return selection.Targeted(s.rng, pool.Objective, weak, seenIDs, ReviewCount), nil
}

// FollowUp assembles a targeted round from the topics a just-graded
// report got wrong, excluding the paper's own questions.
func (s *Service) FollowUp(subject questionbank.Subject, report grading.Report, excludeIDs map[string]bool) ([]questionbank.Objective, error) {
	pool, err := s.pool(subject)
	if err != nil {
		return nil, err
	}

	weak := make(map[string]bool)
	for _, key := range grading.WeakTopics(report) {
		weak[key] = true
	}

	return selection.Targeted(s.rng, pool.Objective, weak, excludeIDs, FollowUpCount), nil
}

// Outcome is the result of grading and recording one session.
type Outcome struct {
	Report grading.Report

	// Result is nil when recording failed; the report above is still
	// valid and should be shown to the learner.
	Result *progress.RecordResult
}

// Submit grades a submission and records it on the learner's profile.
// A persistence failure never suppresses the computed report: the
// Outcome is always returned, with the storage error alongside it.
func (s *Service) Submit(
	ctx context.Context,
	userID string,
	subject questionbank.Subject,
	mode progress.Mode,
	objective []questionbank.Objective,
	freeText []questionbank.FreeText,
	objectiveAnswers map[string]int,
	freeTextAnswers map[string]string,
) (*Outcome, error) {
	report := grading.Grade(objective, freeText, objectiveAnswers, freeTextAnswers)
	outcome := &Outcome{Report: report}

	correct, wrong := splitRefs(report, objective, freeText)
	result, err := s.profiles.Record(ctx, userID, subject, mode, correct, wrong)
	if err != nil {
		return outcome, fmt.Errorf("recording session: %w", err)
	}
	outcome.Result = result
	return outcome, nil
}

// splitRefs partitions the paper's questions into correct and wrong
// references using the report's wrong lists.
func splitRefs(report grading.Report, objective []questionbank.Objective, freeText []questionbank.FreeText) (correct, wrong []progress.QuestionRef) {
	wrongIDs := make(map[string]bool, len(report.WrongObjective)+len(report.WrongFreeText))
	for _, q := range report.WrongObjective {
		wrongIDs[q.ID] = true
	}
	for _, q := range report.WrongFreeText {
		wrongIDs[q.ID] = true
	}

	add := func(ref progress.QuestionRef) {
		if wrongIDs[ref.ID] {
			wrong = append(wrong, ref)
		} else {
			correct = append(correct, ref)
		}
	}
	for _, q := range objective {
		add(progress.QuestionRef{ID: q.ID, TopicKey: q.TopicKey})
	}
	for _, q := range freeText {
		add(progress.QuestionRef{ID: q.ID, TopicKey: q.TopicKey})
	}
	return correct, wrong
}
