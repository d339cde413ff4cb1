package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/abhisek/studiq/internal/grading"
	"github.com/abhisek/studiq/internal/progress"
	"github.com/abhisek/studiq/internal/questionbank"
	"github.com/abhisek/studiq/internal/store"
)

type memProfileRepo struct {
	profiles map[string]*store.ProfileData
	putErr   error
}

func newMemProfileRepo() *memProfileRepo {
	return &memProfileRepo{profiles: make(map[string]*store.ProfileData)}
}

func (r *memProfileRepo) Get(_ context.Context, userID string) (*store.ProfileData, error) {
	return r.profiles[userID], nil
}

func (r *memProfileRepo) Put(_ context.Context, data *store.ProfileData) error {
	if r.putErr != nil {
		return r.putErr
	}
	r.profiles[data.UserID] = data
	return nil
}

func objQ(id, topicKey string, unit questionbank.Unit) questionbank.Objective {
	return questionbank.Objective{
		Meta: questionbank.Meta{
			ID:       id,
			Subject:  questionbank.SubjectOS,
			Unit:     unit,
			Topic:    topicKey,
			TopicKey: topicKey,
			Prompt:   "prompt " + id,
		},
		Options:       [4]string{"a", "b", "c", "d"},
		CorrectOption: 0,
	}
}

func ftQ(id, topicKey string, unit questionbank.Unit) questionbank.FreeText {
	return questionbank.FreeText{
		Meta: questionbank.Meta{
			ID:       id,
			Subject:  questionbank.SubjectOS,
			Unit:     unit,
			Topic:    topicKey,
			TopicKey: topicKey,
			Prompt:   "prompt " + id,
		},
		IdealAnswer: "answer",
		Keywords:    []string{"mutex", "lock"},
	}
}

// testBank builds an OS pool with 30 objective questions over 6 topics
// (3 per unit) and 6 free-text questions.
func testBank() questionbank.Bank {
	pool := &questionbank.Pool{Subject: questionbank.SubjectOS}
	topics1 := []string{"process-management", "threads", "cpu-scheduling"}
	topics2 := []string{"memory-management", "deadlocks", "virtual-memory"}
	n := 0
	for i := 0; i < 5; i++ {
		for _, tk := range topics1 {
			pool.Objective = append(pool.Objective, objQ(fmt.Sprintf("os-%02d", n), tk, questionbank.Unit1))
			n++
		}
		for _, tk := range topics2 {
			pool.Objective = append(pool.Objective, objQ(fmt.Sprintf("os-%02d", n), tk, questionbank.Unit2))
			n++
		}
	}
	for i := 0; i < 3; i++ {
		pool.FreeText = append(pool.FreeText, ftQ(fmt.Sprintf("os-ft-%d", i), topics1[i], questionbank.Unit1))
		pool.FreeText = append(pool.FreeText, ftQ(fmt.Sprintf("os-ft-%d", i+3), topics2[i], questionbank.Unit2))
	}
	return questionbank.Bank{questionbank.SubjectOS: pool}
}

func newTestService(repo store.ProfileRepo, seed uint64) *Service {
	profiles := progress.NewService(repo, nil)
	return NewService(testBank(), profiles, WithRand(rand.New(rand.NewPCG(seed, seed))))
}

func TestBuildTestSizes(t *testing.T) {
	svc := newTestService(newMemProfileRepo(), 1)

	paper, err := svc.BuildTest(questionbank.SubjectOS)
	if err != nil {
		t.Fatalf("BuildTest: %v", err)
	}
	if len(paper.Objective) != TestObjectiveCount {
		t.Errorf("objective = %d, want %d", len(paper.Objective), TestObjectiveCount)
	}
	// Pool only holds 6 free-text questions; the paper takes its 4.
	if len(paper.FreeText) != TestFreeTextCount {
		t.Errorf("free-text = %d, want %d", len(paper.FreeText), TestFreeTextCount)
	}

	seen := make(map[string]bool)
	for _, q := range paper.Objective {
		if seen[q.ID] {
			t.Errorf("duplicate question %s", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestBuildTestUnknownSubject(t *testing.T) {
	svc := newTestService(newMemProfileRepo(), 1)
	if _, err := svc.BuildTest(questionbank.SubjectLA); err == nil {
		t.Fatal("expected error for subject with no pool")
	}
}

func TestPracticeQuestionExcludesPrevious(t *testing.T) {
	svc := newTestService(newMemProfileRepo(), 2)

	q, ok, err := svc.PracticeQuestion(questionbank.SubjectOS, "")
	if err != nil || !ok {
		t.Fatalf("PracticeQuestion: ok=%v err=%v", ok, err)
	}
	for i := 0; i < 50; i++ {
		next, ok, err := svc.PracticeQuestion(questionbank.SubjectOS, q.ID)
		if err != nil || !ok {
			t.Fatalf("PracticeQuestion: ok=%v err=%v", ok, err)
		}
		if next.ID == q.ID {
			t.Fatalf("drew excluded question %s", q.ID)
		}
		q = next
	}
}

func TestPracticeQuestionExhaustedPool(t *testing.T) {
	bank := questionbank.Bank{
		questionbank.SubjectOS: {
			Subject:   questionbank.SubjectOS,
			Objective: []questionbank.Objective{objQ("only", "threads", questionbank.Unit1)},
		},
	}
	profiles := progress.NewService(newMemProfileRepo(), nil)
	svc := NewService(bank, profiles, WithRand(rand.New(rand.NewPCG(3, 3))))

	_, ok, err := svc.PracticeQuestion(questionbank.SubjectOS, "only")
	if err != nil {
		t.Fatalf("PracticeQuestion: %v", err)
	}
	if ok {
		t.Fatal("expected no eligible question")
	}
}

func TestBuildReviewTargetsStoredWeakTopics(t *testing.T) {
	repo := newMemProfileRepo()
	svc := newTestService(repo, 4)
	ctx := context.Background()

	// Record a session that leaves deadlocks weak: 0/4.
	var wrong []progress.QuestionRef
	for i := 0; i < 4; i++ {
		wrong = append(wrong, progress.QuestionRef{ID: fmt.Sprintf("w%d", i), TopicKey: "deadlocks"})
	}
	profiles := progress.NewService(repo, nil)
	if _, err := profiles.Record(ctx, "u1", questionbank.SubjectOS, progress.ModeTest, nil, wrong); err != nil {
		t.Fatalf("Record: %v", err)
	}

	round, err := svc.BuildReview(ctx, "u1", questionbank.SubjectOS, nil)
	if err != nil {
		t.Fatalf("BuildReview: %v", err)
	}
	if len(round) != ReviewCount {
		t.Fatalf("len(round) = %d, want %d", len(round), ReviewCount)
	}
	// The bank has 5 deadlocks questions; all must be in the round.
	deadlocks := 0
	for _, q := range round {
		if q.TopicKey == "deadlocks" {
			deadlocks++
		}
	}
	if deadlocks != 5 {
		t.Errorf("deadlocks questions in round = %d, want 5", deadlocks)
	}
}

func TestBuildReviewExcludesSeen(t *testing.T) {
	svc := newTestService(newMemProfileRepo(), 5)
	ctx := context.Background()

	first, err := svc.BuildReview(ctx, "u1", questionbank.SubjectOS, nil)
	if err != nil {
		t.Fatalf("BuildReview: %v", err)
	}
	seen := make(map[string]bool)
	for _, q := range first {
		seen[q.ID] = true
	}

	second, err := svc.BuildReview(ctx, "u1", questionbank.SubjectOS, seen)
	if err != nil {
		t.Fatalf("BuildReview: %v", err)
	}
	for _, q := range second {
		if seen[q.ID] {
			t.Errorf("question %s repeated across rounds", q.ID)
		}
	}
}

func TestFollowUpPrioritizesReportTopics(t *testing.T) {
	svc := newTestService(newMemProfileRepo(), 6)

	pool := testBank()[questionbank.SubjectOS]
	var threads []questionbank.Objective
	for _, q := range pool.Objective {
		if q.TopicKey == "threads" {
			threads = append(threads, q)
		}
	}

	// Report a wrong answer on one threads question; exclude the paper.
	report := grading.Grade(threads[:1], nil, nil, nil)
	exclude := map[string]bool{threads[0].ID: true}

	round, err := svc.FollowUp(questionbank.SubjectOS, report, exclude)
	if err != nil {
		t.Fatalf("FollowUp: %v", err)
	}
	if len(round) != FollowUpCount {
		t.Fatalf("len(round) = %d, want %d", len(round), FollowUpCount)
	}
	got := 0
	for _, q := range round {
		if q.ID == threads[0].ID {
			t.Error("excluded question reappeared")
		}
		if q.TopicKey == "threads" {
			got++
		}
	}
	// 5 threads questions minus the excluded one must all be present.
	if got != 4 {
		t.Errorf("threads questions in follow-up = %d, want 4", got)
	}
}

func TestSubmitRecordsSession(t *testing.T) {
	repo := newMemProfileRepo()
	svc := newTestService(repo, 7)
	ctx := context.Background()

	paper, err := svc.BuildTest(questionbank.SubjectOS)
	if err != nil {
		t.Fatalf("BuildTest: %v", err)
	}

	// Answer every objective correctly, leave free-text blank.
	answers := make(map[string]int, len(paper.Objective))
	for _, q := range paper.Objective {
		answers[q.ID] = q.CorrectOption
	}

	outcome, err := svc.Submit(ctx, "u1", questionbank.SubjectOS, progress.ModeTest,
		paper.Objective, paper.FreeText, answers, nil)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if outcome.Report.ObjectiveCorrect != len(paper.Objective) {
		t.Errorf("objective correct = %d, want %d", outcome.Report.ObjectiveCorrect, len(paper.Objective))
	}
	if outcome.Report.FreeTextCorrect != 0 {
		t.Errorf("free-text correct = %d, want 0", outcome.Report.FreeTextCorrect)
	}
	if outcome.Result == nil || outcome.Result.SessionID == "" {
		t.Fatal("expected recorded session")
	}

	sp := outcome.Result.Profile.Subject(questionbank.SubjectOS)
	if sp.TestsCompleted != 1 {
		t.Errorf("TestsCompleted = %d, want 1", sp.TestsCompleted)
	}
}

func TestSubmitPersistenceFailureKeepsReport(t *testing.T) {
	repo := newMemProfileRepo()
	repo.putErr = errors.New("disk full")
	svc := newTestService(repo, 8)

	paper, err := svc.BuildTest(questionbank.SubjectOS)
	if err != nil {
		t.Fatalf("BuildTest: %v", err)
	}
	answers := map[string]int{paper.Objective[0].ID: paper.Objective[0].CorrectOption}

	outcome, err := svc.Submit(context.Background(), "u1", questionbank.SubjectOS, progress.ModeTest,
		paper.Objective, paper.FreeText, answers, nil)
	if err == nil {
		t.Fatal("expected persistence error")
	}
	if outcome == nil {
		t.Fatal("expected report despite persistence failure")
	}
	if outcome.Report.TotalQuestions != len(paper.Objective)+len(paper.FreeText) {
		t.Errorf("TotalQuestions = %d", outcome.Report.TotalQuestions)
	}
	if outcome.Result != nil {
		t.Error("expected nil Result after failed Record")
	}
}
