package progress

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/abhisek/studiq/internal/questionbank"
	"github.com/abhisek/studiq/internal/store"
)

// fakeProfileRepo keeps profiles in memory, round-tripping through the
// persisted shape like the real repo does.
type fakeProfileRepo struct {
	profiles map[string]*store.ProfileData
	putErr   error
	puts     int
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*store.ProfileData)}
}

func (r *fakeProfileRepo) Get(_ context.Context, userID string) (*store.ProfileData, error) {
	return r.profiles[userID], nil
}

func (r *fakeProfileRepo) Put(_ context.Context, data *store.ProfileData) error {
	if r.putErr != nil {
		return r.putErr
	}
	r.puts++
	r.profiles[data.UserID] = data
	return nil
}

type fakeEventRepo struct {
	sessions []store.SessionEventData
	explains []store.ExplainEventData
	err      error
}

func (r *fakeEventRepo) AppendSession(_ context.Context, data store.SessionEventData) error {
	if r.err != nil {
		return r.err
	}
	r.sessions = append(r.sessions, data)
	return nil
}

func (r *fakeEventRepo) AppendExplain(_ context.Context, data store.ExplainEventData) error {
	if r.err != nil {
		return r.err
	}
	r.explains = append(r.explains, data)
	return nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func refs(topicKey string, n int) []QuestionRef {
	out := make([]QuestionRef, n)
	for i := range out {
		out[i] = QuestionRef{ID: fmt.Sprintf("%s-q%d", topicKey, i), TopicKey: topicKey}
	}
	return out
}

func TestProfileMissingUserIsEmpty(t *testing.T) {
	svc := NewService(newFakeProfileRepo(), nil)
	p, err := svc.Profile(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if p.UserID != "nobody" || len(p.Subjects) != 0 {
		t.Fatalf("expected empty profile, got %+v", p)
	}
}

func TestRecordCountersByMode(t *testing.T) {
	cases := []struct {
		mode         Mode
		wantTests    int
		wantPractice int
	}{
		{ModeTest, 1, 0},
		{ModePractice, 0, 1},
		{ModeReview, 0, 0},
	}
	for _, tc := range cases {
		t.Run(string(tc.mode), func(t *testing.T) {
			repo := newFakeProfileRepo()
			svc := NewService(repo, nil)
			res, err := svc.Record(context.Background(), "u1", questionbank.SubjectOS, tc.mode,
				refs("threads", 2), refs("deadlocks", 1))
			if err != nil {
				t.Fatalf("Record: %v", err)
			}
			sp := res.Profile.Subject(questionbank.SubjectOS)
			if sp.TestsCompleted != tc.wantTests {
				t.Errorf("TestsCompleted = %d, want %d", sp.TestsCompleted, tc.wantTests)
			}
			if sp.PracticeSessionsCompleted != tc.wantPractice {
				t.Errorf("PracticeSessionsCompleted = %d, want %d", sp.PracticeSessionsCompleted, tc.wantPractice)
			}
			// Topic stats accumulate in every mode.
			if sp.TopicStats["threads"].TotalCorrect != 2 {
				t.Errorf("threads correct = %d, want 2", sp.TopicStats["threads"].TotalCorrect)
			}
			if sp.TopicStats["deadlocks"].TotalAttempted != 1 {
				t.Errorf("deadlocks attempted = %d, want 1", sp.TopicStats["deadlocks"].TotalAttempted)
			}
		})
	}
}

func TestRecordAccumulatesAcrossSessions(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewService(repo, nil)
	ctx := context.Background()

	// Session 1: deadlocks 1/3. Below the attempt gate after this one?
	// No: three attempts, accuracy 0.33, so already weak.
	res, err := svc.Record(ctx, "u1", questionbank.SubjectOS, ModeTest,
		refs("deadlocks", 1), refs("deadlocks", 2))
	if err != nil {
		t.Fatalf("Record 1: %v", err)
	}
	if got := res.WeakTopics; len(got) != 1 || got[0] != "deadlocks" {
		t.Fatalf("after session 1 weak = %v, want [deadlocks]", got)
	}

	// Session 2: +1 correct, +1 wrong. Cumulative 2/5, still weak.
	res, err = svc.Record(ctx, "u1", questionbank.SubjectOS, ModeTest,
		refs("deadlocks", 1), refs("deadlocks", 1))
	if err != nil {
		t.Fatalf("Record 2: %v", err)
	}
	sp := res.Profile.Subject(questionbank.SubjectOS)
	ts := sp.TopicStats["deadlocks"]
	if ts.TotalAttempted != 5 || ts.TotalCorrect != 2 {
		t.Fatalf("cumulative stats = %d/%d, want 2/5", ts.TotalCorrect, ts.TotalAttempted)
	}

	// Session 3: two more correct. Cumulative 4/7 >= 0.57... still
	// below 0.6 so weak; one more correct clears it.
	res, err = svc.Record(ctx, "u1", questionbank.SubjectOS, ModeTest,
		refs("deadlocks", 2), nil)
	if err != nil {
		t.Fatalf("Record 3: %v", err)
	}
	if got := res.WeakTopics; len(got) != 1 {
		t.Fatalf("after session 3 weak = %v, want still weak", got)
	}
	res, err = svc.Record(ctx, "u1", questionbank.SubjectOS, ModeTest,
		refs("deadlocks", 1), nil)
	if err != nil {
		t.Fatalf("Record 4: %v", err)
	}
	if got := res.WeakTopics; len(got) != 0 {
		t.Fatalf("after session 4 weak = %v, want none (5/8 = 0.625)", got)
	}
}

func TestRecordRecentWrongIDs(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewService(repo, nil)
	ctx := context.Background()

	wrong := []QuestionRef{
		{ID: "os-a", TopicKey: "threads"},
		{ID: "os-b", TopicKey: "threads"},
	}
	if _, err := svc.Record(ctx, "u1", questionbank.SubjectOS, ModePractice, nil, wrong); err != nil {
		t.Fatalf("Record: %v", err)
	}
	res, err := svc.Record(ctx, "u1", questionbank.SubjectOS, ModePractice, nil,
		[]QuestionRef{{ID: "os-c", TopicKey: "threads"}})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	ts := res.Profile.Subject(questionbank.SubjectOS).TopicStats["threads"]
	// Newest first.
	want := []string{"os-c", "os-a", "os-b"}
	if len(ts.RecentWrongIDs) != len(want) {
		t.Fatalf("RecentWrongIDs = %v, want %v", ts.RecentWrongIDs, want)
	}
	for i := range want {
		if ts.RecentWrongIDs[i] != want[i] {
			t.Fatalf("RecentWrongIDs = %v, want %v", ts.RecentWrongIDs, want)
		}
	}
}

func TestRecordRecentWrongIDsCapped(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewService(repo, nil)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		wrong := []QuestionRef{{ID: fmt.Sprintf("os-%02d", i), TopicKey: "threads"}}
		if _, err := svc.Record(ctx, "u1", questionbank.SubjectOS, ModePractice, nil, wrong); err != nil {
			t.Fatalf("Record %d: %v", i, err)
		}
	}
	p, err := svc.Profile(ctx, "u1")
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	ts := p.Subject(questionbank.SubjectOS).TopicStats["threads"]
	if len(ts.RecentWrongIDs) != recentWrongCap {
		t.Fatalf("len(RecentWrongIDs) = %d, want %d", len(ts.RecentWrongIDs), recentWrongCap)
	}
	if ts.RecentWrongIDs[0] != "os-24" {
		t.Errorf("newest id = %s, want os-24", ts.RecentWrongIDs[0])
	}
	if ts.RecentWrongIDs[recentWrongCap-1] != "os-05" {
		t.Errorf("oldest surviving id = %s, want os-05", ts.RecentWrongIDs[recentWrongCap-1])
	}
}

func TestRecordHistoryEntry(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	repo := newFakeProfileRepo()
	events := &fakeEventRepo{}
	svc := NewService(repo, events, WithClock(fixedClock(now)))

	res, err := svc.Record(context.Background(), "u1", questionbank.SubjectCN, ModeTest,
		refs("routing", 1), refs("tcp", 3))
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	sp := res.Profile.Subject(questionbank.SubjectCN)
	if len(sp.History) != 1 {
		t.Fatalf("len(History) = %d, want 1", len(sp.History))
	}
	e := sp.History[0]
	if e.SessionID == "" || e.SessionID != res.SessionID {
		t.Errorf("SessionID = %q, want %q", e.SessionID, res.SessionID)
	}
	if !e.Date.Equal(now) {
		t.Errorf("Date = %v, want %v", e.Date, now)
	}
	if e.Score != 1 || e.TotalQuestions != 4 || e.Mode != ModeTest {
		t.Errorf("entry = %+v", e)
	}
	// tcp is 0/3 after this session, so the snapshot includes it.
	if len(e.WeakTopics) != 1 || e.WeakTopics[0] != "tcp" {
		t.Errorf("WeakTopics snapshot = %v, want [tcp]", e.WeakTopics)
	}

	if len(events.sessions) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(events.sessions))
	}
	ev := events.sessions[0]
	if ev.SessionID != res.SessionID || ev.Subject != "cn" || ev.Mode != "test" {
		t.Errorf("event = %+v", ev)
	}
}

func TestRecordSingleWrite(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewService(repo, nil)
	if _, err := svc.Record(context.Background(), "u1", questionbank.SubjectOS, ModeTest,
		refs("threads", 3), refs("deadlocks", 2)); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if repo.puts != 1 {
		t.Fatalf("repo.Put called %d times, want 1", repo.puts)
	}
}

func TestRecordPutFailure(t *testing.T) {
	repo := newFakeProfileRepo()
	repo.putErr = errors.New("disk full")
	svc := NewService(repo, nil)
	if _, err := svc.Record(context.Background(), "u1", questionbank.SubjectOS, ModeTest,
		refs("threads", 1), nil); err == nil {
		t.Fatal("expected error from failing Put")
	}
}

func TestRecordEventFailureDoesNotFailSession(t *testing.T) {
	repo := newFakeProfileRepo()
	events := &fakeEventRepo{err: errors.New("log table locked")}
	svc := NewService(repo, events)
	res, err := svc.Record(context.Background(), "u1", questionbank.SubjectOS, ModeTest,
		refs("threads", 1), nil)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if res.SessionID == "" {
		t.Fatal("expected session id despite event failure")
	}
}

func TestRecordRejectsUnknownModeAndSubject(t *testing.T) {
	svc := NewService(newFakeProfileRepo(), nil)
	if _, err := svc.Record(context.Background(), "u1", questionbank.SubjectOS, Mode("exam"), nil, nil); err == nil {
		t.Error("expected error for unknown mode")
	}
	if _, err := svc.Record(context.Background(), "u1", questionbank.Subject("chemistry"), ModeTest, nil, nil); err == nil {
		t.Error("expected error for unknown subject")
	}
}

func TestRecordRoundTripsThroughStore(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewService(repo, nil)
	ctx := context.Background()

	if _, err := svc.Record(ctx, "u1", questionbank.SubjectLA, ModeTest,
		refs("eigenvalues", 2), refs("rank", 1)); err != nil {
		t.Fatalf("Record: %v", err)
	}

	// A fresh service over the same repo must see identical state.
	svc2 := NewService(repo, nil)
	sp, err := svc2.Subject(ctx, "u1", questionbank.SubjectLA)
	if err != nil {
		t.Fatalf("Subject: %v", err)
	}
	if sp.TestsCompleted != 1 {
		t.Errorf("TestsCompleted = %d, want 1", sp.TestsCompleted)
	}
	if ts := sp.TopicStats["eigenvalues"]; ts == nil || ts.TotalCorrect != 2 {
		t.Errorf("eigenvalues stats = %+v", sp.TopicStats["eigenvalues"])
	}
	if len(sp.History) != 1 {
		t.Errorf("len(History) = %d, want 1", len(sp.History))
	}
}

func TestReset(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewService(repo, nil)
	ctx := context.Background()

	if _, err := svc.Record(ctx, "u1", questionbank.SubjectOS, ModeTest,
		refs("threads", 3), nil); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := svc.Reset(ctx, "u1"); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	p, err := svc.Profile(ctx, "u1")
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if len(p.Subjects) != 0 {
		t.Fatalf("expected empty profile after reset, got %+v", p.Subjects)
	}
}
