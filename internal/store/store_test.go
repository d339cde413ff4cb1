package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProfileGetMissingReturnsNil(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()

	data, err := repo.Get(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if data != nil {
		t.Errorf("Get for unknown user = %+v, want nil", data)
	}
}

func TestProfilePutGetRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	attempted := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	in := &ProfileData{
		UserID: "learner-1",
		Subjects: map[string]*SubjectProfileData{
			"os": {
				TestsCompleted:            2,
				PracticeSessionsCompleted: 1,
				TopicStats: map[string]*TopicStatsData{
					"deadlocks": {
						TopicKey:        "deadlocks",
						TotalAttempted:  5,
						TotalCorrect:    2,
						RecentWrongIDs:  []string{"os-obj-14", "os-obj-13"},
						LastAttemptedAt: attempted,
					},
				},
				History: []SessionEntryData{
					{
						SessionID:      "sess-1",
						Date:           attempted,
						Score:          12,
						TotalQuestions: 24,
						WeakTopics:     []string{"deadlocks"},
						Mode:           "test",
					},
				},
			},
		},
	}

	if err := repo.Put(ctx, in); err != nil {
		t.Fatalf("Put: %v", err)
	}

	out, err := repo.Get(ctx, "learner-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if out == nil {
		t.Fatal("Get returned nil after Put")
	}

	sp := out.Subjects["os"]
	if sp == nil {
		t.Fatal("subject os missing after round trip")
	}
	if sp.TestsCompleted != 2 || sp.PracticeSessionsCompleted != 1 {
		t.Errorf("counters = %d/%d, want 2/1", sp.TestsCompleted, sp.PracticeSessionsCompleted)
	}
	ts := sp.TopicStats["deadlocks"]
	if ts == nil {
		t.Fatal("topic stats missing after round trip")
	}
	if ts.TotalAttempted != 5 || ts.TotalCorrect != 2 {
		t.Errorf("topic stats = %d/%d, want 5/2", ts.TotalCorrect, ts.TotalAttempted)
	}
	if len(ts.RecentWrongIDs) != 2 || ts.RecentWrongIDs[0] != "os-obj-14" {
		t.Errorf("RecentWrongIDs = %v", ts.RecentWrongIDs)
	}
	if len(sp.History) != 1 || sp.History[0].Mode != "test" {
		t.Errorf("history = %+v", sp.History)
	}
	if !sp.History[0].Date.Equal(attempted) {
		t.Errorf("history date = %v, want %v", sp.History[0].Date, attempted)
	}
}

func TestProfilePutOverwrites(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	first := &ProfileData{
		UserID: "learner-2",
		Subjects: map[string]*SubjectProfileData{
			"cn": {TestsCompleted: 1},
		},
	}
	if err := repo.Put(ctx, first); err != nil {
		t.Fatalf("first Put: %v", err)
	}

	second := &ProfileData{
		UserID: "learner-2",
		Subjects: map[string]*SubjectProfileData{
			"cn": {TestsCompleted: 2},
		},
	}
	if err := repo.Put(ctx, second); err != nil {
		t.Fatalf("second Put: %v", err)
	}

	out, err := repo.Get(ctx, "learner-2")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got := out.Subjects["cn"].TestsCompleted; got != 2 {
		t.Errorf("TestsCompleted = %d, want 2", got)
	}
}

func TestAppendSessionEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []SessionEventData{
		{SessionID: "a", UserID: "u1", Subject: "os", Mode: "test", Score: 20, TotalQuestions: 28, WeakTopics: []string{"deadlocks"}},
		{SessionID: "b", UserID: "u1", Subject: "os", Mode: "review", Score: 8, TotalQuestions: 10},
	}
	for _, e := range events {
		if err := repo.AppendSession(ctx, e); err != nil {
			t.Fatalf("AppendSession: %v", err)
		}
	}

	all, err := s.Client().SessionEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query session events: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("stored %d events, want 2", len(all))
	}
	if all[0].Sequence == all[1].Sequence {
		t.Error("events share a sequence number")
	}
}

func TestAppendExplainEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendExplain(ctx, ExplainEventData{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "guidance:os",
		LatencyMs:    12,
		Success:      true,
		InputTokens:  100,
		OutputTokens: 50,
	})
	if err != nil {
		t.Fatalf("AppendExplain: %v", err)
	}

	n, err := s.Client().ExplainEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count explain events: %v", err)
	}
	if n != 1 {
		t.Errorf("stored %d explain events, want 1", n)
	}
}
