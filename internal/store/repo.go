package store

import (
	"context"
	"time"
)

// ProfileData is the persisted shape of a learner's complete profile.
// It round-trips losslessly through the Profile JSON column, so the
// topic stats, counters, and history survive process restarts intact.
type ProfileData struct {
	UserID   string                         `json:"userId"`
	Subjects map[string]*SubjectProfileData `json:"subjects"`
}

// SubjectProfileData is the persisted per-subject ledger.
type SubjectProfileData struct {
	TestsCompleted            int                        `json:"testsCompleted"`
	PracticeSessionsCompleted int                        `json:"practiceSessionsCompleted"`
	TopicStats                map[string]*TopicStatsData `json:"topicStats"`
	History                   []SessionEntryData         `json:"history"`
}

// TopicStatsData is the persisted per-topic accuracy ledger.
type TopicStatsData struct {
	TopicKey        string    `json:"topicKey"`
	TotalAttempted  int       `json:"totalAttempted"`
	TotalCorrect    int       `json:"totalCorrect"`
	RecentWrongIDs  []string  `json:"recentWrongIds"`
	LastAttemptedAt time.Time `json:"lastAttemptedAt"`
}

// SessionEntryData is one persisted history entry.
type SessionEntryData struct {
	SessionID      string    `json:"sessionId"`
	Date           time.Time `json:"date"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"totalQuestions"`
	WeakTopics     []string  `json:"weakTopics"`
	Mode           string    `json:"mode"`
}

// ProfileRepo provides whole-profile read and write access.
type ProfileRepo interface {
	// Get returns the stored profile for userID, or nil if none exists.
	Get(ctx context.Context, userID string) (*ProfileData, error)

	// Put stores the profile, replacing any previous version.
	Put(ctx context.Context, data *ProfileData) error
}

// SessionEventData captures one completed session for the audit log.
type SessionEventData struct {
	SessionID      string
	UserID         string
	Subject        string
	Mode           string
	Score          int
	TotalQuestions int
	WeakTopics     []string
}

// ExplainEventData captures one study-guidance generation request.
type ExplainEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRepo provides append access to the event log.
type EventRepo interface {
	// AppendSession records a completed session.
	AppendSession(ctx context.Context, data SessionEventData) error

	// AppendExplain records a guidance generation request.
	AppendExplain(ctx context.Context, data ExplainEventData) error
}

// ExplainEventRecord is a stored guidance event with its identity and time.
type ExplainEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	ExplainEventData
}

// SessionEventRecord is a stored session event with its identity and time.
type SessionEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	SessionEventData
}

// ModelUsageData aggregates guidance token usage per model.
type ModelUsageData struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventQueryRepo provides read access to the event log for inspection
// commands. Append-only consumers should depend on EventRepo instead.
type EventQueryRepo interface {
	// ListExplainEvents returns the most recent guidance events, newest first.
	ListExplainEvents(ctx context.Context, limit int) ([]ExplainEventRecord, error)

	// ListSessionEvents returns the most recent session events, newest
	// first. userID filters when non-empty.
	ListSessionEvents(ctx context.Context, userID string, limit int) ([]SessionEventRecord, error)

	// ExplainUsageByModel aggregates guidance token usage per model.
	ExplainUsageByModel(ctx context.Context) ([]ModelUsageData, error)
}
