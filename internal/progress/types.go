// Package progress maintains the per-learner performance ledger: topic
// statistics, session history, and the analytics derived from them.
// All mutation goes through Service.Record; everything else is a pure
// read over the stored state.
package progress

import (
	"time"

	"github.com/abhisek/studiq/internal/questionbank"
)

// Mode identifies the kind of session being recorded.
type Mode string

const (
	ModeTest     Mode = "test"
	ModePractice Mode = "practice"
	ModeReview   Mode = "review"
)

// ValidMode reports whether m is a known session mode.
func ValidMode(m Mode) bool {
	return m == ModeTest || m == ModePractice || m == ModeReview
}

// recentWrongCap bounds RecentWrongIDs per topic.
const recentWrongCap = 20

// TopicStats tracks cumulative accuracy for one topic.
// TotalCorrect never exceeds TotalAttempted.
type TopicStats struct {
	TopicKey        string
	TotalAttempted  int
	TotalCorrect    int
	RecentWrongIDs  []string // most recent first, capped at recentWrongCap
	LastAttemptedAt time.Time
}

// Accuracy returns TotalCorrect/TotalAttempted, or 0 with no attempts.
func (ts *TopicStats) Accuracy() float64 {
	if ts.TotalAttempted == 0 {
		return 0
	}
	return float64(ts.TotalCorrect) / float64(ts.TotalAttempted)
}

// SessionEntry is one completed session in a subject's history.
// Entries are append-only and immutable once written.
type SessionEntry struct {
	SessionID      string
	Date           time.Time
	Score          int
	TotalQuestions int
	WeakTopics     []string // weak-topic snapshot taken after the session's stats were applied
	Mode           Mode
}

// SubjectProfile is a learner's ledger for one subject.
type SubjectProfile struct {
	TestsCompleted            int
	PracticeSessionsCompleted int
	TopicStats                map[string]*TopicStats
	History                   []SessionEntry
}

// NewSubjectProfile returns an empty per-subject ledger.
func NewSubjectProfile() *SubjectProfile {
	return &SubjectProfile{TopicStats: make(map[string]*TopicStats)}
}

// empty reports whether the profile holds no recorded data.
func (sp *SubjectProfile) empty() bool {
	return sp == nil ||
		(sp.TestsCompleted == 0 &&
			sp.PracticeSessionsCompleted == 0 &&
			len(sp.TopicStats) == 0 &&
			len(sp.History) == 0)
}

// UserProfile is the full ledger for one learner across subjects.
// Subject entries are created lazily on first write.
type UserProfile struct {
	UserID   string
	Subjects map[questionbank.Subject]*SubjectProfile
}

// NewUserProfile returns an empty profile for userID.
func NewUserProfile(userID string) *UserProfile {
	return &UserProfile{
		UserID:   userID,
		Subjects: make(map[questionbank.Subject]*SubjectProfile),
	}
}

// Subject returns the per-subject ledger, or nil if nothing has been
// recorded for that subject yet.
func (p *UserProfile) Subject(s questionbank.Subject) *SubjectProfile {
	return p.Subjects[s]
}

func (p *UserProfile) ensureSubject(s questionbank.Subject) *SubjectProfile {
	if sp, ok := p.Subjects[s]; ok {
		return sp
	}
	sp := NewSubjectProfile()
	p.Subjects[s] = sp
	return sp
}

// QuestionRef is the slice of a question the ledger needs: its id and
// canonical topic key.
type QuestionRef struct {
	ID       string
	TopicKey string
}
