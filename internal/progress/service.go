package progress

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/studiq/internal/questionbank"
	"github.com/abhisek/studiq/internal/store"
)

// Service is the sole mutation path into learner profiles. Writes for
// the same user are serialized; reads go straight to the repo.
type Service struct {
	repo   store.ProfileRepo
	events store.EventRepo // optional, nil disables session events

	clock func() time.Time

	mu    sync.Mutex
	users map[string]*sync.Mutex
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the timestamp source. Tests use this.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) { s.clock = clock }
}

// NewService builds a Service over the given repos. events may be nil.
func NewService(repo store.ProfileRepo, events store.EventRepo, opts ...Option) *Service {
	s := &Service{
		repo:   repo,
		events: events,
		clock:  time.Now,
		users:  make(map[string]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	mu, ok := s.users[userID]
	if !ok {
		mu = &sync.Mutex{}
		s.users[userID] = mu
	}
	return mu
}

// Profile loads the full profile for userID. A user with no stored
// data gets an empty profile, not an error.
func (s *Service) Profile(ctx context.Context, userID string) (*UserProfile, error) {
	data, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading profile for %s: %w", userID, err)
	}
	if data == nil {
		return NewUserProfile(userID), nil
	}
	return profileFromData(data)
}

// Subject loads the per-subject ledger for userID. Missing users or
// subjects yield an empty ledger.
func (s *Service) Subject(ctx context.Context, userID string, subject questionbank.Subject) (*SubjectProfile, error) {
	p, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sp := p.Subject(subject); sp != nil {
		return sp, nil
	}
	return NewSubjectProfile(), nil
}

// Reset deletes all recorded data for userID by storing an empty
// profile in its place.
func (s *Service) Reset(ctx context.Context, userID string) error {
	mu := s.userLock(userID)
	mu.Lock()
	defer mu.Unlock()
	if err := s.repo.Put(ctx, profileToData(NewUserProfile(userID))); err != nil {
		return fmt.Errorf("resetting profile for %s: %w", userID, err)
	}
	return nil
}

// RecordResult is what a completed session contributes to the ledger.
type RecordResult struct {
	SessionID  string
	WeakTopics []string // snapshot taken after this session's stats were applied
	Profile    *UserProfile
}

// Record applies one finished session to the user's ledger and
// persists it as a single write. Counters advance by mode: tests bump
// TestsCompleted, practice bumps PracticeSessionsCompleted, review
// touches neither. Topic stats accumulate for every answered question;
// wrong answers are prepended to the topic's RecentWrongIDs, capped at
// twenty. The history entry carries a fresh weak-topic snapshot
// computed after the update.
func (s *Service) Record(ctx context.Context, userID string, subject questionbank.Subject, mode Mode, correct, wrong []QuestionRef) (*RecordResult, error) {
	if !ValidMode(mode) {
		return nil, fmt.Errorf("unknown session mode %q", mode)
	}
	if !questionbank.ValidSubject(subject) {
		return nil, fmt.Errorf("unknown subject %q", subject)
	}

	mu := s.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	p, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	sp := p.ensureSubject(subject)

	switch mode {
	case ModeTest:
		sp.TestsCompleted++
	case ModePractice:
		sp.PracticeSessionsCompleted++
	}

	now := s.clock()
	for _, ref := range correct {
		ts := sp.ensureTopic(ref.TopicKey)
		ts.TotalAttempted++
		ts.TotalCorrect++
		ts.LastAttemptedAt = now
	}
	for _, ref := range wrong {
		ts := sp.ensureTopic(ref.TopicKey)
		ts.TotalAttempted++
		ts.LastAttemptedAt = now
		ts.RecentWrongIDs = prependCapped(ts.RecentWrongIDs, ref.ID, recentWrongCap)
	}

	weak := WeakTopics(sp, DefaultWeakThreshold)
	entry := SessionEntry{
		SessionID:      uuid.NewString(),
		Date:           now,
		Score:          len(correct),
		TotalQuestions: len(correct) + len(wrong),
		WeakTopics:     weak,
		Mode:           mode,
	}
	sp.History = append(sp.History, entry)

	if err := s.repo.Put(ctx, profileToData(p)); err != nil {
		return nil, fmt.Errorf("saving profile for %s: %w", userID, err)
	}

	if s.events != nil {
		ev := store.SessionEventData{
			SessionID:      entry.SessionID,
			UserID:         userID,
			Subject:        string(subject),
			Mode:           string(mode),
			Score:          entry.Score,
			TotalQuestions: entry.TotalQuestions,
			WeakTopics:     weak,
		}
		if err := s.events.AppendSession(ctx, ev); err != nil {
			// The profile write already landed; a lost trace event is
			// not worth failing the session over.
			fmt.Fprintf(os.Stderr, "warning: session event not recorded: %v\n", err)
		}
	}

	return &RecordResult{SessionID: entry.SessionID, WeakTopics: weak, Profile: p}, nil
}

func (sp *SubjectProfile) ensureTopic(topicKey string) *TopicStats {
	if sp.TopicStats == nil {
		sp.TopicStats = make(map[string]*TopicStats)
	}
	if ts, ok := sp.TopicStats[topicKey]; ok {
		return ts
	}
	ts := &TopicStats{TopicKey: topicKey}
	sp.TopicStats[topicKey] = ts
	return ts
}

func prependCapped(ids []string, id string, limit int) []string {
	out := make([]string, 0, len(ids)+1)
	out = append(out, id)
	out = append(out, ids...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
