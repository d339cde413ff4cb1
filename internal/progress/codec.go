package progress

import (
	"fmt"

	"github.com/abhisek/studiq/internal/questionbank"
	"github.com/abhisek/studiq/internal/store"
)

// profileFromData converts the persisted shape into domain types.
// Subjects no longer present in the question bank are rejected rather
// than silently dropped; the database is the source of truth here.
func profileFromData(data *store.ProfileData) (*UserProfile, error) {
	p := NewUserProfile(data.UserID)
	for name, spd := range data.Subjects {
		subject := questionbank.Subject(name)
		if !questionbank.ValidSubject(subject) {
			return nil, fmt.Errorf("stored profile for %s references unknown subject %q", data.UserID, name)
		}
		sp := NewSubjectProfile()
		sp.TestsCompleted = spd.TestsCompleted
		sp.PracticeSessionsCompleted = spd.PracticeSessionsCompleted
		for key, tsd := range spd.TopicStats {
			sp.TopicStats[key] = &TopicStats{
				TopicKey:        tsd.TopicKey,
				TotalAttempted:  tsd.TotalAttempted,
				TotalCorrect:    tsd.TotalCorrect,
				RecentWrongIDs:  append([]string(nil), tsd.RecentWrongIDs...),
				LastAttemptedAt: tsd.LastAttemptedAt,
			}
		}
		for _, ed := range spd.History {
			sp.History = append(sp.History, SessionEntry{
				SessionID:      ed.SessionID,
				Date:           ed.Date,
				Score:          ed.Score,
				TotalQuestions: ed.TotalQuestions,
				WeakTopics:     append([]string(nil), ed.WeakTopics...),
				Mode:           Mode(ed.Mode),
			})
		}
		p.Subjects[subject] = sp
	}
	return p, nil
}

// profileToData converts domain types into the persisted shape.
func profileToData(p *UserProfile) *store.ProfileData {
	data := &store.ProfileData{
		UserID:   p.UserID,
		Subjects: make(map[string]*store.SubjectProfileData, len(p.Subjects)),
	}
	for subject, sp := range p.Subjects {
		spd := &store.SubjectProfileData{
			TestsCompleted:            sp.TestsCompleted,
			PracticeSessionsCompleted: sp.PracticeSessionsCompleted,
			TopicStats:                make(map[string]*store.TopicStatsData, len(sp.TopicStats)),
		}
		for key, ts := range sp.TopicStats {
			spd.TopicStats[key] = &store.TopicStatsData{
				TopicKey:        ts.TopicKey,
				TotalAttempted:  ts.TotalAttempted,
				TotalCorrect:    ts.TotalCorrect,
				RecentWrongIDs:  append([]string(nil), ts.RecentWrongIDs...),
				LastAttemptedAt: ts.LastAttemptedAt,
			}
		}
		for _, e := range sp.History {
			spd.History = append(spd.History, store.SessionEntryData{
				SessionID:      e.SessionID,
				Date:           e.Date,
				Score:          e.Score,
				TotalQuestions: e.TotalQuestions,
				WeakTopics:     append([]string(nil), e.WeakTopics...),
				Mode:           string(e.Mode),
			})
		}
		data.Subjects[string(subject)] = spd
	}
	return data
}
