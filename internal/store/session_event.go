package store

import (
	"context"
	"fmt"

	"github.com/abhisek/studiq/ent"
)

// eventRepo implements EventRepo using the ent client and the shared
// sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendSession(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetUserID(data.UserID).
		SetSubject(data.Subject).
		SetMode(data.Mode).
		SetScore(data.Score).
		SetTotalQuestions(data.TotalQuestions)

	if len(data.WeakTopics) > 0 {
		builder = builder.SetWeakTopics(data.WeakTopics)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}
