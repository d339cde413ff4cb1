package store

import (
	"context"
	"fmt"

	"github.com/abhisek/studiq/ent"
	"github.com/abhisek/studiq/ent/explainevent"
	"github.com/abhisek/studiq/ent/sessionevent"
)

func (r *eventRepo) ListExplainEvents(ctx context.Context, limit int) ([]ExplainEventRecord, error) {
	q := r.client.ExplainEvent.Query().
		Order(ent.Desc(explainevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list explain events: %w", err)
	}

	records := make([]ExplainEventRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, ExplainEventRecord{
			ID:        row.ID,
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			ExplainEventData: ExplainEventData{
				Provider:     row.Provider,
				Model:        row.Model,
				Purpose:      row.Purpose,
				InputTokens:  row.InputTokens,
				OutputTokens: row.OutputTokens,
				LatencyMs:    row.LatencyMs,
				Success:      row.Success,
				ErrorMessage: row.ErrorMessage,
			},
		})
	}
	return records, nil
}

func (r *eventRepo) ListSessionEvents(ctx context.Context, userID string, limit int) ([]SessionEventRecord, error) {
	q := r.client.SessionEvent.Query().
		Order(ent.Desc(sessionevent.FieldSequence))
	if userID != "" {
		q = q.Where(sessionevent.UserID(userID))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list session events: %w", err)
	}

	records := make([]SessionEventRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, SessionEventRecord{
			ID:        row.ID,
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			SessionEventData: SessionEventData{
				SessionID:      row.SessionID,
				UserID:         row.UserID,
				Subject:        row.Subject,
				Mode:           row.Mode,
				Score:          row.Score,
				TotalQuestions: row.TotalQuestions,
				WeakTopics:     row.WeakTopics,
			},
		})
	}
	return records, nil
}

func (r *eventRepo) ExplainUsageByModel(ctx context.Context) ([]ModelUsageData, error) {
	var rows []struct {
		Model        string `json:"model"`
		Calls        int    `json:"count"`
		InputTokens  int    `json:"sum_input_tokens"`
		OutputTokens int    `json:"sum_output_tokens"`
	}
	err := r.client.ExplainEvent.Query().
		GroupBy(explainevent.FieldModel).
		Aggregate(
			ent.Count(),
			ent.As(ent.Sum(explainevent.FieldInputTokens), "sum_input_tokens"),
			ent.As(ent.Sum(explainevent.FieldOutputTokens), "sum_output_tokens"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate explain usage: %w", err)
	}

	usage := make([]ModelUsageData, 0, len(rows))
	for _, row := range rows {
		usage = append(usage, ModelUsageData{
			Model:        row.Model,
			Calls:        row.Calls,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
		})
	}
	return usage, nil
}
