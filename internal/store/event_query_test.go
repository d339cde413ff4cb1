package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListSessionEventsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i := range 3 {
		err := s.EventRepo().AppendSession(ctx, SessionEventData{
			SessionID:      fmt.Sprintf("sess-%d", i),
			UserID:         "u1",
			Subject:        "os",
			Mode:           "test",
			Score:          i,
			TotalQuestions: 10,
		})
		require.NoError(t, err)
	}

	events, err := s.EventQueryRepo().ListSessionEvents(ctx, "u1", 0)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "sess-2", events[0].SessionID)
	assert.Equal(t, "sess-0", events[2].SessionID)
	assert.Greater(t, events[0].Sequence, events[1].Sequence)
}

func TestListSessionEventsFiltersUserAndLimits(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, user := range []string{"u1", "u2", "u1", "u1"} {
		err := s.EventRepo().AppendSession(ctx, SessionEventData{
			SessionID: "s-" + user, UserID: user, Subject: "cn", Mode: "practice",
		})
		require.NoError(t, err)
	}

	events, err := s.EventQueryRepo().ListSessionEvents(ctx, "u1", 2)
	require.NoError(t, err)
	require.Len(t, events, 2)
	for _, e := range events {
		assert.Equal(t, "u1", e.UserID)
	}

	all, err := s.EventQueryRepo().ListSessionEvents(ctx, "", 0)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestListExplainEvents(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.EventRepo().AppendExplain(ctx, ExplainEventData{
		Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "study-explanation",
		InputTokens: 200, OutputTokens: 80, LatencyMs: 950, Success: true,
	}))
	require.NoError(t, s.EventRepo().AppendExplain(ctx, ExplainEventData{
		Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "study-explanation",
		Success: false, ErrorMessage: "rate limited",
	}))

	events, err := s.EventQueryRepo().ListExplainEvents(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Newest first: the failed call comes before the successful one.
	assert.False(t, events[0].Success)
	assert.Equal(t, "rate limited", events[0].ErrorMessage)
	assert.True(t, events[1].Success)
	assert.Equal(t, 200, events[1].InputTokens)
	assert.Equal(t, 80, events[1].OutputTokens)
}

func TestExplainUsageByModel(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	calls := []ExplainEventData{
		{Provider: "anthropic", Model: "claude-haiku-4-5", InputTokens: 100, OutputTokens: 40, Success: true},
		{Provider: "anthropic", Model: "claude-haiku-4-5", InputTokens: 150, OutputTokens: 60, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", InputTokens: 90, OutputTokens: 30, Success: true},
	}
	for _, c := range calls {
		require.NoError(t, s.EventRepo().AppendExplain(ctx, c))
	}

	usage, err := s.EventQueryRepo().ExplainUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, usage, 2)

	byModel := map[string]ModelUsageData{}
	for _, u := range usage {
		byModel[u.Model] = u
	}
	haiku := byModel["claude-haiku-4-5"]
	assert.Equal(t, 2, haiku.Calls)
	assert.Equal(t, 250, haiku.InputTokens)
	assert.Equal(t, 100, haiku.OutputTokens)

	mini := byModel["gpt-4o-mini"]
	assert.Equal(t, 1, mini.Calls)
	assert.Equal(t, 90, mini.InputTokens)
}
