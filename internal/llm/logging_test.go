package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/studiq/internal/store"
)

type captureEventRepo struct {
	explains []store.ExplainEventData
	err      error
}

func (r *captureEventRepo) AppendSession(_ context.Context, _ store.SessionEventData) error {
	return nil
}

func (r *captureEventRepo) AppendExplain(_ context.Context, data store.ExplainEventData) error {
	if r.err != nil {
		return r.err
	}
	r.explains = append(r.explains, data)
	return nil
}

func TestLogging_RecordsSuccess(t *testing.T) {
	repo := &captureEventRepo{}
	mock := NewMockProvider(
		MockResponse{Text: "ok", Usage: Usage{InputTokens: 12, OutputTokens: 34, TotalTokens: 46}},
	)
	p := WithLogging(mock, "anthropic", repo)

	ctx := WithPurpose(context.Background(), "study-explanation")
	if _, err := p.Complete(ctx, Request{Prompt: "hi"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.explains) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.explains))
	}
	ev := repo.explains[0]
	if ev.Provider != "anthropic" || ev.Purpose != "study-explanation" {
		t.Fatalf("event = %+v", ev)
	}
	if !ev.Success || ev.InputTokens != 12 || ev.OutputTokens != 34 {
		t.Fatalf("event = %+v", ev)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	repo := &captureEventRepo{}
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	p := WithLogging(mock, "openai", repo)

	if _, err := p.Complete(context.Background(), Request{Prompt: "hi"}); err == nil {
		t.Fatal("expected error")
	}

	if len(repo.explains) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.explains))
	}
	ev := repo.explains[0]
	if ev.Success {
		t.Fatal("expected Success=false")
	}
	if ev.ErrorMessage == "" {
		t.Fatal("expected error message on event")
	}
}

func TestLogging_RepoFailureDoesNotFailRequest(t *testing.T) {
	repo := &captureEventRepo{err: errors.New("table locked")}
	mock := NewMockProvider(MockResponse{Text: "ok"})
	p := WithLogging(mock, "gemini", repo)

	resp, err := p.Complete(context.Background(), Request{Prompt: "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "ok" {
		t.Fatalf("unexpected text: %q", resp.Text)
	}
}
