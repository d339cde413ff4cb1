package explain

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/studiq/internal/llm"
	"github.com/abhisek/studiq/internal/questionbank"
)

func TestExplain_UsesModelText(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "Revise paging and TLBs first.", Usage: llm.Usage{InputTokens: 100, OutputTokens: 50}},
	)
	svc := NewService(mock)

	g := svc.Explain(context.Background(), questionbank.SubjectOS, []string{"virtual-memory"})
	if !g.FromModel {
		t.Fatal("expected model-backed guidance")
	}
	if g.Text != "Revise paging and TLBs first." {
		t.Fatalf("unexpected text: %q", g.Text)
	}
	if g.Usage.InputTokens != 100 {
		t.Fatalf("usage = %+v", g.Usage)
	}

	// The prompt names the subject and the weak topics.
	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}
	prompt := mock.Calls[0].Prompt
	if !strings.Contains(prompt, "Operating Systems") {
		t.Errorf("prompt missing subject name: %q", prompt)
	}
	if !strings.Contains(prompt, "Virtual Memory") {
		t.Errorf("prompt missing topic name: %q", prompt)
	}
}

func TestExplain_NoWeakTopicsPromptsGeneralRevision(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "ok"})
	svc := NewService(mock)

	svc.Explain(context.Background(), questionbank.SubjectCN, nil)
	if !strings.Contains(mock.Calls[0].Prompt, "general revision") {
		t.Fatalf("prompt = %q", mock.Calls[0].Prompt)
	}
}

func TestExplain_NilProviderFallsBack(t *testing.T) {
	svc := NewService(nil)
	g := svc.Explain(context.Background(), questionbank.SubjectOS, []string{"deadlocks", "cpu-scheduling"})
	if g.FromModel {
		t.Fatal("expected fallback guidance")
	}
	want := "Focus revision on Deadlocks, Cpu Scheduling in Operating Systems. For each topic, revise definitions, solve 3-5 examples, and summarize trade-offs in one short note."
	if g.Text != want {
		t.Fatalf("text = %q, want %q", g.Text, want)
	}
}

func TestExplain_ProviderErrorFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	svc := NewService(mock)

	g := svc.Explain(context.Background(), questionbank.SubjectLA, []string{"eigenvalues"})
	if g.FromModel {
		t.Fatal("expected fallback guidance after provider failure")
	}
	if !strings.Contains(g.Text, "Eigenvalues") {
		t.Fatalf("text = %q", g.Text)
	}
}

func TestFallback_NoWeakAreas(t *testing.T) {
	got := Fallback(questionbank.SubjectDAA, nil)
	want := "Your Design & Analysis of Algorithms attempt shows no clear weak areas."
	if got != want {
		t.Fatalf("Fallback = %q, want %q", got, want)
	}
}
