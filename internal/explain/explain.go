// Package explain turns a learner's weak-topic list into a short
// study explanation. A configured language model writes the text; when
// no provider is available or the call fails, a deterministic fallback
// keeps the feature usable offline.
package explain

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/studiq/internal/llm"
	"github.com/abhisek/studiq/internal/progress"
	"github.com/abhisek/studiq/internal/questionbank"
)

// Purpose labels explain requests in the event log.
const Purpose = "study-explanation"

const systemPrompt = "You are a study coach for undergraduate computer science exams. " +
	"Be concrete and encouraging, and keep answers under 400 words."

const maxTokens = 1024

// Guidance is a generated study explanation.
type Guidance struct {
	Text string

	// FromModel is false when the deterministic fallback produced the
	// text (no provider configured, or the provider call failed).
	FromModel bool

	// Model and Usage are set only when FromModel is true.
	Model string
	Usage llm.Usage
}

// Service generates study explanations.
type Service struct {
	provider llm.Provider // nil means fallback-only
}

// NewService builds a Service. provider may be nil, in which case
// every explanation comes from the fallback.
func NewService(provider llm.Provider) *Service {
	return &Service{provider: provider}
}

// Explain produces a study explanation for the subject's weak topics.
// Provider failures degrade to the fallback text rather than erroring;
// the learner always gets something to act on.
func (s *Service) Explain(ctx context.Context, subject questionbank.Subject, weakTopics []string) *Guidance {
	if s.provider == nil {
		return &Guidance{Text: Fallback(subject, weakTopics)}
	}

	ctx = llm.WithPurpose(ctx, Purpose)
	resp, err := s.provider.Complete(ctx, llm.Request{
		System:    systemPrompt,
		Prompt:    buildPrompt(subject, weakTopics),
		MaxTokens: maxTokens,
	})
	if err != nil || resp.Text == "" {
		return &Guidance{Text: Fallback(subject, weakTopics)}
	}

	return &Guidance{
		Text:      resp.Text,
		FromModel: true,
		Model:     resp.Model,
		Usage:     resp.Usage,
	}
}

func buildPrompt(subject questionbank.Subject, weakTopics []string) string {
	topics := topicNames(weakTopics)
	if topics == "" {
		topics = "general revision"
	}
	return fmt.Sprintf(
		"Create a concise study explanation for a student in %s. Weak topics: %s. "+
			"Include: (1) plain-language concept refresh, (2) common mistakes, (3) a short 5-step revision plan.",
		questionbank.SubjectDisplayName(subject), topics)
}

// Fallback is the deterministic explanation used when no model is
// reachable.
func Fallback(subject questionbank.Subject, weakTopics []string) string {
	name := questionbank.SubjectDisplayName(subject)
	if len(weakTopics) == 0 {
		return fmt.Sprintf("Your %s attempt shows no clear weak areas.", name)
	}
	return fmt.Sprintf(
		"Focus revision on %s in %s. For each topic, revise definitions, solve 3-5 examples, and summarize trade-offs in one short note.",
		topicNames(weakTopics), name)
}

func topicNames(keys []string) string {
	if len(keys) == 0 {
		return ""
	}
	names := make([]string, len(keys))
	for i, key := range keys {
		names[i] = progress.FormatTopicName(key)
	}
	return strings.Join(names, ", ")
}
