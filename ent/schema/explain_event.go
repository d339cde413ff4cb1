package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExplainEvent records a single study-guidance generation request,
// whether it was served by a provider or fell back locally.
type ExplainEvent struct {
	ent.Schema
}

func (ExplainEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ExplainEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			NotEmpty().
			Comment("Provider name, e.g. anthropic, openai, gemini, mock"),
		field.String("model").
			Comment("Model that served the request"),
		field.String("purpose").
			Default("unknown").
			Comment("Caller-supplied label, e.g. guidance:os"),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int64("latency_ms").
			Default(0),
		field.Bool("success").
			Default(false),
		field.String("error_message").
			Optional(),
	}
}

func (ExplainEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider"),
		index.Fields("success"),
	}
}
