package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records one completed test, practice, or review session.
// It is the durable audit trail behind the per-subject history kept in
// the profile document.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the recorded session"),
		field.String("user_id").
			NotEmpty().
			Comment("Opaque learner identifier"),
		field.String("subject").
			NotEmpty(),
		field.String("mode").
			NotEmpty().
			Comment("test, practice, or review"),
		field.Int("score").
			Default(0).
			Comment("Questions answered correctly"),
		field.Int("total_questions").
			Default(0).
			Comment("Questions attempted"),
		field.JSON("weak_topics", []string{}).
			Optional().
			Comment("Weak-topic keys at the time of recording"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "subject"),
		index.Fields("mode"),
	}
}
