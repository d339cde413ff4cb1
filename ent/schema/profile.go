package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Profile stores one learner's complete performance ledger as a JSON
// document, one row per user. Reads and writes are whole-profile, which
// keeps the topic stats, counters, and history in a single consistent
// unit.
type Profile struct {
	ent.Schema
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			Unique().
			Immutable().
			NotEmpty().
			Comment("Opaque learner identifier supplied by the caller"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last write time"),
		field.JSON("data", map[string]any{}).
			Comment("Full per-subject profile state as JSON"),
	}
}

func (Profile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("updated_at"),
	}
}
