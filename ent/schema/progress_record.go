package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// ProgressRecord holds one profile's full learning state as a single JSON
// blob. Saves replace the whole blob; there are no partial updates, which is
// what keeps every on-disk state internally consistent.
type ProgressRecord struct {
	ent.Schema
}

func (ProgressRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("profile_id").
			Unique().
			Comment("Owning profile id; the legacy single-profile blob uses a reserved key"),
		field.String("data").
			Comment("LearnerProgress JSON blob"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last save time"),
	}
}
