package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Profile is one learner on this machine. Profiles are cheap; the picker
// screen creates them on the fly.
type Profile struct {
	ent.Schema
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Comment("Opaque profile token, referenced by progress records and preferences"),
		field.String("display_name").
			NotEmpty().
			Comment("Name shown on the profile picker"),
		field.Int64("last_active_ms").
			Default(0).
			Comment("Last activity as epoch milliseconds, for picker ordering"),
		field.String("avatar").
			Default("").
			Comment("Optional avatar as a data URI, validated to 256 KiB before write"),
	}
}

func (Profile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("last_active_ms"),
	}
}
