package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizEvent records one answered quiz question. The per-day aggregates live
// in the progress blob; this log keeps the raw answers for `kanazen stats`
// and for judging the AI question source against the local one.
type QuizEvent struct {
	ent.Schema
}

func (QuizEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("profile_id").
			Comment("Profile that answered"),
		field.String("glyph").
			Comment("Character that was asked"),
		field.Bool("correct"),
		field.String("source").
			Comment("Question origin: local or ai"),
	}
}

func (QuizEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id"),
		index.Fields("source"),
	}
}
