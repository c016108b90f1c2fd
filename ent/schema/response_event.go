package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResponseEvent records response lifecycle events (start/complete/abandon)
// for one quiz-taking session.
type ResponseEvent struct {
	ent.Schema
}

func (ResponseEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ResponseEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("response_id").
			NotEmpty().
			Comment("UUID grouping events of one quiz-taking session"),
		field.String("quiz_slug").
			NotEmpty().
			Comment("Which quiz definition was taken"),
		field.String("action").
			NotEmpty().
			Comment("start, complete, or abandon"),
		field.Int("steps_seen").
			Default(0).
			Comment("Steps presented (on complete/abandon only)"),
		field.Int("answers_recorded").
			Default(0).
			Comment("Answers recorded (on complete/abandon only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Session duration in seconds (on complete/abandon only)"),
	}
}

func (ResponseEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("response_id"),
		index.Fields("quiz_slug"),
		index.Fields("action"),
	}
}
