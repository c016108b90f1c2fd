package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single recorded answer within a response session.
// The answer itself is stored as its raw JSON so any answer shape (string,
// number, list, form object) round-trips losslessly.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("response_id").
			NotEmpty().
			Comment("Links to ResponseEvent"),
		field.String("step_id").
			NotEmpty().
			Comment("Step this answer was recorded for"),
		field.Int("step_index").
			Comment("Position of the step in the linear sequence"),
		field.String("step_type").
			NotEmpty().
			Comment("question, form, or component"),
		field.String("answer_json").
			Comment("Raw JSON of the recorded answer"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("response_id"),
		index.Fields("step_id"),
	}
}
