package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RecommendationEvent records the resolver output for a completed response.
type RecommendationEvent struct {
	ent.Schema
}

func (RecommendationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RecommendationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("response_id").
			NotEmpty().
			Comment("Links to ResponseEvent"),
		field.JSON("result_ids", []string{}).
			Comment("Recommended result ids in first-discovery order"),
		field.Int("result_count").
			Default(0).
			Comment("Number of recommendations (0 means no recommendation)"),
	}
}

func (RecommendationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("response_id"),
	}
}
