// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "response_id", Type: field.TypeString},
		{Name: "step_id", Type: field.TypeString},
		{Name: "step_index", Type: field.TypeInt},
		{Name: "step_type", Type: field.TypeString},
		{Name: "answer_json", Type: field.TypeString},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_response_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_step_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[4]},
			},
		},
	}
	// RecommendationEventsColumns holds the columns for the "recommendation_events" table.
	RecommendationEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "response_id", Type: field.TypeString},
		{Name: "result_ids", Type: field.TypeJSON},
		{Name: "result_count", Type: field.TypeInt, Default: 0},
	}
	// RecommendationEventsTable holds the schema information for the "recommendation_events" table.
	RecommendationEventsTable = &schema.Table{
		Name:       "recommendation_events",
		Columns:    RecommendationEventsColumns,
		PrimaryKey: []*schema.Column{RecommendationEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "recommendationevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{RecommendationEventsColumns[1]},
			},
			{
				Name:    "recommendationevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{RecommendationEventsColumns[2]},
			},
			{
				Name:    "recommendationevent_response_id",
				Unique:  false,
				Columns: []*schema.Column{RecommendationEventsColumns[3]},
			},
		},
	}
	// ResponseEventsColumns holds the columns for the "response_events" table.
	ResponseEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "response_id", Type: field.TypeString},
		{Name: "quiz_slug", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "steps_seen", Type: field.TypeInt, Default: 0},
		{Name: "answers_recorded", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// ResponseEventsTable holds the schema information for the "response_events" table.
	ResponseEventsTable = &schema.Table{
		Name:       "response_events",
		Columns:    ResponseEventsColumns,
		PrimaryKey: []*schema.Column{ResponseEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "responseevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[1]},
			},
			{
				Name:    "responseevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[2]},
			},
			{
				Name:    "responseevent_response_id",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[3]},
			},
			{
				Name:    "responseevent_quiz_slug",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[4]},
			},
			{
				Name:    "responseevent_action",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		RecommendationEventsTable,
		ResponseEventsTable,
	}
)

func init() {
}
