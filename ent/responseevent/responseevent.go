// Code generated by ent, DO NOT EDIT.

package responseevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the responseevent type in the database.
	Label = "response_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldResponseID holds the string denoting the response_id field in the database.
	FieldResponseID = "response_id"
	// FieldQuizSlug holds the string denoting the quiz_slug field in the database.
	FieldQuizSlug = "quiz_slug"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldStepsSeen holds the string denoting the steps_seen field in the database.
	FieldStepsSeen = "steps_seen"
	// FieldAnswersRecorded holds the string denoting the answers_recorded field in the database.
	FieldAnswersRecorded = "answers_recorded"
	// FieldDurationSecs holds the string denoting the duration_secs field in the database.
	FieldDurationSecs = "duration_secs"
	// Table holds the table name of the responseevent in the database.
	Table = "response_events"
)

// Columns holds all SQL columns for responseevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldResponseID,
	FieldQuizSlug,
	FieldAction,
	FieldStepsSeen,
	FieldAnswersRecorded,
	FieldDurationSecs,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// ResponseIDValidator is a validator for the "response_id" field. It is called by the builders before save.
	ResponseIDValidator func(string) error
	// QuizSlugValidator is a validator for the "quiz_slug" field. It is called by the builders before save.
	QuizSlugValidator func(string) error
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// DefaultStepsSeen holds the default value on creation for the "steps_seen" field.
	DefaultStepsSeen int
	// DefaultAnswersRecorded holds the default value on creation for the "answers_recorded" field.
	DefaultAnswersRecorded int
	// DefaultDurationSecs holds the default value on creation for the "duration_secs" field.
	DefaultDurationSecs int
)

// OrderOption defines the ordering options for the ResponseEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByResponseID orders the results by the response_id field.
func ByResponseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseID, opts...).ToFunc()
}

// ByQuizSlug orders the results by the quiz_slug field.
func ByQuizSlug(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuizSlug, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByStepsSeen orders the results by the steps_seen field.
func ByStepsSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepsSeen, opts...).ToFunc()
}

// ByAnswersRecorded orders the results by the answers_recorded field.
func ByAnswersRecorded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswersRecorded, opts...).ToFunc()
}

// ByDurationSecs orders the results by the duration_secs field.
func ByDurationSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSecs, opts...).ToFunc()
}
