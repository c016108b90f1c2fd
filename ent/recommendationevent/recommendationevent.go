// Code generated by ent, DO NOT EDIT.

package recommendationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the recommendationevent type in the database.
	Label = "recommendation_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldResponseID holds the string denoting the response_id field in the database.
	FieldResponseID = "response_id"
	// FieldResultIds holds the string denoting the result_ids field in the database.
	FieldResultIds = "result_ids"
	// FieldResultCount holds the string denoting the result_count field in the database.
	FieldResultCount = "result_count"
	// Table holds the table name of the recommendationevent in the database.
	Table = "recommendation_events"
)

// Columns holds all SQL columns for recommendationevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldResponseID,
	FieldResultIds,
	FieldResultCount,
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
	// DefaultResultCount holds the default value on creation for the "result_count" field.
	DefaultResultCount int
)

// OrderOption defines the ordering options for the RecommendationEvent queries.
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

// ByResultCount orders the results by the result_count field.
func ByResultCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResultCount, opts...).ToFunc()
}
