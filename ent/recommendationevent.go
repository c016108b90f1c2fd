// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/quizflow/ent/recommendationevent"
)

// RecommendationEvent is the model entity for the RecommendationEvent schema.
type RecommendationEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Links to ResponseEvent
	ResponseID string `json:"response_id,omitempty"`
	// Recommended result ids in first-discovery order
	ResultIds []string `json:"result_ids,omitempty"`
	// Number of recommendations (0 means no recommendation)
	ResultCount  int `json:"result_count,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RecommendationEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case recommendationevent.FieldResultIds:
			values[i] = new([]byte)
		case recommendationevent.FieldID, recommendationevent.FieldSequence, recommendationevent.FieldResultCount:
			values[i] = new(sql.NullInt64)
		case recommendationevent.FieldResponseID:
			values[i] = new(sql.NullString)
		case recommendationevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RecommendationEvent fields.
func (_m *RecommendationEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case recommendationevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case recommendationevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case recommendationevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case recommendationevent.FieldResponseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field response_id", values[i])
			} else if value.Valid {
				_m.ResponseID = value.String
			}
		case recommendationevent.FieldResultIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field result_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ResultIds); err != nil {
					return fmt.Errorf("unmarshal field result_ids: %w", err)
				}
			}
		case recommendationevent.FieldResultCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field result_count", values[i])
			} else if value.Valid {
				_m.ResultCount = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RecommendationEvent.
// This includes values selected through modifiers, order, etc.
func (_m *RecommendationEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RecommendationEvent.
// Note that you need to call RecommendationEvent.Unwrap() before calling this method if this RecommendationEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RecommendationEvent) Update() *RecommendationEventUpdateOne {
	return NewRecommendationEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RecommendationEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RecommendationEvent) Unwrap() *RecommendationEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RecommendationEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RecommendationEvent) String() string {
	var builder strings.Builder
	builder.WriteString("RecommendationEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("response_id=")
	builder.WriteString(_m.ResponseID)
	builder.WriteString(", ")
	builder.WriteString("result_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResultIds))
	builder.WriteString(", ")
	builder.WriteString("result_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResultCount))
	builder.WriteByte(')')
	return builder.String()
}

// RecommendationEvents is a parsable slice of RecommendationEvent.
type RecommendationEvents []*RecommendationEvent
