// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/quizflow/ent/predicate"
	"github.com/abhisek/quizflow/ent/responseevent"
)

// ResponseEventUpdate is the builder for updating ResponseEvent entities.
type ResponseEventUpdate struct {
	config
	hooks    []Hook
	mutation *ResponseEventMutation
}

// Where appends a list predicates to the ResponseEventUpdate builder.
func (_u *ResponseEventUpdate) Where(ps ...predicate.ResponseEvent) *ResponseEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetResponseID sets the "response_id" field.
func (_u *ResponseEventUpdate) SetResponseID(v string) *ResponseEventUpdate {
	_u.mutation.SetResponseID(v)
	return _u
}

// SetNillableResponseID sets the "response_id" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableResponseID(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetResponseID(*v)
	}
	return _u
}

// SetQuizSlug sets the "quiz_slug" field.
func (_u *ResponseEventUpdate) SetQuizSlug(v string) *ResponseEventUpdate {
	_u.mutation.SetQuizSlug(v)
	return _u
}

// SetNillableQuizSlug sets the "quiz_slug" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableQuizSlug(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetQuizSlug(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *ResponseEventUpdate) SetAction(v string) *ResponseEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableAction(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetStepsSeen sets the "steps_seen" field.
func (_u *ResponseEventUpdate) SetStepsSeen(v int) *ResponseEventUpdate {
	_u.mutation.ResetStepsSeen()
	_u.mutation.SetStepsSeen(v)
	return _u
}

// SetNillableStepsSeen sets the "steps_seen" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableStepsSeen(v *int) *ResponseEventUpdate {
	if v != nil {
		_u.SetStepsSeen(*v)
	}
	return _u
}

// AddStepsSeen adds value to the "steps_seen" field.
func (_u *ResponseEventUpdate) AddStepsSeen(v int) *ResponseEventUpdate {
	_u.mutation.AddStepsSeen(v)
	return _u
}

// SetAnswersRecorded sets the "answers_recorded" field.
func (_u *ResponseEventUpdate) SetAnswersRecorded(v int) *ResponseEventUpdate {
	_u.mutation.ResetAnswersRecorded()
	_u.mutation.SetAnswersRecorded(v)
	return _u
}

// SetNillableAnswersRecorded sets the "answers_recorded" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableAnswersRecorded(v *int) *ResponseEventUpdate {
	if v != nil {
		_u.SetAnswersRecorded(*v)
	}
	return _u
}

// AddAnswersRecorded adds value to the "answers_recorded" field.
func (_u *ResponseEventUpdate) AddAnswersRecorded(v int) *ResponseEventUpdate {
	_u.mutation.AddAnswersRecorded(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *ResponseEventUpdate) SetDurationSecs(v int) *ResponseEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableDurationSecs(v *int) *ResponseEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *ResponseEventUpdate) AddDurationSecs(v int) *ResponseEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the ResponseEventMutation object of the builder.
func (_u *ResponseEventUpdate) Mutation() *ResponseEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResponseEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResponseEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResponseEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResponseEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResponseEventUpdate) check() error {
	if v, ok := _u.mutation.ResponseID(); ok {
		if err := responseevent.ResponseIDValidator(v); err != nil {
			return &ValidationError{Name: "response_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.response_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuizSlug(); ok {
		if err := responseevent.QuizSlugValidator(v); err != nil {
			return &ValidationError{Name: "quiz_slug", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.quiz_slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := responseevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *ResponseEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(responseevent.Table, responseevent.Columns, sqlgraph.NewFieldSpec(responseevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ResponseID(); ok {
		_spec.SetField(responseevent.FieldResponseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizSlug(); ok {
		_spec.SetField(responseevent.FieldQuizSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(responseevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepsSeen(); ok {
		_spec.SetField(responseevent.FieldStepsSeen, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepsSeen(); ok {
		_spec.AddField(responseevent.FieldStepsSeen, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AnswersRecorded(); ok {
		_spec.SetField(responseevent.FieldAnswersRecorded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnswersRecorded(); ok {
		_spec.AddField(responseevent.FieldAnswersRecorded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(responseevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(responseevent.FieldDurationSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{responseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResponseEventUpdateOne is the builder for updating a single ResponseEvent entity.
type ResponseEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResponseEventMutation
}

// SetResponseID sets the "response_id" field.
func (_u *ResponseEventUpdateOne) SetResponseID(v string) *ResponseEventUpdateOne {
	_u.mutation.SetResponseID(v)
	return _u
}

// SetNillableResponseID sets the "response_id" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableResponseID(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetResponseID(*v)
	}
	return _u
}

// SetQuizSlug sets the "quiz_slug" field.
func (_u *ResponseEventUpdateOne) SetQuizSlug(v string) *ResponseEventUpdateOne {
	_u.mutation.SetQuizSlug(v)
	return _u
}

// SetNillableQuizSlug sets the "quiz_slug" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableQuizSlug(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetQuizSlug(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *ResponseEventUpdateOne) SetAction(v string) *ResponseEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableAction(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetStepsSeen sets the "steps_seen" field.
func (_u *ResponseEventUpdateOne) SetStepsSeen(v int) *ResponseEventUpdateOne {
	_u.mutation.ResetStepsSeen()
	_u.mutation.SetStepsSeen(v)
	return _u
}

// SetNillableStepsSeen sets the "steps_seen" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableStepsSeen(v *int) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetStepsSeen(*v)
	}
	return _u
}

// AddStepsSeen adds value to the "steps_seen" field.
func (_u *ResponseEventUpdateOne) AddStepsSeen(v int) *ResponseEventUpdateOne {
	_u.mutation.AddStepsSeen(v)
	return _u
}

// SetAnswersRecorded sets the "answers_recorded" field.
func (_u *ResponseEventUpdateOne) SetAnswersRecorded(v int) *ResponseEventUpdateOne {
	_u.mutation.ResetAnswersRecorded()
	_u.mutation.SetAnswersRecorded(v)
	return _u
}

// SetNillableAnswersRecorded sets the "answers_recorded" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableAnswersRecorded(v *int) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetAnswersRecorded(*v)
	}
	return _u
}

// AddAnswersRecorded adds value to the "answers_recorded" field.
func (_u *ResponseEventUpdateOne) AddAnswersRecorded(v int) *ResponseEventUpdateOne {
	_u.mutation.AddAnswersRecorded(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *ResponseEventUpdateOne) SetDurationSecs(v int) *ResponseEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableDurationSecs(v *int) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *ResponseEventUpdateOne) AddDurationSecs(v int) *ResponseEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the ResponseEventMutation object of the builder.
func (_u *ResponseEventUpdateOne) Mutation() *ResponseEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResponseEventUpdate builder.
func (_u *ResponseEventUpdateOne) Where(ps ...predicate.ResponseEvent) *ResponseEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResponseEventUpdateOne) Select(field string, fields ...string) *ResponseEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResponseEvent entity.
func (_u *ResponseEventUpdateOne) Save(ctx context.Context) (*ResponseEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResponseEventUpdateOne) SaveX(ctx context.Context) *ResponseEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResponseEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResponseEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResponseEventUpdateOne) check() error {
	if v, ok := _u.mutation.ResponseID(); ok {
		if err := responseevent.ResponseIDValidator(v); err != nil {
			return &ValidationError{Name: "response_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.response_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuizSlug(); ok {
		if err := responseevent.QuizSlugValidator(v); err != nil {
			return &ValidationError{Name: "quiz_slug", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.quiz_slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := responseevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *ResponseEventUpdateOne) sqlSave(ctx context.Context) (_node *ResponseEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(responseevent.Table, responseevent.Columns, sqlgraph.NewFieldSpec(responseevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResponseEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, responseevent.FieldID)
		for _, f := range fields {
			if !responseevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != responseevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ResponseID(); ok {
		_spec.SetField(responseevent.FieldResponseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizSlug(); ok {
		_spec.SetField(responseevent.FieldQuizSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(responseevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepsSeen(); ok {
		_spec.SetField(responseevent.FieldStepsSeen, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepsSeen(); ok {
		_spec.AddField(responseevent.FieldStepsSeen, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AnswersRecorded(); ok {
		_spec.SetField(responseevent.FieldAnswersRecorded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnswersRecorded(); ok {
		_spec.AddField(responseevent.FieldAnswersRecorded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(responseevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(responseevent.FieldDurationSecs, field.TypeInt, value)
	}
	_node = &ResponseEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{responseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
