// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/quizflow/ent/answerevent"
	"github.com/abhisek/quizflow/ent/predicate"
)

// AnswerEventUpdate is the builder for updating AnswerEvent entities.
type AnswerEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerEventMutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdate) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetResponseID sets the "response_id" field.
func (_u *AnswerEventUpdate) SetResponseID(v string) *AnswerEventUpdate {
	_u.mutation.SetResponseID(v)
	return _u
}

// SetNillableResponseID sets the "response_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableResponseID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetResponseID(*v)
	}
	return _u
}

// SetStepID sets the "step_id" field.
func (_u *AnswerEventUpdate) SetStepID(v string) *AnswerEventUpdate {
	_u.mutation.SetStepID(v)
	return _u
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableStepID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetStepID(*v)
	}
	return _u
}

// SetStepIndex sets the "step_index" field.
func (_u *AnswerEventUpdate) SetStepIndex(v int) *AnswerEventUpdate {
	_u.mutation.ResetStepIndex()
	_u.mutation.SetStepIndex(v)
	return _u
}

// SetNillableStepIndex sets the "step_index" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableStepIndex(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetStepIndex(*v)
	}
	return _u
}

// AddStepIndex adds value to the "step_index" field.
func (_u *AnswerEventUpdate) AddStepIndex(v int) *AnswerEventUpdate {
	_u.mutation.AddStepIndex(v)
	return _u
}

// SetStepType sets the "step_type" field.
func (_u *AnswerEventUpdate) SetStepType(v string) *AnswerEventUpdate {
	_u.mutation.SetStepType(v)
	return _u
}

// SetNillableStepType sets the "step_type" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableStepType(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetStepType(*v)
	}
	return _u
}

// SetAnswerJSON sets the "answer_json" field.
func (_u *AnswerEventUpdate) SetAnswerJSON(v string) *AnswerEventUpdate {
	_u.mutation.SetAnswerJSON(v)
	return _u
}

// SetNillableAnswerJSON sets the "answer_json" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableAnswerJSON(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetAnswerJSON(*v)
	}
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdate) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdate) check() error {
	if v, ok := _u.mutation.ResponseID(); ok {
		if err := answerevent.ResponseIDValidator(v); err != nil {
			return &ValidationError{Name: "response_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.response_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StepID(); ok {
		if err := answerevent.StepIDValidator(v); err != nil {
			return &ValidationError{Name: "step_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.step_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StepType(); ok {
		if err := answerevent.StepTypeValidator(v); err != nil {
			return &ValidationError{Name: "step_type", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.step_type": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ResponseID(); ok {
		_spec.SetField(answerevent.FieldResponseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepID(); ok {
		_spec.SetField(answerevent.FieldStepID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepIndex(); ok {
		_spec.SetField(answerevent.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepIndex(); ok {
		_spec.AddField(answerevent.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StepType(); ok {
		_spec.SetField(answerevent.FieldStepType, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnswerJSON(); ok {
		_spec.SetField(answerevent.FieldAnswerJSON, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerEventUpdateOne is the builder for updating a single AnswerEvent entity.
type AnswerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerEventMutation
}

// SetResponseID sets the "response_id" field.
func (_u *AnswerEventUpdateOne) SetResponseID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetResponseID(v)
	return _u
}

// SetNillableResponseID sets the "response_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableResponseID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetResponseID(*v)
	}
	return _u
}

// SetStepID sets the "step_id" field.
func (_u *AnswerEventUpdateOne) SetStepID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetStepID(v)
	return _u
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableStepID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetStepID(*v)
	}
	return _u
}

// SetStepIndex sets the "step_index" field.
func (_u *AnswerEventUpdateOne) SetStepIndex(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetStepIndex()
	_u.mutation.SetStepIndex(v)
	return _u
}

// SetNillableStepIndex sets the "step_index" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableStepIndex(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetStepIndex(*v)
	}
	return _u
}

// AddStepIndex adds value to the "step_index" field.
func (_u *AnswerEventUpdateOne) AddStepIndex(v int) *AnswerEventUpdateOne {
	_u.mutation.AddStepIndex(v)
	return _u
}

// SetStepType sets the "step_type" field.
func (_u *AnswerEventUpdateOne) SetStepType(v string) *AnswerEventUpdateOne {
	_u.mutation.SetStepType(v)
	return _u
}

// SetNillableStepType sets the "step_type" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableStepType(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetStepType(*v)
	}
	return _u
}

// SetAnswerJSON sets the "answer_json" field.
func (_u *AnswerEventUpdateOne) SetAnswerJSON(v string) *AnswerEventUpdateOne {
	_u.mutation.SetAnswerJSON(v)
	return _u
}

// SetNillableAnswerJSON sets the "answer_json" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableAnswerJSON(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetAnswerJSON(*v)
	}
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdateOne) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdateOne) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerEventUpdateOne) Select(field string, fields ...string) *AnswerEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnswerEvent entity.
func (_u *AnswerEventUpdateOne) Save(ctx context.Context) (*AnswerEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) SaveX(ctx context.Context) *AnswerEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdateOne) check() error {
	if v, ok := _u.mutation.ResponseID(); ok {
		if err := answerevent.ResponseIDValidator(v); err != nil {
			return &ValidationError{Name: "response_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.response_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StepID(); ok {
		if err := answerevent.StepIDValidator(v); err != nil {
			return &ValidationError{Name: "step_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.step_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StepType(); ok {
		if err := answerevent.StepTypeValidator(v); err != nil {
			return &ValidationError{Name: "step_type", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.step_type": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdateOne) sqlSave(ctx context.Context) (_node *AnswerEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerevent.FieldID)
		for _, f := range fields {
			if !answerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerevent.FieldID {
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
		_spec.SetField(answerevent.FieldResponseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepID(); ok {
		_spec.SetField(answerevent.FieldStepID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepIndex(); ok {
		_spec.SetField(answerevent.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepIndex(); ok {
		_spec.AddField(answerevent.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StepType(); ok {
		_spec.SetField(answerevent.FieldStepType, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnswerJSON(); ok {
		_spec.SetField(answerevent.FieldAnswerJSON, field.TypeString, value)
	}
	_node = &AnswerEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
