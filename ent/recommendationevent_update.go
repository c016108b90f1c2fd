// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/quizflow/ent/predicate"
	"github.com/abhisek/quizflow/ent/recommendationevent"
)

// RecommendationEventUpdate is the builder for updating RecommendationEvent entities.
type RecommendationEventUpdate struct {
	config
	hooks    []Hook
	mutation *RecommendationEventMutation
}

// Where appends a list predicates to the RecommendationEventUpdate builder.
func (_u *RecommendationEventUpdate) Where(ps ...predicate.RecommendationEvent) *RecommendationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetResponseID sets the "response_id" field.
func (_u *RecommendationEventUpdate) SetResponseID(v string) *RecommendationEventUpdate {
	_u.mutation.SetResponseID(v)
	return _u
}

// SetNillableResponseID sets the "response_id" field if the given value is not nil.
func (_u *RecommendationEventUpdate) SetNillableResponseID(v *string) *RecommendationEventUpdate {
	if v != nil {
		_u.SetResponseID(*v)
	}
	return _u
}

// SetResultIds sets the "result_ids" field.
func (_u *RecommendationEventUpdate) SetResultIds(v []string) *RecommendationEventUpdate {
	_u.mutation.SetResultIds(v)
	return _u
}

// AppendResultIds appends value to the "result_ids" field.
func (_u *RecommendationEventUpdate) AppendResultIds(v []string) *RecommendationEventUpdate {
	_u.mutation.AppendResultIds(v)
	return _u
}

// SetResultCount sets the "result_count" field.
func (_u *RecommendationEventUpdate) SetResultCount(v int) *RecommendationEventUpdate {
	_u.mutation.ResetResultCount()
	_u.mutation.SetResultCount(v)
	return _u
}

// SetNillableResultCount sets the "result_count" field if the given value is not nil.
func (_u *RecommendationEventUpdate) SetNillableResultCount(v *int) *RecommendationEventUpdate {
	if v != nil {
		_u.SetResultCount(*v)
	}
	return _u
}

// AddResultCount adds value to the "result_count" field.
func (_u *RecommendationEventUpdate) AddResultCount(v int) *RecommendationEventUpdate {
	_u.mutation.AddResultCount(v)
	return _u
}

// Mutation returns the RecommendationEventMutation object of the builder.
func (_u *RecommendationEventUpdate) Mutation() *RecommendationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RecommendationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecommendationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RecommendationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecommendationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecommendationEventUpdate) check() error {
	if v, ok := _u.mutation.ResponseID(); ok {
		if err := recommendationevent.ResponseIDValidator(v); err != nil {
			return &ValidationError{Name: "response_id", err: fmt.Errorf(`ent: validator failed for field "RecommendationEvent.response_id": %w`, err)}
		}
	}
	return nil
}

func (_u *RecommendationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recommendationevent.Table, recommendationevent.Columns, sqlgraph.NewFieldSpec(recommendationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ResponseID(); ok {
		_spec.SetField(recommendationevent.FieldResponseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResultIds(); ok {
		_spec.SetField(recommendationevent.FieldResultIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResultIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, recommendationevent.FieldResultIds, value)
		})
	}
	if value, ok := _u.mutation.ResultCount(); ok {
		_spec.SetField(recommendationevent.FieldResultCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResultCount(); ok {
		_spec.AddField(recommendationevent.FieldResultCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recommendationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RecommendationEventUpdateOne is the builder for updating a single RecommendationEvent entity.
type RecommendationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RecommendationEventMutation
}

// SetResponseID sets the "response_id" field.
func (_u *RecommendationEventUpdateOne) SetResponseID(v string) *RecommendationEventUpdateOne {
	_u.mutation.SetResponseID(v)
	return _u
}

// SetNillableResponseID sets the "response_id" field if the given value is not nil.
func (_u *RecommendationEventUpdateOne) SetNillableResponseID(v *string) *RecommendationEventUpdateOne {
	if v != nil {
		_u.SetResponseID(*v)
	}
	return _u
}

// SetResultIds sets the "result_ids" field.
func (_u *RecommendationEventUpdateOne) SetResultIds(v []string) *RecommendationEventUpdateOne {
	_u.mutation.SetResultIds(v)
	return _u
}

// AppendResultIds appends value to the "result_ids" field.
func (_u *RecommendationEventUpdateOne) AppendResultIds(v []string) *RecommendationEventUpdateOne {
	_u.mutation.AppendResultIds(v)
	return _u
}

// SetResultCount sets the "result_count" field.
func (_u *RecommendationEventUpdateOne) SetResultCount(v int) *RecommendationEventUpdateOne {
	_u.mutation.ResetResultCount()
	_u.mutation.SetResultCount(v)
	return _u
}

// SetNillableResultCount sets the "result_count" field if the given value is not nil.
func (_u *RecommendationEventUpdateOne) SetNillableResultCount(v *int) *RecommendationEventUpdateOne {
	if v != nil {
		_u.SetResultCount(*v)
	}
	return _u
}

// AddResultCount adds value to the "result_count" field.
func (_u *RecommendationEventUpdateOne) AddResultCount(v int) *RecommendationEventUpdateOne {
	_u.mutation.AddResultCount(v)
	return _u
}

// Mutation returns the RecommendationEventMutation object of the builder.
func (_u *RecommendationEventUpdateOne) Mutation() *RecommendationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the RecommendationEventUpdate builder.
func (_u *RecommendationEventUpdateOne) Where(ps ...predicate.RecommendationEvent) *RecommendationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RecommendationEventUpdateOne) Select(field string, fields ...string) *RecommendationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RecommendationEvent entity.
func (_u *RecommendationEventUpdateOne) Save(ctx context.Context) (*RecommendationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecommendationEventUpdateOne) SaveX(ctx context.Context) *RecommendationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RecommendationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecommendationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecommendationEventUpdateOne) check() error {
	if v, ok := _u.mutation.ResponseID(); ok {
		if err := recommendationevent.ResponseIDValidator(v); err != nil {
			return &ValidationError{Name: "response_id", err: fmt.Errorf(`ent: validator failed for field "RecommendationEvent.response_id": %w`, err)}
		}
	}
	return nil
}

func (_u *RecommendationEventUpdateOne) sqlSave(ctx context.Context) (_node *RecommendationEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recommendationevent.Table, recommendationevent.Columns, sqlgraph.NewFieldSpec(recommendationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RecommendationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, recommendationevent.FieldID)
		for _, f := range fields {
			if !recommendationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != recommendationevent.FieldID {
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
		_spec.SetField(recommendationevent.FieldResponseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResultIds(); ok {
		_spec.SetField(recommendationevent.FieldResultIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResultIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, recommendationevent.FieldResultIds, value)
		})
	}
	if value, ok := _u.mutation.ResultCount(); ok {
		_spec.SetField(recommendationevent.FieldResultCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResultCount(); ok {
		_spec.AddField(recommendationevent.FieldResultCount, field.TypeInt, value)
	}
	_node = &RecommendationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recommendationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
