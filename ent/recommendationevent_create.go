// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/quizflow/ent/recommendationevent"
)

// RecommendationEventCreate is the builder for creating a RecommendationEvent entity.
type RecommendationEventCreate struct {
	config
	mutation *RecommendationEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *RecommendationEventCreate) SetSequence(v int64) *RecommendationEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *RecommendationEventCreate) SetTimestamp(v time.Time) *RecommendationEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *RecommendationEventCreate) SetNillableTimestamp(v *time.Time) *RecommendationEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetResponseID sets the "response_id" field.
func (_c *RecommendationEventCreate) SetResponseID(v string) *RecommendationEventCreate {
	_c.mutation.SetResponseID(v)
	return _c
}

// SetResultIds sets the "result_ids" field.
func (_c *RecommendationEventCreate) SetResultIds(v []string) *RecommendationEventCreate {
	_c.mutation.SetResultIds(v)
	return _c
}

// SetResultCount sets the "result_count" field.
func (_c *RecommendationEventCreate) SetResultCount(v int) *RecommendationEventCreate {
	_c.mutation.SetResultCount(v)
	return _c
}

// SetNillableResultCount sets the "result_count" field if the given value is not nil.
func (_c *RecommendationEventCreate) SetNillableResultCount(v *int) *RecommendationEventCreate {
	if v != nil {
		_c.SetResultCount(*v)
	}
	return _c
}

// Mutation returns the RecommendationEventMutation object of the builder.
func (_c *RecommendationEventCreate) Mutation() *RecommendationEventMutation {
	return _c.mutation
}

// Save creates the RecommendationEvent in the database.
func (_c *RecommendationEventCreate) Save(ctx context.Context) (*RecommendationEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RecommendationEventCreate) SaveX(ctx context.Context) *RecommendationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecommendationEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecommendationEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RecommendationEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := recommendationevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ResultCount(); !ok {
		v := recommendationevent.DefaultResultCount
		_c.mutation.SetResultCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RecommendationEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "RecommendationEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "RecommendationEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.ResponseID(); !ok {
		return &ValidationError{Name: "response_id", err: errors.New(`ent: missing required field "RecommendationEvent.response_id"`)}
	}
	if v, ok := _c.mutation.ResponseID(); ok {
		if err := recommendationevent.ResponseIDValidator(v); err != nil {
			return &ValidationError{Name: "response_id", err: fmt.Errorf(`ent: validator failed for field "RecommendationEvent.response_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ResultIds(); !ok {
		return &ValidationError{Name: "result_ids", err: errors.New(`ent: missing required field "RecommendationEvent.result_ids"`)}
	}
	if _, ok := _c.mutation.ResultCount(); !ok {
		return &ValidationError{Name: "result_count", err: errors.New(`ent: missing required field "RecommendationEvent.result_count"`)}
	}
	return nil
}

func (_c *RecommendationEventCreate) sqlSave(ctx context.Context) (*RecommendationEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RecommendationEventCreate) createSpec() (*RecommendationEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &RecommendationEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(recommendationevent.Table, sqlgraph.NewFieldSpec(recommendationevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(recommendationevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(recommendationevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.ResponseID(); ok {
		_spec.SetField(recommendationevent.FieldResponseID, field.TypeString, value)
		_node.ResponseID = value
	}
	if value, ok := _c.mutation.ResultIds(); ok {
		_spec.SetField(recommendationevent.FieldResultIds, field.TypeJSON, value)
		_node.ResultIds = value
	}
	if value, ok := _c.mutation.ResultCount(); ok {
		_spec.SetField(recommendationevent.FieldResultCount, field.TypeInt, value)
		_node.ResultCount = value
	}
	return _node, _spec
}

// RecommendationEventCreateBulk is the builder for creating many RecommendationEvent entities in bulk.
type RecommendationEventCreateBulk struct {
	config
	err      error
	builders []*RecommendationEventCreate
}

// Save creates the RecommendationEvent entities in the database.
func (_c *RecommendationEventCreateBulk) Save(ctx context.Context) ([]*RecommendationEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RecommendationEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RecommendationEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *RecommendationEventCreateBulk) SaveX(ctx context.Context) []*RecommendationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecommendationEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecommendationEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
