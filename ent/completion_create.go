// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/willowed/persona/ent/completion"
	"github.com/willowed/persona/ent/schema"
)

// CompletionCreate is the builder for creating a Completion entity.
type CompletionCreate struct {
	config
	mutation *CompletionMutation
	hooks    []Hook
}

// SetResultID sets the "result_id" field.
func (_c *CompletionCreate) SetResultID(v string) *CompletionCreate {
	_c.mutation.SetResultID(v)
	return _c
}

// SetAnswers sets the "answers" field.
func (_c *CompletionCreate) SetAnswers(v []schema.AnswerRecord) *CompletionCreate {
	_c.mutation.SetAnswers(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *CompletionCreate) SetCompletedAt(v time.Time) *CompletionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *CompletionCreate) SetNillableCompletedAt(v *time.Time) *CompletionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// Mutation returns the CompletionMutation object of the builder.
func (_c *CompletionCreate) Mutation() *CompletionMutation {
	return _c.mutation
}

// Save creates the Completion in the database.
func (_c *CompletionCreate) Save(ctx context.Context) (*Completion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CompletionCreate) SaveX(ctx context.Context) *Completion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompletionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompletionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CompletionCreate) defaults() {
	if _, ok := _c.mutation.CompletedAt(); !ok {
		v := completion.DefaultCompletedAt()
		_c.mutation.SetCompletedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CompletionCreate) check() error {
	if _, ok := _c.mutation.ResultID(); !ok {
		return &ValidationError{Name: "result_id", err: errors.New(`ent: missing required field "Completion.result_id"`)}
	}
	if v, ok := _c.mutation.ResultID(); ok {
		if err := completion.ResultIDValidator(v); err != nil {
			return &ValidationError{Name: "result_id", err: fmt.Errorf(`ent: validator failed for field "Completion.result_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CompletedAt(); !ok {
		return &ValidationError{Name: "completed_at", err: errors.New(`ent: missing required field "Completion.completed_at"`)}
	}
	return nil
}

func (_c *CompletionCreate) sqlSave(ctx context.Context) (*Completion, error) {
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

func (_c *CompletionCreate) createSpec() (*Completion, *sqlgraph.CreateSpec) {
	var (
		_node = &Completion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(completion.Table, sqlgraph.NewFieldSpec(completion.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ResultID(); ok {
		_spec.SetField(completion.FieldResultID, field.TypeString, value)
		_node.ResultID = value
	}
	if value, ok := _c.mutation.Answers(); ok {
		_spec.SetField(completion.FieldAnswers, field.TypeJSON, value)
		_node.Answers = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(completion.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = value
	}
	return _node, _spec
}

// CompletionCreateBulk is the builder for creating many Completion entities in bulk.
type CompletionCreateBulk struct {
	config
	err      error
	builders []*CompletionCreate
}

// Save creates the Completion entities in the database.
func (_c *CompletionCreateBulk) Save(ctx context.Context) ([]*Completion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Completion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CompletionMutation)
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
func (_c *CompletionCreateBulk) SaveX(ctx context.Context) []*Completion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompletionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompletionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
