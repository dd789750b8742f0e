// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/willowed/persona/ent/signupevent"
)

// SignupEventCreate is the builder for creating a SignupEvent entity.
type SignupEventCreate struct {
	config
	mutation *SignupEventMutation
	hooks    []Hook
}

// SetEmail sets the "email" field.
func (_c *SignupEventCreate) SetEmail(v string) *SignupEventCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetPersonalityTypeID sets the "personality_type_id" field.
func (_c *SignupEventCreate) SetPersonalityTypeID(v string) *SignupEventCreate {
	_c.mutation.SetPersonalityTypeID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *SignupEventCreate) SetSessionID(v string) *SignupEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *SignupEventCreate) SetTimestamp(v time.Time) *SignupEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *SignupEventCreate) SetNillableTimestamp(v *time.Time) *SignupEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// Mutation returns the SignupEventMutation object of the builder.
func (_c *SignupEventCreate) Mutation() *SignupEventMutation {
	return _c.mutation
}

// Save creates the SignupEvent in the database.
func (_c *SignupEventCreate) Save(ctx context.Context) (*SignupEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SignupEventCreate) SaveX(ctx context.Context) *SignupEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SignupEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SignupEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SignupEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := signupevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SignupEventCreate) check() error {
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "SignupEvent.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := signupevent.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "SignupEvent.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PersonalityTypeID(); !ok {
		return &ValidationError{Name: "personality_type_id", err: errors.New(`ent: missing required field "SignupEvent.personality_type_id"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SignupEvent.session_id"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "SignupEvent.timestamp"`)}
	}
	return nil
}

func (_c *SignupEventCreate) sqlSave(ctx context.Context) (*SignupEvent, error) {
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

func (_c *SignupEventCreate) createSpec() (*SignupEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SignupEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(signupevent.Table, sqlgraph.NewFieldSpec(signupevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(signupevent.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.PersonalityTypeID(); ok {
		_spec.SetField(signupevent.FieldPersonalityTypeID, field.TypeString, value)
		_node.PersonalityTypeID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(signupevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(signupevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	return _node, _spec
}

// SignupEventCreateBulk is the builder for creating many SignupEvent entities in bulk.
type SignupEventCreateBulk struct {
	config
	err      error
	builders []*SignupEventCreate
}

// Save creates the SignupEvent entities in the database.
func (_c *SignupEventCreateBulk) Save(ctx context.Context) ([]*SignupEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SignupEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SignupEventMutation)
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
func (_c *SignupEventCreateBulk) SaveX(ctx context.Context) []*SignupEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SignupEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SignupEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
