// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/willowed/persona/ent/predicate"
	"github.com/willowed/persona/ent/signupevent"
)

// SignupEventUpdate is the builder for updating SignupEvent entities.
type SignupEventUpdate struct {
	config
	hooks    []Hook
	mutation *SignupEventMutation
}

// Where appends a list predicates to the SignupEventUpdate builder.
func (_u *SignupEventUpdate) Where(ps ...predicate.SignupEvent) *SignupEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmail sets the "email" field.
func (_u *SignupEventUpdate) SetEmail(v string) *SignupEventUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *SignupEventUpdate) SetNillableEmail(v *string) *SignupEventUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPersonalityTypeID sets the "personality_type_id" field.
func (_u *SignupEventUpdate) SetPersonalityTypeID(v string) *SignupEventUpdate {
	_u.mutation.SetPersonalityTypeID(v)
	return _u
}

// SetNillablePersonalityTypeID sets the "personality_type_id" field if the given value is not nil.
func (_u *SignupEventUpdate) SetNillablePersonalityTypeID(v *string) *SignupEventUpdate {
	if v != nil {
		_u.SetPersonalityTypeID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SignupEventUpdate) SetSessionID(v string) *SignupEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SignupEventUpdate) SetNillableSessionID(v *string) *SignupEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// Mutation returns the SignupEventMutation object of the builder.
func (_u *SignupEventUpdate) Mutation() *SignupEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SignupEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SignupEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SignupEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SignupEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SignupEventUpdate) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := signupevent.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "SignupEvent.email": %w`, err)}
		}
	}
	return nil
}

func (_u *SignupEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(signupevent.Table, signupevent.Columns, sqlgraph.NewFieldSpec(signupevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(signupevent.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.PersonalityTypeID(); ok {
		_spec.SetField(signupevent.FieldPersonalityTypeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(signupevent.FieldSessionID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{signupevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SignupEventUpdateOne is the builder for updating a single SignupEvent entity.
type SignupEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SignupEventMutation
}

// SetEmail sets the "email" field.
func (_u *SignupEventUpdateOne) SetEmail(v string) *SignupEventUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *SignupEventUpdateOne) SetNillableEmail(v *string) *SignupEventUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPersonalityTypeID sets the "personality_type_id" field.
func (_u *SignupEventUpdateOne) SetPersonalityTypeID(v string) *SignupEventUpdateOne {
	_u.mutation.SetPersonalityTypeID(v)
	return _u
}

// SetNillablePersonalityTypeID sets the "personality_type_id" field if the given value is not nil.
func (_u *SignupEventUpdateOne) SetNillablePersonalityTypeID(v *string) *SignupEventUpdateOne {
	if v != nil {
		_u.SetPersonalityTypeID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SignupEventUpdateOne) SetSessionID(v string) *SignupEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SignupEventUpdateOne) SetNillableSessionID(v *string) *SignupEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// Mutation returns the SignupEventMutation object of the builder.
func (_u *SignupEventUpdateOne) Mutation() *SignupEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SignupEventUpdate builder.
func (_u *SignupEventUpdateOne) Where(ps ...predicate.SignupEvent) *SignupEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SignupEventUpdateOne) Select(field string, fields ...string) *SignupEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SignupEvent entity.
func (_u *SignupEventUpdateOne) Save(ctx context.Context) (*SignupEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SignupEventUpdateOne) SaveX(ctx context.Context) *SignupEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SignupEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SignupEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SignupEventUpdateOne) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := signupevent.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "SignupEvent.email": %w`, err)}
		}
	}
	return nil
}

func (_u *SignupEventUpdateOne) sqlSave(ctx context.Context) (_node *SignupEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(signupevent.Table, signupevent.Columns, sqlgraph.NewFieldSpec(signupevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SignupEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, signupevent.FieldID)
		for _, f := range fields {
			if !signupevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != signupevent.FieldID {
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
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(signupevent.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.PersonalityTypeID(); ok {
		_spec.SetField(signupevent.FieldPersonalityTypeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(signupevent.FieldSessionID, field.TypeString, value)
	}
	_node = &SignupEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{signupevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
