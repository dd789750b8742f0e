// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/willowed/persona/ent/completion"
	"github.com/willowed/persona/ent/predicate"
	"github.com/willowed/persona/ent/schema"
)

// CompletionUpdate is the builder for updating Completion entities.
type CompletionUpdate struct {
	config
	hooks    []Hook
	mutation *CompletionMutation
}

// Where appends a list predicates to the CompletionUpdate builder.
func (_u *CompletionUpdate) Where(ps ...predicate.Completion) *CompletionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetResultID sets the "result_id" field.
func (_u *CompletionUpdate) SetResultID(v string) *CompletionUpdate {
	_u.mutation.SetResultID(v)
	return _u
}

// SetNillableResultID sets the "result_id" field if the given value is not nil.
func (_u *CompletionUpdate) SetNillableResultID(v *string) *CompletionUpdate {
	if v != nil {
		_u.SetResultID(*v)
	}
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *CompletionUpdate) SetAnswers(v []schema.AnswerRecord) *CompletionUpdate {
	_u.mutation.SetAnswers(v)
	return _u
}

// AppendAnswers appends value to the "answers" field.
func (_u *CompletionUpdate) AppendAnswers(v []schema.AnswerRecord) *CompletionUpdate {
	_u.mutation.AppendAnswers(v)
	return _u
}

// ClearAnswers clears the value of the "answers" field.
func (_u *CompletionUpdate) ClearAnswers() *CompletionUpdate {
	_u.mutation.ClearAnswers()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *CompletionUpdate) SetCompletedAt(v time.Time) *CompletionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *CompletionUpdate) SetNillableCompletedAt(v *time.Time) *CompletionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// Mutation returns the CompletionMutation object of the builder.
func (_u *CompletionUpdate) Mutation() *CompletionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CompletionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompletionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CompletionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompletionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompletionUpdate) check() error {
	if v, ok := _u.mutation.ResultID(); ok {
		if err := completion.ResultIDValidator(v); err != nil {
			return &ValidationError{Name: "result_id", err: fmt.Errorf(`ent: validator failed for field "Completion.result_id": %w`, err)}
		}
	}
	return nil
}

func (_u *CompletionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(completion.Table, completion.Columns, sqlgraph.NewFieldSpec(completion.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ResultID(); ok {
		_spec.SetField(completion.FieldResultID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(completion.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, completion.FieldAnswers, value)
		})
	}
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(completion.FieldAnswers, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(completion.FieldCompletedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{completion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CompletionUpdateOne is the builder for updating a single Completion entity.
type CompletionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CompletionMutation
}

// SetResultID sets the "result_id" field.
func (_u *CompletionUpdateOne) SetResultID(v string) *CompletionUpdateOne {
	_u.mutation.SetResultID(v)
	return _u
}

// SetNillableResultID sets the "result_id" field if the given value is not nil.
func (_u *CompletionUpdateOne) SetNillableResultID(v *string) *CompletionUpdateOne {
	if v != nil {
		_u.SetResultID(*v)
	}
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *CompletionUpdateOne) SetAnswers(v []schema.AnswerRecord) *CompletionUpdateOne {
	_u.mutation.SetAnswers(v)
	return _u
}

// AppendAnswers appends value to the "answers" field.
func (_u *CompletionUpdateOne) AppendAnswers(v []schema.AnswerRecord) *CompletionUpdateOne {
	_u.mutation.AppendAnswers(v)
	return _u
}

// ClearAnswers clears the value of the "answers" field.
func (_u *CompletionUpdateOne) ClearAnswers() *CompletionUpdateOne {
	_u.mutation.ClearAnswers()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *CompletionUpdateOne) SetCompletedAt(v time.Time) *CompletionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *CompletionUpdateOne) SetNillableCompletedAt(v *time.Time) *CompletionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// Mutation returns the CompletionMutation object of the builder.
func (_u *CompletionUpdateOne) Mutation() *CompletionMutation {
	return _u.mutation
}

// Where appends a list predicates to the CompletionUpdate builder.
func (_u *CompletionUpdateOne) Where(ps ...predicate.Completion) *CompletionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CompletionUpdateOne) Select(field string, fields ...string) *CompletionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Completion entity.
func (_u *CompletionUpdateOne) Save(ctx context.Context) (*Completion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompletionUpdateOne) SaveX(ctx context.Context) *Completion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CompletionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompletionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompletionUpdateOne) check() error {
	if v, ok := _u.mutation.ResultID(); ok {
		if err := completion.ResultIDValidator(v); err != nil {
			return &ValidationError{Name: "result_id", err: fmt.Errorf(`ent: validator failed for field "Completion.result_id": %w`, err)}
		}
	}
	return nil
}

func (_u *CompletionUpdateOne) sqlSave(ctx context.Context) (_node *Completion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(completion.Table, completion.Columns, sqlgraph.NewFieldSpec(completion.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Completion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, completion.FieldID)
		for _, f := range fields {
			if !completion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != completion.FieldID {
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
	if value, ok := _u.mutation.ResultID(); ok {
		_spec.SetField(completion.FieldResultID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(completion.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, completion.FieldAnswers, value)
		})
	}
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(completion.FieldAnswers, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(completion.FieldCompletedAt, field.TypeTime, value)
	}
	_node = &Completion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{completion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
