// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/willowed/persona/ent/completion"
	"github.com/willowed/persona/ent/predicate"
	"github.com/willowed/persona/ent/schema"
	"github.com/willowed/persona/ent/signupevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCompletion  = "Completion"
	TypeSignupEvent = "SignupEvent"
)

// CompletionMutation represents an operation that mutates the Completion nodes in the graph.
type CompletionMutation struct {
	config
	op            Op
	typ           string
	id            *int
	result_id     *string
	answers       *[]schema.AnswerRecord
	appendanswers []schema.AnswerRecord
	completed_at  *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Completion, error)
	predicates    []predicate.Completion
}

var _ ent.Mutation = (*CompletionMutation)(nil)

// completionOption allows management of the mutation configuration using functional options.
type completionOption func(*CompletionMutation)

// newCompletionMutation creates new mutation for the Completion entity.
func newCompletionMutation(c config, op Op, opts ...completionOption) *CompletionMutation {
	m := &CompletionMutation{
		config:        c,
		op:            op,
		typ:           TypeCompletion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCompletionID sets the ID field of the mutation.
func withCompletionID(id int) completionOption {
	return func(m *CompletionMutation) {
		var (
			err   error
			once  sync.Once
			value *Completion
		)
		m.oldValue = func(ctx context.Context) (*Completion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Completion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCompletion sets the old Completion of the mutation.
func withCompletion(node *Completion) completionOption {
	return func(m *CompletionMutation) {
		m.oldValue = func(context.Context) (*Completion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CompletionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CompletionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CompletionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CompletionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Completion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetResultID sets the "result_id" field.
func (m *CompletionMutation) SetResultID(s string) {
	m.result_id = &s
}

// ResultID returns the value of the "result_id" field in the mutation.
func (m *CompletionMutation) ResultID() (r string, exists bool) {
	v := m.result_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResultID returns the old "result_id" field's value of the Completion entity.
// If the Completion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionMutation) OldResultID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultID: %w", err)
	}
	return oldValue.ResultID, nil
}

// ResetResultID resets all changes to the "result_id" field.
func (m *CompletionMutation) ResetResultID() {
	m.result_id = nil
}

// SetAnswers sets the "answers" field.
func (m *CompletionMutation) SetAnswers(sr []schema.AnswerRecord) {
	m.answers = &sr
	m.appendanswers = nil
}

// Answers returns the value of the "answers" field in the mutation.
func (m *CompletionMutation) Answers() (r []schema.AnswerRecord, exists bool) {
	v := m.answers
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswers returns the old "answers" field's value of the Completion entity.
// If the Completion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionMutation) OldAnswers(ctx context.Context) (v []schema.AnswerRecord, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswers: %w", err)
	}
	return oldValue.Answers, nil
}

// AppendAnswers adds sr to the "answers" field.
func (m *CompletionMutation) AppendAnswers(sr []schema.AnswerRecord) {
	m.appendanswers = append(m.appendanswers, sr...)
}

// AppendedAnswers returns the list of values that were appended to the "answers" field in this mutation.
func (m *CompletionMutation) AppendedAnswers() ([]schema.AnswerRecord, bool) {
	if len(m.appendanswers) == 0 {
		return nil, false
	}
	return m.appendanswers, true
}

// ClearAnswers clears the value of the "answers" field.
func (m *CompletionMutation) ClearAnswers() {
	m.answers = nil
	m.appendanswers = nil
	m.clearedFields[completion.FieldAnswers] = struct{}{}
}

// AnswersCleared returns if the "answers" field was cleared in this mutation.
func (m *CompletionMutation) AnswersCleared() bool {
	_, ok := m.clearedFields[completion.FieldAnswers]
	return ok
}

// ResetAnswers resets all changes to the "answers" field.
func (m *CompletionMutation) ResetAnswers() {
	m.answers = nil
	m.appendanswers = nil
	delete(m.clearedFields, completion.FieldAnswers)
}

// SetCompletedAt sets the "completed_at" field.
func (m *CompletionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *CompletionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Completion entity.
// If the Completion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionMutation) OldCompletedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *CompletionMutation) ResetCompletedAt() {
	m.completed_at = nil
}

// Where appends a list predicates to the CompletionMutation builder.
func (m *CompletionMutation) Where(ps ...predicate.Completion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CompletionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CompletionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Completion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CompletionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CompletionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Completion).
func (m *CompletionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CompletionMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.result_id != nil {
		fields = append(fields, completion.FieldResultID)
	}
	if m.answers != nil {
		fields = append(fields, completion.FieldAnswers)
	}
	if m.completed_at != nil {
		fields = append(fields, completion.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CompletionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case completion.FieldResultID:
		return m.ResultID()
	case completion.FieldAnswers:
		return m.Answers()
	case completion.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CompletionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case completion.FieldResultID:
		return m.OldResultID(ctx)
	case completion.FieldAnswers:
		return m.OldAnswers(ctx)
	case completion.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Completion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompletionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case completion.FieldResultID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultID(v)
		return nil
	case completion.FieldAnswers:
		v, ok := value.([]schema.AnswerRecord)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswers(v)
		return nil
	case completion.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Completion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CompletionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CompletionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompletionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Completion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CompletionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(completion.FieldAnswers) {
		fields = append(fields, completion.FieldAnswers)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CompletionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CompletionMutation) ClearField(name string) error {
	switch name {
	case completion.FieldAnswers:
		m.ClearAnswers()
		return nil
	}
	return fmt.Errorf("unknown Completion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CompletionMutation) ResetField(name string) error {
	switch name {
	case completion.FieldResultID:
		m.ResetResultID()
		return nil
	case completion.FieldAnswers:
		m.ResetAnswers()
		return nil
	case completion.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Completion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CompletionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CompletionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CompletionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CompletionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CompletionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CompletionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CompletionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Completion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CompletionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Completion edge %s", name)
}

// SignupEventMutation represents an operation that mutates the SignupEvent nodes in the graph.
type SignupEventMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	email               *string
	personality_type_id *string
	session_id          *string
	timestamp           *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*SignupEvent, error)
	predicates          []predicate.SignupEvent
}

var _ ent.Mutation = (*SignupEventMutation)(nil)

// signupeventOption allows management of the mutation configuration using functional options.
type signupeventOption func(*SignupEventMutation)

// newSignupEventMutation creates new mutation for the SignupEvent entity.
func newSignupEventMutation(c config, op Op, opts ...signupeventOption) *SignupEventMutation {
	m := &SignupEventMutation{
		config:        c,
		op:            op,
		typ:           TypeSignupEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSignupEventID sets the ID field of the mutation.
func withSignupEventID(id int) signupeventOption {
	return func(m *SignupEventMutation) {
		var (
			err   error
			once  sync.Once
			value *SignupEvent
		)
		m.oldValue = func(ctx context.Context) (*SignupEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SignupEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSignupEvent sets the old SignupEvent of the mutation.
func withSignupEvent(node *SignupEvent) signupeventOption {
	return func(m *SignupEventMutation) {
		m.oldValue = func(context.Context) (*SignupEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SignupEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SignupEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SignupEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SignupEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SignupEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmail sets the "email" field.
func (m *SignupEventMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *SignupEventMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the SignupEvent entity.
// If the SignupEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignupEventMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *SignupEventMutation) ResetEmail() {
	m.email = nil
}

// SetPersonalityTypeID sets the "personality_type_id" field.
func (m *SignupEventMutation) SetPersonalityTypeID(s string) {
	m.personality_type_id = &s
}

// PersonalityTypeID returns the value of the "personality_type_id" field in the mutation.
func (m *SignupEventMutation) PersonalityTypeID() (r string, exists bool) {
	v := m.personality_type_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPersonalityTypeID returns the old "personality_type_id" field's value of the SignupEvent entity.
// If the SignupEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignupEventMutation) OldPersonalityTypeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPersonalityTypeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPersonalityTypeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPersonalityTypeID: %w", err)
	}
	return oldValue.PersonalityTypeID, nil
}

// ResetPersonalityTypeID resets all changes to the "personality_type_id" field.
func (m *SignupEventMutation) ResetPersonalityTypeID() {
	m.personality_type_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *SignupEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SignupEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SignupEvent entity.
// If the SignupEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignupEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SignupEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *SignupEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *SignupEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the SignupEvent entity.
// If the SignupEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignupEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *SignupEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// Where appends a list predicates to the SignupEventMutation builder.
func (m *SignupEventMutation) Where(ps ...predicate.SignupEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SignupEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SignupEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SignupEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SignupEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SignupEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SignupEvent).
func (m *SignupEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SignupEventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.email != nil {
		fields = append(fields, signupevent.FieldEmail)
	}
	if m.personality_type_id != nil {
		fields = append(fields, signupevent.FieldPersonalityTypeID)
	}
	if m.session_id != nil {
		fields = append(fields, signupevent.FieldSessionID)
	}
	if m.timestamp != nil {
		fields = append(fields, signupevent.FieldTimestamp)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SignupEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case signupevent.FieldEmail:
		return m.Email()
	case signupevent.FieldPersonalityTypeID:
		return m.PersonalityTypeID()
	case signupevent.FieldSessionID:
		return m.SessionID()
	case signupevent.FieldTimestamp:
		return m.Timestamp()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SignupEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case signupevent.FieldEmail:
		return m.OldEmail(ctx)
	case signupevent.FieldPersonalityTypeID:
		return m.OldPersonalityTypeID(ctx)
	case signupevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case signupevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	}
	return nil, fmt.Errorf("unknown SignupEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SignupEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case signupevent.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case signupevent.FieldPersonalityTypeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPersonalityTypeID(v)
		return nil
	case signupevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case signupevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	}
	return fmt.Errorf("unknown SignupEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SignupEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SignupEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SignupEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SignupEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SignupEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SignupEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SignupEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SignupEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SignupEventMutation) ResetField(name string) error {
	switch name {
	case signupevent.FieldEmail:
		m.ResetEmail()
		return nil
	case signupevent.FieldPersonalityTypeID:
		m.ResetPersonalityTypeID()
		return nil
	case signupevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case signupevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	}
	return fmt.Errorf("unknown SignupEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SignupEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SignupEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SignupEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SignupEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SignupEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SignupEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SignupEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SignupEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SignupEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SignupEvent edge %s", name)
}
