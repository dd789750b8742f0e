// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/willowed/persona/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/willowed/persona/ent/completion"
	"github.com/willowed/persona/ent/signupevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Completion is the client for interacting with the Completion builders.
	Completion *CompletionClient
	// SignupEvent is the client for interacting with the SignupEvent builders.
	SignupEvent *SignupEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Completion = NewCompletionClient(c.config)
	c.SignupEvent = NewSignupEventClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:         ctx,
		config:      cfg,
		Completion:  NewCompletionClient(cfg),
		SignupEvent: NewSignupEventClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:         ctx,
		config:      cfg,
		Completion:  NewCompletionClient(cfg),
		SignupEvent: NewSignupEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Completion.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.Completion.Use(hooks...)
	c.SignupEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Completion.Intercept(interceptors...)
	c.SignupEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CompletionMutation:
		return c.Completion.mutate(ctx, m)
	case *SignupEventMutation:
		return c.SignupEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CompletionClient is a client for the Completion schema.
type CompletionClient struct {
	config
}

// NewCompletionClient returns a client for the Completion from the given config.
func NewCompletionClient(c config) *CompletionClient {
	return &CompletionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `completion.Hooks(f(g(h())))`.
func (c *CompletionClient) Use(hooks ...Hook) {
	c.hooks.Completion = append(c.hooks.Completion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `completion.Intercept(f(g(h())))`.
func (c *CompletionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Completion = append(c.inters.Completion, interceptors...)
}

// Create returns a builder for creating a Completion entity.
func (c *CompletionClient) Create() *CompletionCreate {
	mutation := newCompletionMutation(c.config, OpCreate)
	return &CompletionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Completion entities.
func (c *CompletionClient) CreateBulk(builders ...*CompletionCreate) *CompletionCreateBulk {
	return &CompletionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CompletionClient) MapCreateBulk(slice any, setFunc func(*CompletionCreate, int)) *CompletionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CompletionCreateBulk{err: fmt.Errorf("calling to CompletionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CompletionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CompletionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Completion.
func (c *CompletionClient) Update() *CompletionUpdate {
	mutation := newCompletionMutation(c.config, OpUpdate)
	return &CompletionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CompletionClient) UpdateOne(_m *Completion) *CompletionUpdateOne {
	mutation := newCompletionMutation(c.config, OpUpdateOne, withCompletion(_m))
	return &CompletionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CompletionClient) UpdateOneID(id int) *CompletionUpdateOne {
	mutation := newCompletionMutation(c.config, OpUpdateOne, withCompletionID(id))
	return &CompletionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Completion.
func (c *CompletionClient) Delete() *CompletionDelete {
	mutation := newCompletionMutation(c.config, OpDelete)
	return &CompletionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CompletionClient) DeleteOne(_m *Completion) *CompletionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CompletionClient) DeleteOneID(id int) *CompletionDeleteOne {
	builder := c.Delete().Where(completion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CompletionDeleteOne{builder}
}

// Query returns a query builder for Completion.
func (c *CompletionClient) Query() *CompletionQuery {
	return &CompletionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCompletion},
		inters: c.Interceptors(),
	}
}

// Get returns a Completion entity by its id.
func (c *CompletionClient) Get(ctx context.Context, id int) (*Completion, error) {
	return c.Query().Where(completion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CompletionClient) GetX(ctx context.Context, id int) *Completion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CompletionClient) Hooks() []Hook {
	return c.hooks.Completion
}

// Interceptors returns the client interceptors.
func (c *CompletionClient) Interceptors() []Interceptor {
	return c.inters.Completion
}

func (c *CompletionClient) mutate(ctx context.Context, m *CompletionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CompletionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CompletionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CompletionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CompletionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Completion mutation op: %q", m.Op())
	}
}

// SignupEventClient is a client for the SignupEvent schema.
type SignupEventClient struct {
	config
}

// NewSignupEventClient returns a client for the SignupEvent from the given config.
func NewSignupEventClient(c config) *SignupEventClient {
	return &SignupEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `signupevent.Hooks(f(g(h())))`.
func (c *SignupEventClient) Use(hooks ...Hook) {
	c.hooks.SignupEvent = append(c.hooks.SignupEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `signupevent.Intercept(f(g(h())))`.
func (c *SignupEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.SignupEvent = append(c.inters.SignupEvent, interceptors...)
}

// Create returns a builder for creating a SignupEvent entity.
func (c *SignupEventClient) Create() *SignupEventCreate {
	mutation := newSignupEventMutation(c.config, OpCreate)
	return &SignupEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SignupEvent entities.
func (c *SignupEventClient) CreateBulk(builders ...*SignupEventCreate) *SignupEventCreateBulk {
	return &SignupEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SignupEventClient) MapCreateBulk(slice any, setFunc func(*SignupEventCreate, int)) *SignupEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SignupEventCreateBulk{err: fmt.Errorf("calling to SignupEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SignupEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SignupEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SignupEvent.
func (c *SignupEventClient) Update() *SignupEventUpdate {
	mutation := newSignupEventMutation(c.config, OpUpdate)
	return &SignupEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SignupEventClient) UpdateOne(_m *SignupEvent) *SignupEventUpdateOne {
	mutation := newSignupEventMutation(c.config, OpUpdateOne, withSignupEvent(_m))
	return &SignupEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SignupEventClient) UpdateOneID(id int) *SignupEventUpdateOne {
	mutation := newSignupEventMutation(c.config, OpUpdateOne, withSignupEventID(id))
	return &SignupEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SignupEvent.
func (c *SignupEventClient) Delete() *SignupEventDelete {
	mutation := newSignupEventMutation(c.config, OpDelete)
	return &SignupEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SignupEventClient) DeleteOne(_m *SignupEvent) *SignupEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SignupEventClient) DeleteOneID(id int) *SignupEventDeleteOne {
	builder := c.Delete().Where(signupevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SignupEventDeleteOne{builder}
}

// Query returns a query builder for SignupEvent.
func (c *SignupEventClient) Query() *SignupEventQuery {
	return &SignupEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSignupEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a SignupEvent entity by its id.
func (c *SignupEventClient) Get(ctx context.Context, id int) (*SignupEvent, error) {
	return c.Query().Where(signupevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SignupEventClient) GetX(ctx context.Context, id int) *SignupEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SignupEventClient) Hooks() []Hook {
	return c.hooks.SignupEvent
}

// Interceptors returns the client interceptors.
func (c *SignupEventClient) Interceptors() []Interceptor {
	return c.inters.SignupEvent
}

func (c *SignupEventClient) mutate(ctx context.Context, m *SignupEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SignupEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SignupEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SignupEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SignupEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SignupEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Completion, SignupEvent []ent.Hook
	}
	inters struct {
		Completion, SignupEvent []ent.Interceptor
	}
)
