// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/autocare/platetrack/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/autocare/platetrack/gen/ent/detectionjob"
	"github.com/autocare/platetrack/gen/ent/sourceimage"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// DetectionJob is the client for interacting with the DetectionJob builders.
	DetectionJob *DetectionJobClient
	// SourceImage is the client for interacting with the SourceImage builders.
	SourceImage *SourceImageClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.DetectionJob = NewDetectionJobClient(c.config)
	c.SourceImage = NewSourceImageClient(c.config)
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
		ctx:          ctx,
		config:       cfg,
		DetectionJob: NewDetectionJobClient(cfg),
		SourceImage:  NewSourceImageClient(cfg),
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
		ctx:          ctx,
		config:       cfg,
		DetectionJob: NewDetectionJobClient(cfg),
		SourceImage:  NewSourceImageClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		DetectionJob.
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
	c.DetectionJob.Use(hooks...)
	c.SourceImage.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.DetectionJob.Intercept(interceptors...)
	c.SourceImage.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DetectionJobMutation:
		return c.DetectionJob.mutate(ctx, m)
	case *SourceImageMutation:
		return c.SourceImage.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DetectionJobClient is a client for the DetectionJob schema.
type DetectionJobClient struct {
	config
}

// NewDetectionJobClient returns a client for the DetectionJob from the given config.
func NewDetectionJobClient(c config) *DetectionJobClient {
	return &DetectionJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `detectionjob.Hooks(f(g(h())))`.
func (c *DetectionJobClient) Use(hooks ...Hook) {
	c.hooks.DetectionJob = append(c.hooks.DetectionJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `detectionjob.Intercept(f(g(h())))`.
func (c *DetectionJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.DetectionJob = append(c.inters.DetectionJob, interceptors...)
}

// Create returns a builder for creating a DetectionJob entity.
func (c *DetectionJobClient) Create() *DetectionJobCreate {
	mutation := newDetectionJobMutation(c.config, OpCreate)
	return &DetectionJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DetectionJob entities.
func (c *DetectionJobClient) CreateBulk(builders ...*DetectionJobCreate) *DetectionJobCreateBulk {
	return &DetectionJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DetectionJobClient) MapCreateBulk(slice any, setFunc func(*DetectionJobCreate, int)) *DetectionJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DetectionJobCreateBulk{err: fmt.Errorf("calling to DetectionJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DetectionJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DetectionJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DetectionJob.
func (c *DetectionJobClient) Update() *DetectionJobUpdate {
	mutation := newDetectionJobMutation(c.config, OpUpdate)
	return &DetectionJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DetectionJobClient) UpdateOne(_m *DetectionJob) *DetectionJobUpdateOne {
	mutation := newDetectionJobMutation(c.config, OpUpdateOne, withDetectionJob(_m))
	return &DetectionJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DetectionJobClient) UpdateOneID(id uuid.UUID) *DetectionJobUpdateOne {
	mutation := newDetectionJobMutation(c.config, OpUpdateOne, withDetectionJobID(id))
	return &DetectionJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DetectionJob.
func (c *DetectionJobClient) Delete() *DetectionJobDelete {
	mutation := newDetectionJobMutation(c.config, OpDelete)
	return &DetectionJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DetectionJobClient) DeleteOne(_m *DetectionJob) *DetectionJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DetectionJobClient) DeleteOneID(id uuid.UUID) *DetectionJobDeleteOne {
	builder := c.Delete().Where(detectionjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DetectionJobDeleteOne{builder}
}

// Query returns a query builder for DetectionJob.
func (c *DetectionJobClient) Query() *DetectionJobQuery {
	return &DetectionJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDetectionJob},
		inters: c.Interceptors(),
	}
}

// Get returns a DetectionJob entity by its id.
func (c *DetectionJobClient) Get(ctx context.Context, id uuid.UUID) (*DetectionJob, error) {
	return c.Query().Where(detectionjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DetectionJobClient) GetX(ctx context.Context, id uuid.UUID) *DetectionJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryImage queries the image edge of a DetectionJob.
func (c *DetectionJobClient) QueryImage(_m *DetectionJob) *SourceImageQuery {
	query := (&SourceImageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(detectionjob.Table, detectionjob.FieldID, id),
			sqlgraph.To(sourceimage.Table, sourceimage.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, detectionjob.ImageTable, detectionjob.ImageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DetectionJobClient) Hooks() []Hook {
	return c.hooks.DetectionJob
}

// Interceptors returns the client interceptors.
func (c *DetectionJobClient) Interceptors() []Interceptor {
	return c.inters.DetectionJob
}

func (c *DetectionJobClient) mutate(ctx context.Context, m *DetectionJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DetectionJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DetectionJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DetectionJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DetectionJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DetectionJob mutation op: %q", m.Op())
	}
}

// SourceImageClient is a client for the SourceImage schema.
type SourceImageClient struct {
	config
}

// NewSourceImageClient returns a client for the SourceImage from the given config.
func NewSourceImageClient(c config) *SourceImageClient {
	return &SourceImageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sourceimage.Hooks(f(g(h())))`.
func (c *SourceImageClient) Use(hooks ...Hook) {
	c.hooks.SourceImage = append(c.hooks.SourceImage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sourceimage.Intercept(f(g(h())))`.
func (c *SourceImageClient) Intercept(interceptors ...Interceptor) {
	c.inters.SourceImage = append(c.inters.SourceImage, interceptors...)
}

// Create returns a builder for creating a SourceImage entity.
func (c *SourceImageClient) Create() *SourceImageCreate {
	mutation := newSourceImageMutation(c.config, OpCreate)
	return &SourceImageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SourceImage entities.
func (c *SourceImageClient) CreateBulk(builders ...*SourceImageCreate) *SourceImageCreateBulk {
	return &SourceImageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SourceImageClient) MapCreateBulk(slice any, setFunc func(*SourceImageCreate, int)) *SourceImageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SourceImageCreateBulk{err: fmt.Errorf("calling to SourceImageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SourceImageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SourceImageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SourceImage.
func (c *SourceImageClient) Update() *SourceImageUpdate {
	mutation := newSourceImageMutation(c.config, OpUpdate)
	return &SourceImageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SourceImageClient) UpdateOne(_m *SourceImage) *SourceImageUpdateOne {
	mutation := newSourceImageMutation(c.config, OpUpdateOne, withSourceImage(_m))
	return &SourceImageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SourceImageClient) UpdateOneID(id uuid.UUID) *SourceImageUpdateOne {
	mutation := newSourceImageMutation(c.config, OpUpdateOne, withSourceImageID(id))
	return &SourceImageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SourceImage.
func (c *SourceImageClient) Delete() *SourceImageDelete {
	mutation := newSourceImageMutation(c.config, OpDelete)
	return &SourceImageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SourceImageClient) DeleteOne(_m *SourceImage) *SourceImageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SourceImageClient) DeleteOneID(id uuid.UUID) *SourceImageDeleteOne {
	builder := c.Delete().Where(sourceimage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SourceImageDeleteOne{builder}
}

// Query returns a query builder for SourceImage.
func (c *SourceImageClient) Query() *SourceImageQuery {
	return &SourceImageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSourceImage},
		inters: c.Interceptors(),
	}
}

// Get returns a SourceImage entity by its id.
func (c *SourceImageClient) Get(ctx context.Context, id uuid.UUID) (*SourceImage, error) {
	return c.Query().Where(sourceimage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SourceImageClient) GetX(ctx context.Context, id uuid.UUID) *SourceImage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJobs queries the jobs edge of a SourceImage.
func (c *SourceImageClient) QueryJobs(_m *SourceImage) *DetectionJobQuery {
	query := (&DetectionJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sourceimage.Table, sourceimage.FieldID, id),
			sqlgraph.To(detectionjob.Table, detectionjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, sourceimage.JobsTable, sourceimage.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SourceImageClient) Hooks() []Hook {
	return c.hooks.SourceImage
}

// Interceptors returns the client interceptors.
func (c *SourceImageClient) Interceptors() []Interceptor {
	return c.inters.SourceImage
}

func (c *SourceImageClient) mutate(ctx context.Context, m *SourceImageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SourceImageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SourceImageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SourceImageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SourceImageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SourceImage mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		DetectionJob, SourceImage []ent.Hook
	}
	inters struct {
		DetectionJob, SourceImage []ent.Interceptor
	}
)
