// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autocare/platetrack/gen/ent/detectionjob"
	"github.com/autocare/platetrack/gen/ent/sourceimage"
	"github.com/google/uuid"
)

// DetectionJobCreate is the builder for creating a DetectionJob entity.
type DetectionJobCreate struct {
	config
	mutation *DetectionJobMutation
	hooks    []Hook
}

// SetImageID sets the "image_id" field.
func (_c *DetectionJobCreate) SetImageID(v uuid.UUID) *DetectionJobCreate {
	_c.mutation.SetImageID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *DetectionJobCreate) SetStatus(v string) *DetectionJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *DetectionJobCreate) SetStartedAt(v time.Time) *DetectionJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *DetectionJobCreate) SetNillableStartedAt(v *time.Time) *DetectionJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *DetectionJobCreate) SetFinishedAt(v time.Time) *DetectionJobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *DetectionJobCreate) SetNillableFinishedAt(v *time.Time) *DetectionJobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetPlate sets the "plate" field.
func (_c *DetectionJobCreate) SetPlate(v string) *DetectionJobCreate {
	_c.mutation.SetPlate(v)
	return _c
}

// SetNillablePlate sets the "plate" field if the given value is not nil.
func (_c *DetectionJobCreate) SetNillablePlate(v *string) *DetectionJobCreate {
	if v != nil {
		_c.SetPlate(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *DetectionJobCreate) SetConfidence(v float64) *DetectionJobCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *DetectionJobCreate) SetNillableConfidence(v *float64) *DetectionJobCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetMinConfidence sets the "min_confidence" field.
func (_c *DetectionJobCreate) SetMinConfidence(v float64) *DetectionJobCreate {
	_c.mutation.SetMinConfidence(v)
	return _c
}

// SetNillableMinConfidence sets the "min_confidence" field if the given value is not nil.
func (_c *DetectionJobCreate) SetNillableMinConfidence(v *float64) *DetectionJobCreate {
	if v != nil {
		_c.SetMinConfidence(*v)
	}
	return _c
}

// SetNeedsReview sets the "needs_review" field.
func (_c *DetectionJobCreate) SetNeedsReview(v bool) *DetectionJobCreate {
	_c.mutation.SetNeedsReview(v)
	return _c
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_c *DetectionJobCreate) SetNillableNeedsReview(v *bool) *DetectionJobCreate {
	if v != nil {
		_c.SetNeedsReview(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *DetectionJobCreate) SetAttempts(v json.RawMessage) *DetectionJobCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *DetectionJobCreate) SetErrorMessage(v string) *DetectionJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *DetectionJobCreate) SetNillableErrorMessage(v *string) *DetectionJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DetectionJobCreate) SetID(v uuid.UUID) *DetectionJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DetectionJobCreate) SetNillableID(v *uuid.UUID) *DetectionJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetImage sets the "image" edge to the SourceImage entity.
func (_c *DetectionJobCreate) SetImage(v *SourceImage) *DetectionJobCreate {
	return _c.SetImageID(v.ID)
}

// Mutation returns the DetectionJobMutation object of the builder.
func (_c *DetectionJobCreate) Mutation() *DetectionJobMutation {
	return _c.mutation
}

// Save creates the DetectionJob in the database.
func (_c *DetectionJobCreate) Save(ctx context.Context) (*DetectionJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DetectionJobCreate) SaveX(ctx context.Context) *DetectionJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DetectionJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DetectionJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DetectionJobCreate) defaults() {
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := detectionjob.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.MinConfidence(); !ok {
		v := detectionjob.DefaultMinConfidence
		_c.mutation.SetMinConfidence(v)
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		v := detectionjob.DefaultNeedsReview
		_c.mutation.SetNeedsReview(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := detectionjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DetectionJobCreate) check() error {
	if _, ok := _c.mutation.ImageID(); !ok {
		return &ValidationError{Name: "image_id", err: errors.New(`ent: missing required field "DetectionJob.image_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "DetectionJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := detectionjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DetectionJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "DetectionJob.started_at"`)}
	}
	if _, ok := _c.mutation.MinConfidence(); !ok {
		return &ValidationError{Name: "min_confidence", err: errors.New(`ent: missing required field "DetectionJob.min_confidence"`)}
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		return &ValidationError{Name: "needs_review", err: errors.New(`ent: missing required field "DetectionJob.needs_review"`)}
	}
	if len(_c.mutation.ImageIDs()) == 0 {
		return &ValidationError{Name: "image", err: errors.New(`ent: missing required edge "DetectionJob.image"`)}
	}
	return nil
}

func (_c *DetectionJobCreate) sqlSave(ctx context.Context) (*DetectionJob, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DetectionJobCreate) createSpec() (*DetectionJob, *sqlgraph.CreateSpec) {
	var (
		_node = &DetectionJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(detectionjob.Table, sqlgraph.NewFieldSpec(detectionjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(detectionjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(detectionjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(detectionjob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.Plate(); ok {
		_spec.SetField(detectionjob.FieldPlate, field.TypeString, value)
		_node.Plate = &value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(detectionjob.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = &value
	}
	if value, ok := _c.mutation.MinConfidence(); ok {
		_spec.SetField(detectionjob.FieldMinConfidence, field.TypeFloat64, value)
		_node.MinConfidence = value
	}
	if value, ok := _c.mutation.NeedsReview(); ok {
		_spec.SetField(detectionjob.FieldNeedsReview, field.TypeBool, value)
		_node.NeedsReview = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(detectionjob.FieldAttempts, field.TypeJSON, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(detectionjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if nodes := _c.mutation.ImageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   detectionjob.ImageTable,
			Columns: []string{detectionjob.ImageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sourceimage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ImageID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DetectionJobCreateBulk is the builder for creating many DetectionJob entities in bulk.
type DetectionJobCreateBulk struct {
	config
	err      error
	builders []*DetectionJobCreate
}

// Save creates the DetectionJob entities in the database.
func (_c *DetectionJobCreateBulk) Save(ctx context.Context) ([]*DetectionJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DetectionJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DetectionJobMutation)
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
func (_c *DetectionJobCreateBulk) SaveX(ctx context.Context) []*DetectionJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DetectionJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DetectionJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
