// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/autocare/platetrack/gen/ent/detectionjob"
	"github.com/autocare/platetrack/gen/ent/predicate"
	"github.com/autocare/platetrack/gen/ent/sourceimage"
	"github.com/google/uuid"
)

// DetectionJobUpdate is the builder for updating DetectionJob entities.
type DetectionJobUpdate struct {
	config
	hooks    []Hook
	mutation *DetectionJobMutation
}

// Where appends a list predicates to the DetectionJobUpdate builder.
func (_u *DetectionJobUpdate) Where(ps ...predicate.DetectionJob) *DetectionJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetImageID sets the "image_id" field.
func (_u *DetectionJobUpdate) SetImageID(v uuid.UUID) *DetectionJobUpdate {
	_u.mutation.SetImageID(v)
	return _u
}

// SetNillableImageID sets the "image_id" field if the given value is not nil.
func (_u *DetectionJobUpdate) SetNillableImageID(v *uuid.UUID) *DetectionJobUpdate {
	if v != nil {
		_u.SetImageID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DetectionJobUpdate) SetStatus(v string) *DetectionJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DetectionJobUpdate) SetNillableStatus(v *string) *DetectionJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *DetectionJobUpdate) SetStartedAt(v time.Time) *DetectionJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *DetectionJobUpdate) SetNillableStartedAt(v *time.Time) *DetectionJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *DetectionJobUpdate) SetFinishedAt(v time.Time) *DetectionJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *DetectionJobUpdate) SetNillableFinishedAt(v *time.Time) *DetectionJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *DetectionJobUpdate) ClearFinishedAt() *DetectionJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetPlate sets the "plate" field.
func (_u *DetectionJobUpdate) SetPlate(v string) *DetectionJobUpdate {
	_u.mutation.SetPlate(v)
	return _u
}

// SetNillablePlate sets the "plate" field if the given value is not nil.
func (_u *DetectionJobUpdate) SetNillablePlate(v *string) *DetectionJobUpdate {
	if v != nil {
		_u.SetPlate(*v)
	}
	return _u
}

// ClearPlate clears the value of the "plate" field.
func (_u *DetectionJobUpdate) ClearPlate() *DetectionJobUpdate {
	_u.mutation.ClearPlate()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *DetectionJobUpdate) SetConfidence(v float64) *DetectionJobUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *DetectionJobUpdate) SetNillableConfidence(v *float64) *DetectionJobUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *DetectionJobUpdate) AddConfidence(v float64) *DetectionJobUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *DetectionJobUpdate) ClearConfidence() *DetectionJobUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetMinConfidence sets the "min_confidence" field.
func (_u *DetectionJobUpdate) SetMinConfidence(v float64) *DetectionJobUpdate {
	_u.mutation.ResetMinConfidence()
	_u.mutation.SetMinConfidence(v)
	return _u
}

// SetNillableMinConfidence sets the "min_confidence" field if the given value is not nil.
func (_u *DetectionJobUpdate) SetNillableMinConfidence(v *float64) *DetectionJobUpdate {
	if v != nil {
		_u.SetMinConfidence(*v)
	}
	return _u
}

// AddMinConfidence adds value to the "min_confidence" field.
func (_u *DetectionJobUpdate) AddMinConfidence(v float64) *DetectionJobUpdate {
	_u.mutation.AddMinConfidence(v)
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *DetectionJobUpdate) SetNeedsReview(v bool) *DetectionJobUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *DetectionJobUpdate) SetNillableNeedsReview(v *bool) *DetectionJobUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *DetectionJobUpdate) SetAttempts(v json.RawMessage) *DetectionJobUpdate {
	_u.mutation.SetAttempts(v)
	return _u
}

// AppendAttempts appends value to the "attempts" field.
func (_u *DetectionJobUpdate) AppendAttempts(v json.RawMessage) *DetectionJobUpdate {
	_u.mutation.AppendAttempts(v)
	return _u
}

// ClearAttempts clears the value of the "attempts" field.
func (_u *DetectionJobUpdate) ClearAttempts() *DetectionJobUpdate {
	_u.mutation.ClearAttempts()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DetectionJobUpdate) SetErrorMessage(v string) *DetectionJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DetectionJobUpdate) SetNillableErrorMessage(v *string) *DetectionJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DetectionJobUpdate) ClearErrorMessage() *DetectionJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetImage sets the "image" edge to the SourceImage entity.
func (_u *DetectionJobUpdate) SetImage(v *SourceImage) *DetectionJobUpdate {
	return _u.SetImageID(v.ID)
}

// Mutation returns the DetectionJobMutation object of the builder.
func (_u *DetectionJobUpdate) Mutation() *DetectionJobMutation {
	return _u.mutation
}

// ClearImage clears the "image" edge to the SourceImage entity.
func (_u *DetectionJobUpdate) ClearImage() *DetectionJobUpdate {
	_u.mutation.ClearImage()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DetectionJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DetectionJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DetectionJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DetectionJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DetectionJobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := detectionjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DetectionJob.status": %w`, err)}
		}
	}
	if _u.mutation.ImageCleared() && len(_u.mutation.ImageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DetectionJob.image"`)
	}
	return nil
}

func (_u *DetectionJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(detectionjob.Table, detectionjob.Columns, sqlgraph.NewFieldSpec(detectionjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(detectionjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(detectionjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(detectionjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(detectionjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Plate(); ok {
		_spec.SetField(detectionjob.FieldPlate, field.TypeString, value)
	}
	if _u.mutation.PlateCleared() {
		_spec.ClearField(detectionjob.FieldPlate, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(detectionjob.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(detectionjob.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(detectionjob.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MinConfidence(); ok {
		_spec.SetField(detectionjob.FieldMinConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMinConfidence(); ok {
		_spec.AddField(detectionjob.FieldMinConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(detectionjob.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(detectionjob.FieldAttempts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAttempts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, detectionjob.FieldAttempts, value)
		})
	}
	if _u.mutation.AttemptsCleared() {
		_spec.ClearField(detectionjob.FieldAttempts, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(detectionjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(detectionjob.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.ImageCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImageIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{detectionjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DetectionJobUpdateOne is the builder for updating a single DetectionJob entity.
type DetectionJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DetectionJobMutation
}

// SetImageID sets the "image_id" field.
func (_u *DetectionJobUpdateOne) SetImageID(v uuid.UUID) *DetectionJobUpdateOne {
	_u.mutation.SetImageID(v)
	return _u
}

// SetNillableImageID sets the "image_id" field if the given value is not nil.
func (_u *DetectionJobUpdateOne) SetNillableImageID(v *uuid.UUID) *DetectionJobUpdateOne {
	if v != nil {
		_u.SetImageID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DetectionJobUpdateOne) SetStatus(v string) *DetectionJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DetectionJobUpdateOne) SetNillableStatus(v *string) *DetectionJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *DetectionJobUpdateOne) SetStartedAt(v time.Time) *DetectionJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *DetectionJobUpdateOne) SetNillableStartedAt(v *time.Time) *DetectionJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *DetectionJobUpdateOne) SetFinishedAt(v time.Time) *DetectionJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *DetectionJobUpdateOne) SetNillableFinishedAt(v *time.Time) *DetectionJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *DetectionJobUpdateOne) ClearFinishedAt() *DetectionJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetPlate sets the "plate" field.
func (_u *DetectionJobUpdateOne) SetPlate(v string) *DetectionJobUpdateOne {
	_u.mutation.SetPlate(v)
	return _u
}

// SetNillablePlate sets the "plate" field if the given value is not nil.
func (_u *DetectionJobUpdateOne) SetNillablePlate(v *string) *DetectionJobUpdateOne {
	if v != nil {
		_u.SetPlate(*v)
	}
	return _u
}

// ClearPlate clears the value of the "plate" field.
func (_u *DetectionJobUpdateOne) ClearPlate() *DetectionJobUpdateOne {
	_u.mutation.ClearPlate()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *DetectionJobUpdateOne) SetConfidence(v float64) *DetectionJobUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *DetectionJobUpdateOne) SetNillableConfidence(v *float64) *DetectionJobUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *DetectionJobUpdateOne) AddConfidence(v float64) *DetectionJobUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *DetectionJobUpdateOne) ClearConfidence() *DetectionJobUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetMinConfidence sets the "min_confidence" field.
func (_u *DetectionJobUpdateOne) SetMinConfidence(v float64) *DetectionJobUpdateOne {
	_u.mutation.ResetMinConfidence()
	_u.mutation.SetMinConfidence(v)
	return _u
}

// SetNillableMinConfidence sets the "min_confidence" field if the given value is not nil.
func (_u *DetectionJobUpdateOne) SetNillableMinConfidence(v *float64) *DetectionJobUpdateOne {
	if v != nil {
		_u.SetMinConfidence(*v)
	}
	return _u
}

// AddMinConfidence adds value to the "min_confidence" field.
func (_u *DetectionJobUpdateOne) AddMinConfidence(v float64) *DetectionJobUpdateOne {
	_u.mutation.AddMinConfidence(v)
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *DetectionJobUpdateOne) SetNeedsReview(v bool) *DetectionJobUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *DetectionJobUpdateOne) SetNillableNeedsReview(v *bool) *DetectionJobUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *DetectionJobUpdateOne) SetAttempts(v json.RawMessage) *DetectionJobUpdateOne {
	_u.mutation.SetAttempts(v)
	return _u
}

// AppendAttempts appends value to the "attempts" field.
func (_u *DetectionJobUpdateOne) AppendAttempts(v json.RawMessage) *DetectionJobUpdateOne {
	_u.mutation.AppendAttempts(v)
	return _u
}

// ClearAttempts clears the value of the "attempts" field.
func (_u *DetectionJobUpdateOne) ClearAttempts() *DetectionJobUpdateOne {
	_u.mutation.ClearAttempts()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DetectionJobUpdateOne) SetErrorMessage(v string) *DetectionJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DetectionJobUpdateOne) SetNillableErrorMessage(v *string) *DetectionJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DetectionJobUpdateOne) ClearErrorMessage() *DetectionJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetImage sets the "image" edge to the SourceImage entity.
func (_u *DetectionJobUpdateOne) SetImage(v *SourceImage) *DetectionJobUpdateOne {
	return _u.SetImageID(v.ID)
}

// Mutation returns the DetectionJobMutation object of the builder.
func (_u *DetectionJobUpdateOne) Mutation() *DetectionJobMutation {
	return _u.mutation
}

// ClearImage clears the "image" edge to the SourceImage entity.
func (_u *DetectionJobUpdateOne) ClearImage() *DetectionJobUpdateOne {
	_u.mutation.ClearImage()
	return _u
}

// Where appends a list predicates to the DetectionJobUpdate builder.
func (_u *DetectionJobUpdateOne) Where(ps ...predicate.DetectionJob) *DetectionJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DetectionJobUpdateOne) Select(field string, fields ...string) *DetectionJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DetectionJob entity.
func (_u *DetectionJobUpdateOne) Save(ctx context.Context) (*DetectionJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DetectionJobUpdateOne) SaveX(ctx context.Context) *DetectionJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DetectionJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DetectionJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DetectionJobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := detectionjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DetectionJob.status": %w`, err)}
		}
	}
	if _u.mutation.ImageCleared() && len(_u.mutation.ImageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DetectionJob.image"`)
	}
	return nil
}

func (_u *DetectionJobUpdateOne) sqlSave(ctx context.Context) (_node *DetectionJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(detectionjob.Table, detectionjob.Columns, sqlgraph.NewFieldSpec(detectionjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DetectionJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, detectionjob.FieldID)
		for _, f := range fields {
			if !detectionjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != detectionjob.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(detectionjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(detectionjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(detectionjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(detectionjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Plate(); ok {
		_spec.SetField(detectionjob.FieldPlate, field.TypeString, value)
	}
	if _u.mutation.PlateCleared() {
		_spec.ClearField(detectionjob.FieldPlate, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(detectionjob.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(detectionjob.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(detectionjob.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MinConfidence(); ok {
		_spec.SetField(detectionjob.FieldMinConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMinConfidence(); ok {
		_spec.AddField(detectionjob.FieldMinConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(detectionjob.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(detectionjob.FieldAttempts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAttempts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, detectionjob.FieldAttempts, value)
		})
	}
	if _u.mutation.AttemptsCleared() {
		_spec.ClearField(detectionjob.FieldAttempts, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(detectionjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(detectionjob.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.ImageCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImageIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DetectionJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{detectionjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
