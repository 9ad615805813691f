// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/autocare/platetrack/gen/ent/detectionjob"
	"github.com/autocare/platetrack/gen/ent/predicate"
	"github.com/autocare/platetrack/gen/ent/sourceimage"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDetectionJob = "DetectionJob"
	TypeSourceImage  = "SourceImage"
)

// DetectionJobMutation represents an operation that mutates the DetectionJob nodes in the graph.
type DetectionJobMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	status            *string
	started_at        *time.Time
	finished_at       *time.Time
	plate             *string
	confidence        *float64
	addconfidence     *float64
	min_confidence    *float64
	addmin_confidence *float64
	needs_review      *bool
	attempts          *json.RawMessage
	appendattempts    json.RawMessage
	error_message     *string
	clearedFields     map[string]struct{}
	image             *uuid.UUID
	clearedimage      bool
	done              bool
	oldValue          func(context.Context) (*DetectionJob, error)
	predicates        []predicate.DetectionJob
}

var _ ent.Mutation = (*DetectionJobMutation)(nil)

// detectionjobOption allows management of the mutation configuration using functional options.
type detectionjobOption func(*DetectionJobMutation)

// newDetectionJobMutation creates new mutation for the DetectionJob entity.
func newDetectionJobMutation(c config, op Op, opts ...detectionjobOption) *DetectionJobMutation {
	m := &DetectionJobMutation{
		config:        c,
		op:            op,
		typ:           TypeDetectionJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDetectionJobID sets the ID field of the mutation.
func withDetectionJobID(id uuid.UUID) detectionjobOption {
	return func(m *DetectionJobMutation) {
		var (
			err   error
			once  sync.Once
			value *DetectionJob
		)
		m.oldValue = func(ctx context.Context) (*DetectionJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DetectionJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDetectionJob sets the old DetectionJob of the mutation.
func withDetectionJob(node *DetectionJob) detectionjobOption {
	return func(m *DetectionJobMutation) {
		m.oldValue = func(context.Context) (*DetectionJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DetectionJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DetectionJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DetectionJob entities.
func (m *DetectionJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DetectionJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DetectionJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DetectionJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetImageID sets the "image_id" field.
func (m *DetectionJobMutation) SetImageID(u uuid.UUID) {
	m.image = &u
}

// ImageID returns the value of the "image_id" field in the mutation.
func (m *DetectionJobMutation) ImageID() (r uuid.UUID, exists bool) {
	v := m.image
	if v == nil {
		return
	}
	return *v, true
}

// OldImageID returns the old "image_id" field's value of the DetectionJob entity.
// If the DetectionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionJobMutation) OldImageID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageID: %w", err)
	}
	return oldValue.ImageID, nil
}

// ResetImageID resets all changes to the "image_id" field.
func (m *DetectionJobMutation) ResetImageID() {
	m.image = nil
}

// SetStatus sets the "status" field.
func (m *DetectionJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *DetectionJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the DetectionJob entity.
// If the DetectionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DetectionJobMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *DetectionJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *DetectionJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the DetectionJob entity.
// If the DetectionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionJobMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *DetectionJobMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *DetectionJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *DetectionJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the DetectionJob entity.
// If the DetectionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *DetectionJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[detectionjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *DetectionJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[detectionjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *DetectionJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, detectionjob.FieldFinishedAt)
}

// SetPlate sets the "plate" field.
func (m *DetectionJobMutation) SetPlate(s string) {
	m.plate = &s
}

// Plate returns the value of the "plate" field in the mutation.
func (m *DetectionJobMutation) Plate() (r string, exists bool) {
	v := m.plate
	if v == nil {
		return
	}
	return *v, true
}

// OldPlate returns the old "plate" field's value of the DetectionJob entity.
// If the DetectionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionJobMutation) OldPlate(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlate: %w", err)
	}
	return oldValue.Plate, nil
}

// ClearPlate clears the value of the "plate" field.
func (m *DetectionJobMutation) ClearPlate() {
	m.plate = nil
	m.clearedFields[detectionjob.FieldPlate] = struct{}{}
}

// PlateCleared returns if the "plate" field was cleared in this mutation.
func (m *DetectionJobMutation) PlateCleared() bool {
	_, ok := m.clearedFields[detectionjob.FieldPlate]
	return ok
}

// ResetPlate resets all changes to the "plate" field.
func (m *DetectionJobMutation) ResetPlate() {
	m.plate = nil
	delete(m.clearedFields, detectionjob.FieldPlate)
}

// SetConfidence sets the "confidence" field.
func (m *DetectionJobMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *DetectionJobMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the DetectionJob entity.
// If the DetectionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionJobMutation) OldConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *DetectionJobMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *DetectionJobMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *DetectionJobMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[detectionjob.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *DetectionJobMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[detectionjob.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *DetectionJobMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, detectionjob.FieldConfidence)
}

// SetMinConfidence sets the "min_confidence" field.
func (m *DetectionJobMutation) SetMinConfidence(f float64) {
	m.min_confidence = &f
	m.addmin_confidence = nil
}

// MinConfidence returns the value of the "min_confidence" field in the mutation.
func (m *DetectionJobMutation) MinConfidence() (r float64, exists bool) {
	v := m.min_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldMinConfidence returns the old "min_confidence" field's value of the DetectionJob entity.
// If the DetectionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionJobMutation) OldMinConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinConfidence: %w", err)
	}
	return oldValue.MinConfidence, nil
}

// AddMinConfidence adds f to the "min_confidence" field.
func (m *DetectionJobMutation) AddMinConfidence(f float64) {
	if m.addmin_confidence != nil {
		*m.addmin_confidence += f
	} else {
		m.addmin_confidence = &f
	}
}

// AddedMinConfidence returns the value that was added to the "min_confidence" field in this mutation.
func (m *DetectionJobMutation) AddedMinConfidence() (r float64, exists bool) {
	v := m.addmin_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetMinConfidence resets all changes to the "min_confidence" field.
func (m *DetectionJobMutation) ResetMinConfidence() {
	m.min_confidence = nil
	m.addmin_confidence = nil
}

// SetNeedsReview sets the "needs_review" field.
func (m *DetectionJobMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *DetectionJobMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the DetectionJob entity.
// If the DetectionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionJobMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *DetectionJobMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// SetAttempts sets the "attempts" field.
func (m *DetectionJobMutation) SetAttempts(jm json.RawMessage) {
	m.attempts = &jm
	m.appendattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *DetectionJobMutation) Attempts() (r json.RawMessage, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the DetectionJob entity.
// If the DetectionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionJobMutation) OldAttempts(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AppendAttempts adds jm to the "attempts" field.
func (m *DetectionJobMutation) AppendAttempts(jm json.RawMessage) {
	m.appendattempts = append(m.appendattempts, jm...)
}

// AppendedAttempts returns the list of values that were appended to the "attempts" field in this mutation.
func (m *DetectionJobMutation) AppendedAttempts() (json.RawMessage, bool) {
	if len(m.appendattempts) == 0 {
		return nil, false
	}
	return m.appendattempts, true
}

// ClearAttempts clears the value of the "attempts" field.
func (m *DetectionJobMutation) ClearAttempts() {
	m.attempts = nil
	m.appendattempts = nil
	m.clearedFields[detectionjob.FieldAttempts] = struct{}{}
}

// AttemptsCleared returns if the "attempts" field was cleared in this mutation.
func (m *DetectionJobMutation) AttemptsCleared() bool {
	_, ok := m.clearedFields[detectionjob.FieldAttempts]
	return ok
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *DetectionJobMutation) ResetAttempts() {
	m.attempts = nil
	m.appendattempts = nil
	delete(m.clearedFields, detectionjob.FieldAttempts)
}

// SetErrorMessage sets the "error_message" field.
func (m *DetectionJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *DetectionJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the DetectionJob entity.
// If the DetectionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *DetectionJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[detectionjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *DetectionJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[detectionjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *DetectionJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, detectionjob.FieldErrorMessage)
}

// ClearImage clears the "image" edge to the SourceImage entity.
func (m *DetectionJobMutation) ClearImage() {
	m.clearedimage = true
	m.clearedFields[detectionjob.FieldImageID] = struct{}{}
}

// ImageCleared reports if the "image" edge to the SourceImage entity was cleared.
func (m *DetectionJobMutation) ImageCleared() bool {
	return m.clearedimage
}

// ImageIDs returns the "image" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ImageID instead. It exists only for internal usage by the builders.
func (m *DetectionJobMutation) ImageIDs() (ids []uuid.UUID) {
	if id := m.image; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetImage resets all changes to the "image" edge.
func (m *DetectionJobMutation) ResetImage() {
	m.image = nil
	m.clearedimage = false
}

// Where appends a list predicates to the DetectionJobMutation builder.
func (m *DetectionJobMutation) Where(ps ...predicate.DetectionJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DetectionJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DetectionJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DetectionJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DetectionJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DetectionJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DetectionJob).
func (m *DetectionJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DetectionJobMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.image != nil {
		fields = append(fields, detectionjob.FieldImageID)
	}
	if m.status != nil {
		fields = append(fields, detectionjob.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, detectionjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, detectionjob.FieldFinishedAt)
	}
	if m.plate != nil {
		fields = append(fields, detectionjob.FieldPlate)
	}
	if m.confidence != nil {
		fields = append(fields, detectionjob.FieldConfidence)
	}
	if m.min_confidence != nil {
		fields = append(fields, detectionjob.FieldMinConfidence)
	}
	if m.needs_review != nil {
		fields = append(fields, detectionjob.FieldNeedsReview)
	}
	if m.attempts != nil {
		fields = append(fields, detectionjob.FieldAttempts)
	}
	if m.error_message != nil {
		fields = append(fields, detectionjob.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DetectionJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case detectionjob.FieldImageID:
		return m.ImageID()
	case detectionjob.FieldStatus:
		return m.Status()
	case detectionjob.FieldStartedAt:
		return m.StartedAt()
	case detectionjob.FieldFinishedAt:
		return m.FinishedAt()
	case detectionjob.FieldPlate:
		return m.Plate()
	case detectionjob.FieldConfidence:
		return m.Confidence()
	case detectionjob.FieldMinConfidence:
		return m.MinConfidence()
	case detectionjob.FieldNeedsReview:
		return m.NeedsReview()
	case detectionjob.FieldAttempts:
		return m.Attempts()
	case detectionjob.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DetectionJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case detectionjob.FieldImageID:
		return m.OldImageID(ctx)
	case detectionjob.FieldStatus:
		return m.OldStatus(ctx)
	case detectionjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case detectionjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case detectionjob.FieldPlate:
		return m.OldPlate(ctx)
	case detectionjob.FieldConfidence:
		return m.OldConfidence(ctx)
	case detectionjob.FieldMinConfidence:
		return m.OldMinConfidence(ctx)
	case detectionjob.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	case detectionjob.FieldAttempts:
		return m.OldAttempts(ctx)
	case detectionjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown DetectionJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DetectionJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case detectionjob.FieldImageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageID(v)
		return nil
	case detectionjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case detectionjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case detectionjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case detectionjob.FieldPlate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlate(v)
		return nil
	case detectionjob.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case detectionjob.FieldMinConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinConfidence(v)
		return nil
	case detectionjob.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	case detectionjob.FieldAttempts:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case detectionjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown DetectionJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DetectionJobMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, detectionjob.FieldConfidence)
	}
	if m.addmin_confidence != nil {
		fields = append(fields, detectionjob.FieldMinConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DetectionJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case detectionjob.FieldConfidence:
		return m.AddedConfidence()
	case detectionjob.FieldMinConfidence:
		return m.AddedMinConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DetectionJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case detectionjob.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case detectionjob.FieldMinConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown DetectionJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DetectionJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(detectionjob.FieldFinishedAt) {
		fields = append(fields, detectionjob.FieldFinishedAt)
	}
	if m.FieldCleared(detectionjob.FieldPlate) {
		fields = append(fields, detectionjob.FieldPlate)
	}
	if m.FieldCleared(detectionjob.FieldConfidence) {
		fields = append(fields, detectionjob.FieldConfidence)
	}
	if m.FieldCleared(detectionjob.FieldAttempts) {
		fields = append(fields, detectionjob.FieldAttempts)
	}
	if m.FieldCleared(detectionjob.FieldErrorMessage) {
		fields = append(fields, detectionjob.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DetectionJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DetectionJobMutation) ClearField(name string) error {
	switch name {
	case detectionjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case detectionjob.FieldPlate:
		m.ClearPlate()
		return nil
	case detectionjob.FieldConfidence:
		m.ClearConfidence()
		return nil
	case detectionjob.FieldAttempts:
		m.ClearAttempts()
		return nil
	case detectionjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown DetectionJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DetectionJobMutation) ResetField(name string) error {
	switch name {
	case detectionjob.FieldImageID:
		m.ResetImageID()
		return nil
	case detectionjob.FieldStatus:
		m.ResetStatus()
		return nil
	case detectionjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case detectionjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case detectionjob.FieldPlate:
		m.ResetPlate()
		return nil
	case detectionjob.FieldConfidence:
		m.ResetConfidence()
		return nil
	case detectionjob.FieldMinConfidence:
		m.ResetMinConfidence()
		return nil
	case detectionjob.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	case detectionjob.FieldAttempts:
		m.ResetAttempts()
		return nil
	case detectionjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown DetectionJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DetectionJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.image != nil {
		edges = append(edges, detectionjob.EdgeImage)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DetectionJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case detectionjob.EdgeImage:
		if id := m.image; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DetectionJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DetectionJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DetectionJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedimage {
		edges = append(edges, detectionjob.EdgeImage)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DetectionJobMutation) EdgeCleared(name string) bool {
	switch name {
	case detectionjob.EdgeImage:
		return m.clearedimage
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DetectionJobMutation) ClearEdge(name string) error {
	switch name {
	case detectionjob.EdgeImage:
		m.ClearImage()
		return nil
	}
	return fmt.Errorf("unknown DetectionJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DetectionJobMutation) ResetEdge(name string) error {
	switch name {
	case detectionjob.EdgeImage:
		m.ResetImage()
		return nil
	}
	return fmt.Errorf("unknown DetectionJob edge %s", name)
}

// SourceImageMutation represents an operation that mutates the SourceImage nodes in the graph.
type SourceImageMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	source_path   *string
	content_hash  *[]byte
	filename      *string
	file_ext      *string
	file_size     *int
	addfile_size  *int
	uploaded_at   *time.Time
	clearedFields map[string]struct{}
	jobs          map[uuid.UUID]struct{}
	removedjobs   map[uuid.UUID]struct{}
	clearedjobs   bool
	done          bool
	oldValue      func(context.Context) (*SourceImage, error)
	predicates    []predicate.SourceImage
}

var _ ent.Mutation = (*SourceImageMutation)(nil)

// sourceimageOption allows management of the mutation configuration using functional options.
type sourceimageOption func(*SourceImageMutation)

// newSourceImageMutation creates new mutation for the SourceImage entity.
func newSourceImageMutation(c config, op Op, opts ...sourceimageOption) *SourceImageMutation {
	m := &SourceImageMutation{
		config:        c,
		op:            op,
		typ:           TypeSourceImage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSourceImageID sets the ID field of the mutation.
func withSourceImageID(id uuid.UUID) sourceimageOption {
	return func(m *SourceImageMutation) {
		var (
			err   error
			once  sync.Once
			value *SourceImage
		)
		m.oldValue = func(ctx context.Context) (*SourceImage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SourceImage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSourceImage sets the old SourceImage of the mutation.
func withSourceImage(node *SourceImage) sourceimageOption {
	return func(m *SourceImageMutation) {
		m.oldValue = func(context.Context) (*SourceImage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SourceImageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SourceImageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SourceImage entities.
func (m *SourceImageMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SourceImageMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SourceImageMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SourceImage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourcePath sets the "source_path" field.
func (m *SourceImageMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *SourceImageMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the SourceImage entity.
// If the SourceImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceImageMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *SourceImageMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetContentHash sets the "content_hash" field.
func (m *SourceImageMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *SourceImageMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the SourceImage entity.
// If the SourceImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceImageMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *SourceImageMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetFilename sets the "filename" field.
func (m *SourceImageMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *SourceImageMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the SourceImage entity.
// If the SourceImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceImageMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *SourceImageMutation) ResetFilename() {
	m.filename = nil
}

// SetFileExt sets the "file_ext" field.
func (m *SourceImageMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *SourceImageMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the SourceImage entity.
// If the SourceImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceImageMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *SourceImageMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetFileSize sets the "file_size" field.
func (m *SourceImageMutation) SetFileSize(i int) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *SourceImageMutation) FileSize() (r int, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the SourceImage entity.
// If the SourceImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceImageMutation) OldFileSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *SourceImageMutation) AddFileSize(i int) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *SourceImageMutation) AddedFileSize() (r int, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *SourceImageMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *SourceImageMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *SourceImageMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the SourceImage entity.
// If the SourceImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceImageMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *SourceImageMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// AddJobIDs adds the "jobs" edge to the DetectionJob entity by ids.
func (m *SourceImageMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the DetectionJob entity.
func (m *SourceImageMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the DetectionJob entity was cleared.
func (m *SourceImageMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the DetectionJob entity by IDs.
func (m *SourceImageMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the DetectionJob entity.
func (m *SourceImageMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *SourceImageMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *SourceImageMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the SourceImageMutation builder.
func (m *SourceImageMutation) Where(ps ...predicate.SourceImage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SourceImageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SourceImageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SourceImage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SourceImageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SourceImageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SourceImage).
func (m *SourceImageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SourceImageMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.source_path != nil {
		fields = append(fields, sourceimage.FieldSourcePath)
	}
	if m.content_hash != nil {
		fields = append(fields, sourceimage.FieldContentHash)
	}
	if m.filename != nil {
		fields = append(fields, sourceimage.FieldFilename)
	}
	if m.file_ext != nil {
		fields = append(fields, sourceimage.FieldFileExt)
	}
	if m.file_size != nil {
		fields = append(fields, sourceimage.FieldFileSize)
	}
	if m.uploaded_at != nil {
		fields = append(fields, sourceimage.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SourceImageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sourceimage.FieldSourcePath:
		return m.SourcePath()
	case sourceimage.FieldContentHash:
		return m.ContentHash()
	case sourceimage.FieldFilename:
		return m.Filename()
	case sourceimage.FieldFileExt:
		return m.FileExt()
	case sourceimage.FieldFileSize:
		return m.FileSize()
	case sourceimage.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SourceImageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sourceimage.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case sourceimage.FieldContentHash:
		return m.OldContentHash(ctx)
	case sourceimage.FieldFilename:
		return m.OldFilename(ctx)
	case sourceimage.FieldFileExt:
		return m.OldFileExt(ctx)
	case sourceimage.FieldFileSize:
		return m.OldFileSize(ctx)
	case sourceimage.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SourceImage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceImageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sourceimage.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case sourceimage.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case sourceimage.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case sourceimage.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case sourceimage.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case sourceimage.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SourceImage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SourceImageMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, sourceimage.FieldFileSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SourceImageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sourceimage.FieldFileSize:
		return m.AddedFileSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceImageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sourceimage.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	}
	return fmt.Errorf("unknown SourceImage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SourceImageMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SourceImageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SourceImageMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SourceImage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SourceImageMutation) ResetField(name string) error {
	switch name {
	case sourceimage.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case sourceimage.FieldContentHash:
		m.ResetContentHash()
		return nil
	case sourceimage.FieldFilename:
		m.ResetFilename()
		return nil
	case sourceimage.FieldFileExt:
		m.ResetFileExt()
		return nil
	case sourceimage.FieldFileSize:
		m.ResetFileSize()
		return nil
	case sourceimage.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown SourceImage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SourceImageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.jobs != nil {
		edges = append(edges, sourceimage.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SourceImageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sourceimage.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SourceImageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedjobs != nil {
		edges = append(edges, sourceimage.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SourceImageMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case sourceimage.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SourceImageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjobs {
		edges = append(edges, sourceimage.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SourceImageMutation) EdgeCleared(name string) bool {
	switch name {
	case sourceimage.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SourceImageMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown SourceImage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SourceImageMutation) ResetEdge(name string) error {
	switch name {
	case sourceimage.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown SourceImage edge %s", name)
}
