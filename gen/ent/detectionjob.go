// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/autocare/platetrack/gen/ent/detectionjob"
	"github.com/autocare/platetrack/gen/ent/sourceimage"
	"github.com/google/uuid"
)

// DetectionJob is the model entity for the DetectionJob schema.
type DetectionJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ImageID holds the value of the "image_id" field.
	ImageID uuid.UUID `json:"image_id,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// Plate holds the value of the "plate" field.
	Plate *string `json:"plate,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence *float64 `json:"confidence,omitempty"`
	// MinConfidence holds the value of the "min_confidence" field.
	MinConfidence float64 `json:"min_confidence,omitempty"`
	// NeedsReview holds the value of the "needs_review" field.
	NeedsReview bool `json:"needs_review,omitempty"`
	// Attempts holds the value of the "attempts" field.
	Attempts json.RawMessage `json:"attempts,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DetectionJobQuery when eager-loading is set.
	Edges        DetectionJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DetectionJobEdges holds the relations/edges for other nodes in the graph.
type DetectionJobEdges struct {
	// Image holds the value of the image edge.
	Image *SourceImage `json:"image,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ImageOrErr returns the Image value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DetectionJobEdges) ImageOrErr() (*SourceImage, error) {
	if e.Image != nil {
		return e.Image, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: sourceimage.Label}
	}
	return nil, &NotLoadedError{edge: "image"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DetectionJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case detectionjob.FieldAttempts:
			values[i] = new([]byte)
		case detectionjob.FieldNeedsReview:
			values[i] = new(sql.NullBool)
		case detectionjob.FieldConfidence, detectionjob.FieldMinConfidence:
			values[i] = new(sql.NullFloat64)
		case detectionjob.FieldStatus, detectionjob.FieldPlate, detectionjob.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case detectionjob.FieldStartedAt, detectionjob.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		case detectionjob.FieldID, detectionjob.FieldImageID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DetectionJob fields.
func (_m *DetectionJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case detectionjob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case detectionjob.FieldImageID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field image_id", values[i])
			} else if value != nil {
				_m.ImageID = *value
			}
		case detectionjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case detectionjob.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case detectionjob.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		case detectionjob.FieldPlate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plate", values[i])
			} else if value.Valid {
				_m.Plate = new(string)
				*_m.Plate = value.String
			}
		case detectionjob.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = new(float64)
				*_m.Confidence = value.Float64
			}
		case detectionjob.FieldMinConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field min_confidence", values[i])
			} else if value.Valid {
				_m.MinConfidence = value.Float64
			}
		case detectionjob.FieldNeedsReview:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field needs_review", values[i])
			} else if value.Valid {
				_m.NeedsReview = value.Bool
			}
		case detectionjob.FieldAttempts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field attempts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Attempts); err != nil {
					return fmt.Errorf("unmarshal field attempts: %w", err)
				}
			}
		case detectionjob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DetectionJob.
// This includes values selected through modifiers, order, etc.
func (_m *DetectionJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryImage queries the "image" edge of the DetectionJob entity.
func (_m *DetectionJob) QueryImage() *SourceImageQuery {
	return NewDetectionJobClient(_m.config).QueryImage(_m)
}

// Update returns a builder for updating this DetectionJob.
// Note that you need to call DetectionJob.Unwrap() before calling this method if this DetectionJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DetectionJob) Update() *DetectionJobUpdateOne {
	return NewDetectionJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DetectionJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DetectionJob) Unwrap() *DetectionJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DetectionJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DetectionJob) String() string {
	var builder strings.Builder
	builder.WriteString("DetectionJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("image_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ImageID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.Plate; v != nil {
		builder.WriteString("plate=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Confidence; v != nil {
		builder.WriteString("confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("min_confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.MinConfidence))
	builder.WriteString(", ")
	builder.WriteString("needs_review=")
	builder.WriteString(fmt.Sprintf("%v", _m.NeedsReview))
	builder.WriteString(", ")
	builder.WriteString("attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempts))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// DetectionJobs is a parsable slice of DetectionJob.
type DetectionJobs []*DetectionJob
