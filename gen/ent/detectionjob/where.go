// Code generated by ent, DO NOT EDIT.

package detectionjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/autocare/platetrack/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldLTE(FieldID, id))
}

// ImageID applies equality check predicate on the "image_id" field. It's identical to ImageIDEQ.
func ImageID(v uuid.UUID) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldEQ(FieldImageID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldEQ(FieldStatus, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldEQ(FieldFinishedAt, v))
}

// Plate applies equality check predicate on the "plate" field. It's identical to PlateEQ.
func Plate(v string) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldEQ(FieldPlate, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldEQ(FieldConfidence, v))
}

// MinConfidence applies equality check predicate on the "min_confidence" field. It's identical to MinConfidenceEQ.
func MinConfidence(v float64) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldEQ(FieldMinConfidence, v))
}

// NeedsReview applies equality check predicate on the "needs_review" field. It's identical to NeedsReviewEQ.
func NeedsReview(v bool) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldEQ(FieldNeedsReview, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ImageIDEQ applies the EQ predicate on the "image_id" field.
func ImageIDEQ(v uuid.UUID) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldEQ(FieldImageID, v))
}

// ImageIDNEQ applies the NEQ predicate on the "image_id" field.
func ImageIDNEQ(v uuid.UUID) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldNEQ(FieldImageID, v))
}

// ImageIDIn applies the In predicate on the "image_id" field.
func ImageIDIn(vs ...uuid.UUID) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldIn(FieldImageID, vs...))
}

// ImageIDNotIn applies the NotIn predicate on the "image_id" field.
func ImageIDNotIn(vs ...uuid.UUID) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldNotIn(FieldImageID, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldContainsFold(FieldStatus, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldNotNull(FieldFinishedAt))
}

// PlateEQ applies the EQ predicate on the "plate" field.
func PlateEQ(v string) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldEQ(FieldPlate, v))
}

// PlateNEQ applies the NEQ predicate on the "plate" field.
func PlateNEQ(v string) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldNEQ(FieldPlate, v))
}

// PlateIn applies the In predicate on the "plate" field.
func PlateIn(vs ...string) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldIn(FieldPlate, vs...))
}

// PlateNotIn applies the NotIn predicate on the "plate" field.
func PlateNotIn(vs ...string) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldNotIn(FieldPlate, vs...))
}

// PlateGT applies the GT predicate on the "plate" field.
func PlateGT(v string) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldGT(FieldPlate, v))
}

// PlateGTE applies the GTE predicate on the "plate" field.
func PlateGTE(v string) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldGTE(FieldPlate, v))
}

// PlateLT applies the LT predicate on the "plate" field.
func PlateLT(v string) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldLT(FieldPlate, v))
}

// PlateLTE applies the LTE predicate on the "plate" field.
func PlateLTE(v string) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldLTE(FieldPlate, v))
}

// PlateContains applies the Contains predicate on the "plate" field.
func PlateContains(v string) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldContains(FieldPlate, v))
}

// PlateHasPrefix applies the HasPrefix predicate on the "plate" field.
func PlateHasPrefix(v string) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldHasPrefix(FieldPlate, v))
}

// PlateHasSuffix applies the HasSuffix predicate on the "plate" field.
func PlateHasSuffix(v string) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldHasSuffix(FieldPlate, v))
}

// PlateIsNil applies the IsNil predicate on the "plate" field.
func PlateIsNil() predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldIsNull(FieldPlate))
}

// PlateNotNil applies the NotNil predicate on the "plate" field.
func PlateNotNil() predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldNotNull(FieldPlate))
}

// PlateEqualFold applies the EqualFold predicate on the "plate" field.
func PlateEqualFold(v string) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldEqualFold(FieldPlate, v))
}

// PlateContainsFold applies the ContainsFold predicate on the "plate" field.
func PlateContainsFold(v string) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldContainsFold(FieldPlate, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldNotNull(FieldConfidence))
}

// MinConfidenceEQ applies the EQ predicate on the "min_confidence" field.
func MinConfidenceEQ(v float64) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldEQ(FieldMinConfidence, v))
}

// MinConfidenceNEQ applies the NEQ predicate on the "min_confidence" field.
func MinConfidenceNEQ(v float64) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldNEQ(FieldMinConfidence, v))
}

// MinConfidenceIn applies the In predicate on the "min_confidence" field.
func MinConfidenceIn(vs ...float64) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldIn(FieldMinConfidence, vs...))
}

// MinConfidenceNotIn applies the NotIn predicate on the "min_confidence" field.
func MinConfidenceNotIn(vs ...float64) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldNotIn(FieldMinConfidence, vs...))
}

// MinConfidenceGT applies the GT predicate on the "min_confidence" field.
func MinConfidenceGT(v float64) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldGT(FieldMinConfidence, v))
}

// MinConfidenceGTE applies the GTE predicate on the "min_confidence" field.
func MinConfidenceGTE(v float64) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldGTE(FieldMinConfidence, v))
}

// MinConfidenceLT applies the LT predicate on the "min_confidence" field.
func MinConfidenceLT(v float64) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldLT(FieldMinConfidence, v))
}

// MinConfidenceLTE applies the LTE predicate on the "min_confidence" field.
func MinConfidenceLTE(v float64) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldLTE(FieldMinConfidence, v))
}

// NeedsReviewEQ applies the EQ predicate on the "needs_review" field.
func NeedsReviewEQ(v bool) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldEQ(FieldNeedsReview, v))
}

// NeedsReviewNEQ applies the NEQ predicate on the "needs_review" field.
func NeedsReviewNEQ(v bool) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldNEQ(FieldNeedsReview, v))
}

// AttemptsIsNil applies the IsNil predicate on the "attempts" field.
func AttemptsIsNil() predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldIsNull(FieldAttempts))
}

// AttemptsNotNil applies the NotNil predicate on the "attempts" field.
func AttemptsNotNil() predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldNotNull(FieldAttempts))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.DetectionJob {
	return predicate.DetectionJob(sql.FieldContainsFold(FieldErrorMessage, v))
}

// HasImage applies the HasEdge predicate on the "image" edge.
func HasImage() predicate.DetectionJob {
	return predicate.DetectionJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ImageTable, ImageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasImageWith applies the HasEdge predicate on the "image" edge with a given conditions (other predicates).
func HasImageWith(preds ...predicate.SourceImage) predicate.DetectionJob {
	return predicate.DetectionJob(func(s *sql.Selector) {
		step := newImageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DetectionJob) predicate.DetectionJob {
	return predicate.DetectionJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DetectionJob) predicate.DetectionJob {
	return predicate.DetectionJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DetectionJob) predicate.DetectionJob {
	return predicate.DetectionJob(sql.NotPredicates(p))
}
