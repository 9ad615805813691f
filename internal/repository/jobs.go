package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/autocare/platetrack/constants"
	"github.com/autocare/platetrack/gen/ent"
	entjob "github.com/autocare/platetrack/gen/ent/detectionjob"
)

// DetectionOutcome carries everything persisted when a job finishes.
type DetectionOutcome struct {
	Plate         string
	Confidence    float64
	MinConfidence float64
	NeedsReview   bool
	Attempts      any // serialized to the attempts JSON column
	ErrorMessage  string
}

type DetectionJobRepository interface {
	Start(ctx context.Context, imageID uuid.UUID, minConfidence float64) (*ent.DetectionJob, error)
	Finish(ctx context.Context, jobID uuid.UUID, out DetectionOutcome) error
	GetByID(ctx context.Context, id uuid.UUID) (*ent.DetectionJob, error)
	ListByWindow(ctx context.Context, from, to *time.Time, limit int) ([]*ent.DetectionJob, error)
}

type detectionJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewDetectionJobRepository(entc *ent.Client, log *slog.Logger) DetectionJobRepository {
	if log == nil {
		log = slog.Default()
	}
	return &detectionJobRepo{ent: entc, log: log}
}

func (r *detectionJobRepo) Start(ctx context.Context, imageID uuid.UUID, minConfidence float64) (*ent.DetectionJob, error) {
	job, err := r.ent.DetectionJob.
		Create().
		SetImageID(imageID).
		SetStatus(string(constants.JobStatusRunning)).
		SetMinConfidence(minConfidence).
		Save(ctx)
	if err != nil {
		r.log.Error("detection_job start failed", "image_id", imageID, "err", err)
		return nil, err
	}
	r.log.Info("detection_job started", "job_id", job.ID, "image_id", imageID)
	return job, nil
}

func (r *detectionJobRepo) Finish(ctx context.Context, jobID uuid.UUID, out DetectionOutcome) error {
	status := constants.JobStatusNoMatch
	switch {
	case out.ErrorMessage != "":
		status = constants.JobStatusFailed
	case out.Plate != "":
		status = constants.JobStatusDetected
	}

	upd := r.ent.DetectionJob.
		UpdateOneID(jobID).
		SetStatus(string(status)).
		SetNeedsReview(out.NeedsReview).
		SetFinishedAt(time.Now())
	if out.Plate != "" {
		upd = upd.SetPlate(out.Plate).SetConfidence(out.Confidence)
	}
	if out.ErrorMessage != "" {
		upd = upd.SetErrorMessage(out.ErrorMessage)
	}
	if out.Attempts != nil {
		if b, err := json.Marshal(out.Attempts); err == nil {
			upd = upd.SetAttempts(b)
		}
	}

	if _, err := upd.Save(ctx); err != nil {
		r.log.Error("detection_job finish failed", "job_id", jobID, "status", status, "err", err)
		return err
	}
	r.log.Info("detection_job finished", "job_id", jobID, "status", status, "plate", out.Plate)
	return nil
}

func (r *detectionJobRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.DetectionJob, error) {
	return r.ent.DetectionJob.Get(ctx, id)
}

func (r *detectionJobRepo) ListByWindow(ctx context.Context, from, to *time.Time, limit int) ([]*ent.DetectionJob, error) {
	q := r.ent.DetectionJob.Query()
	if from != nil {
		q = q.Where(entjob.StartedAtGTE(*from))
	}
	if to != nil {
		q = q.Where(entjob.StartedAtLT(*to))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	return q.Order(ent.Desc(entjob.FieldStartedAt)).All(ctx)
}
