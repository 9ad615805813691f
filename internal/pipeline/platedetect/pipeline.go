package platedetect

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/autocare/platetrack/internal/common"
	"github.com/autocare/platetrack/internal/detect"
	"github.com/autocare/platetrack/internal/repository"
)

// ReviewConfidenceThreshold flags near-misses: when nothing passed the
// policy but some attempt scored at least this much, a human look is
// probably cheaper than a re-shoot.
const ReviewConfidenceThreshold = 40

// Detector is the slice of the pipeline this stage needs.
type Detector interface {
	Detect(ctx context.Context, data []byte, opts detect.Options) (detect.Result, error)
}

type Pipeline struct {
	ImagesRepo repository.SourceImageRepository
	JobsRepo   repository.DetectionJobRepository
	Detector   Detector
	Log        *slog.Logger
}

func NewPipeline(images repository.SourceImageRepository, jobs repository.DetectionJobRepository, d Detector, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{ImagesRepo: images, JobsRepo: jobs, Detector: d, Log: log}
}

// Run starts a detection_job, runs the pipeline over the stored image
// and persists the outcome. Returns the job ID and the detection
// result. A "no plate" outcome is recorded as NO_MATCH, not a failure.
func (p *Pipeline) Run(ctx context.Context, imageID uuid.UUID, opts detect.Options) (uuid.UUID, detect.Result, error) {
	row, err := p.ImagesRepo.GetByID(ctx, imageID)
	if err != nil {
		return uuid.Nil, detect.Result{}, fmt.Errorf("get image: %w", err)
	}

	minConf := opts.MinConfidence
	if minConf <= 0 {
		minConf = detect.DefaultMinConfidence
	}
	job, err := p.JobsRepo.Start(ctx, row.ID, minConf)
	if err != nil {
		return uuid.Nil, detect.Result{}, err
	}

	data, err := os.ReadFile(row.SourcePath)
	if err != nil {
		_ = p.JobsRepo.Finish(ctx, job.ID, repository.DetectionOutcome{ErrorMessage: err.Error()})
		return job.ID, detect.Result{}, fmt.Errorf("read image: %w", err)
	}

	res, err := p.Detector.Detect(ctx, data, opts)
	if err != nil {
		_ = p.JobsRepo.Finish(ctx, job.ID, repository.DetectionOutcome{ErrorMessage: err.Error()})
		if errors.Is(err, common.ErrEngineUnavailable) {
			p.Log.Error("detection blocked: ocr engine unavailable", "job_id", job.ID)
		}
		return job.ID, res, err
	}

	needsReview := false
	if !res.Found() && bestAttemptConfidence(res) >= ReviewConfidenceThreshold {
		p.Log.Warn("no plate passed the policy but a near-miss exists; flagging for review",
			"image_id", imageID, "job_id", job.ID, "best_conf", bestAttemptConfidence(res))
		needsReview = true
	}

	out := repository.DetectionOutcome{
		Plate:         res.Plate,
		Confidence:    res.Confidence,
		MinConfidence: minConf,
		NeedsReview:   needsReview,
		Attempts:      res.Attempts,
	}
	if err := p.JobsRepo.Finish(ctx, job.ID, out); err != nil {
		return job.ID, res, err
	}

	return job.ID, res, nil
}

func bestAttemptConfidence(res detect.Result) float64 {
	best := 0.0
	for _, a := range res.Attempts {
		if a.Confidence > best {
			best = a.Confidence
		}
	}
	return best
}
