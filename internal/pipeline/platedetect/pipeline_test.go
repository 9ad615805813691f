package platedetect

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/autocare/platetrack/constants"
	"github.com/autocare/platetrack/gen/ent"
	"github.com/autocare/platetrack/internal/common"
	"github.com/autocare/platetrack/internal/detect"
	"github.com/autocare/platetrack/internal/repository"
)

type fakeImages struct {
	rows map[uuid.UUID]*ent.SourceImage
}

func (f *fakeImages) GetByID(_ context.Context, id uuid.UUID) (*ent.SourceImage, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return row, nil
}

func (f *fakeImages) GetByHash(context.Context, []byte) (*ent.SourceImage, error) {
	return nil, common.ErrNotFound
}

func (f *fakeImages) Create(_ context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.SourceImage, error) {
	return nil, errors.New("not used")
}

func (f *fakeImages) UpsertByHash(context.Context, string, string, string, int, []byte, time.Time) (*ent.SourceImage, bool, error) {
	return nil, false, errors.New("not used")
}

type fakeJobs struct {
	started  int
	finished []repository.DetectionOutcome
}

func (f *fakeJobs) Start(_ context.Context, imageID uuid.UUID, minConfidence float64) (*ent.DetectionJob, error) {
	f.started++
	return &ent.DetectionJob{ID: uuid.New(), Status: string(constants.JobStatusRunning), MinConfidence: minConfidence}, nil
}

func (f *fakeJobs) Finish(_ context.Context, _ uuid.UUID, out repository.DetectionOutcome) error {
	f.finished = append(f.finished, out)
	return nil
}

func (f *fakeJobs) GetByID(context.Context, uuid.UUID) (*ent.DetectionJob, error) {
	return nil, common.ErrNotFound
}

func (f *fakeJobs) ListByWindow(context.Context, *time.Time, *time.Time, int) ([]*ent.DetectionJob, error) {
	return nil, nil
}

type scriptedDetector struct {
	res detect.Result
	err error
}

func (s *scriptedDetector) Detect(context.Context, []byte, detect.Options) (detect.Result, error) {
	return s.res, s.err
}

func writeTempImage(t *testing.T) (uuid.UUID, *fakeImages) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := os.WriteFile(path, []byte("bytes"), 0644); err != nil {
		t.Fatal(err)
	}
	id := uuid.New()
	return id, &fakeImages{rows: map[uuid.UUID]*ent.SourceImage{
		id: {ID: id, SourcePath: path, Filename: "frame.png"},
	}}
}

func TestRunPersistsDetection(t *testing.T) {
	id, images := writeTempImage(t)
	jobs := &fakeJobs{}
	det := &scriptedDetector{res: detect.Result{
		Plate:      "ABC123",
		Confidence: 85,
		Attempts:   []detect.Attempt{{Profile: "p", RawText: "ABC123", Confidence: 85}},
	}}
	p := NewPipeline(images, jobs, det, nil)

	jobID, res, err := p.Run(context.Background(), id, detect.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if jobID == uuid.Nil {
		t.Error("job ID not returned")
	}
	if res.Plate != "ABC123" {
		t.Errorf("plate = %q", res.Plate)
	}
	if jobs.started != 1 || len(jobs.finished) != 1 {
		t.Fatalf("started = %d, finished = %d", jobs.started, len(jobs.finished))
	}
	out := jobs.finished[0]
	if out.Plate != "ABC123" || out.Confidence != 85 || out.NeedsReview {
		t.Errorf("outcome = %+v", out)
	}
	if out.MinConfidence != detect.DefaultMinConfidence {
		t.Errorf("min_confidence default = %v", out.MinConfidence)
	}
}

func TestRunFlagsNearMissForReview(t *testing.T) {
	id, images := writeTempImage(t)
	jobs := &fakeJobs{}
	det := &scriptedDetector{res: detect.Result{
		Attempts: []detect.Attempt{{Profile: "p", RawText: "AB?12", Confidence: 55}},
	}}
	p := NewPipeline(images, jobs, det, nil)

	if _, _, err := p.Run(context.Background(), id, detect.Options{}); err != nil {
		t.Fatal(err)
	}
	out := jobs.finished[0]
	if !out.NeedsReview {
		t.Error("near-miss (best attempt 55) should be flagged for review")
	}
	if out.Plate != "" {
		t.Errorf("plate = %q, want empty", out.Plate)
	}
}

func TestRunLowConfidenceMissIsNotFlagged(t *testing.T) {
	id, images := writeTempImage(t)
	jobs := &fakeJobs{}
	det := &scriptedDetector{res: detect.Result{
		Attempts: []detect.Attempt{{Profile: "p", RawText: "", Confidence: 12}},
	}}
	p := NewPipeline(images, jobs, det, nil)

	if _, _, err := p.Run(context.Background(), id, detect.Options{}); err != nil {
		t.Fatal(err)
	}
	if jobs.finished[0].NeedsReview {
		t.Error("a weak miss should not need review")
	}
}

func TestRunRecordsDetectorFailure(t *testing.T) {
	id, images := writeTempImage(t)
	jobs := &fakeJobs{}
	det := &scriptedDetector{err: common.ErrEngineUnavailable}
	p := NewPipeline(images, jobs, det, nil)

	_, _, err := p.Run(context.Background(), id, detect.Options{})
	if !errors.Is(err, common.ErrEngineUnavailable) {
		t.Fatalf("err = %v", err)
	}
	if len(jobs.finished) != 1 || jobs.finished[0].ErrorMessage == "" {
		t.Errorf("failure not persisted: %+v", jobs.finished)
	}
}

func TestRunMissingImageRow(t *testing.T) {
	jobs := &fakeJobs{}
	p := NewPipeline(&fakeImages{rows: map[uuid.UUID]*ent.SourceImage{}}, jobs, &scriptedDetector{}, nil)

	if _, _, err := p.Run(context.Background(), uuid.New(), detect.Options{}); err == nil {
		t.Fatal("expected error for unknown image")
	}
	if jobs.started != 0 {
		t.Error("no job should start for an unknown image")
	}
}

func TestRunUnreadableFileFailsJob(t *testing.T) {
	id := uuid.New()
	images := &fakeImages{rows: map[uuid.UUID]*ent.SourceImage{
		id: {ID: id, SourcePath: "/nonexistent/frame.png"},
	}}
	jobs := &fakeJobs{}
	p := NewPipeline(images, jobs, &scriptedDetector{}, nil)

	if _, _, err := p.Run(context.Background(), id, detect.Options{}); err == nil {
		t.Fatal("expected error for unreadable file")
	}
	if len(jobs.finished) != 1 || jobs.finished[0].ErrorMessage == "" {
		t.Errorf("unreadable file not recorded: %+v", jobs.finished)
	}
}
