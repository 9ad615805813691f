package server

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/autocare/platetrack/gen/ent"
	platev1 "github.com/autocare/platetrack/gen/plate/v1"
	"github.com/autocare/platetrack/internal/common"
	"github.com/autocare/platetrack/internal/detect"
	"github.com/autocare/platetrack/internal/export"
	"github.com/autocare/platetrack/internal/repository"
)

// Detector is the pipeline contract the service depends on.
type Detector interface {
	Detect(ctx context.Context, data []byte, opts detect.Options) (detect.Result, error)
}

type PlateService struct {
	platev1.UnimplementedPlateServiceServer
	detector Detector
	jobsRepo repository.DetectionJobRepository
	exporter *export.Service
	debugDir string
	logger   *slog.Logger
}

func NewPlateService(d Detector, jobs repository.DetectionJobRepository, exporter *export.Service, debugDir string, logger *slog.Logger) *PlateService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlateService{
		detector: d,
		jobsRepo: jobs,
		exporter: exporter,
		debugDir: debugDir,
		logger:   logger,
	}
}

func (s *PlateService) DetectPlate(ctx context.Context, req *platev1.DetectPlateRequest) (*platev1.DetectPlateResponse, error) {
	img := req.GetImage()
	if len(img) == 0 {
		return nil, status.Error(codes.InvalidArgument, "image is required")
	}
	minConf := req.GetMinConfidence()
	if minConf < 0 || minConf > 100 {
		return nil, status.Error(codes.InvalidArgument, "min_confidence must be in [0,100]")
	}

	opts := detect.Options{MinConfidence: minConf}
	if req.GetDebug() {
		opts.DebugDir = s.debugDir
	}

	res, err := s.detector.Detect(ctx, img, opts)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidImage):
			return nil, status.Error(codes.InvalidArgument, "image could not be decoded")
		case errors.Is(err, common.ErrEngineUnavailable):
			return nil, status.Error(codes.Unavailable, "ocr engine unavailable")
		default:
			s.logger.Warn("detection failed", "error", err)
			return nil, status.Error(codes.Internal, "detection failed")
		}
	}

	out := &platev1.DetectPlateResponse{
		Plate:      res.Plate,
		Confidence: res.Confidence,
		Attempts:   make([]*platev1.Attempt, 0, len(res.Attempts)),
	}
	for _, a := range res.Attempts {
		out.Attempts = append(out.Attempts, &platev1.Attempt{
			Profile:    a.Profile,
			RawText:    a.RawText,
			Confidence: a.Confidence,
		})
	}
	return out, nil
}

func (s *PlateService) GetJob(ctx context.Context, req *platev1.GetJobRequest) (*platev1.GetJobResponse, error) {
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}
	job, err := s.jobsRepo.GetByID(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "job not found")
		}
		s.logger.Warn("get job failed", "job_id", id, "error", err)
		return nil, status.Error(codes.Internal, "get job failed")
	}
	return &platev1.GetJobResponse{Job: jobToProto(job)}, nil
}

func (s *PlateService) ListJobs(ctx context.Context, req *platev1.ListJobsRequest) (*platev1.ListJobsResponse, error) {
	from, to, err := parseWindow(req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	jobs, err := s.jobsRepo.ListByWindow(ctx, from, to, int(req.GetLimit()))
	if err != nil {
		s.logger.Warn("list jobs failed", "error", err)
		return nil, status.Error(codes.Internal, "list jobs failed")
	}
	out := make([]*platev1.Job, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, jobToProto(j))
	}
	return &platev1.ListJobsResponse{Jobs: out}, nil
}

func (s *PlateService) ExportJobs(ctx context.Context, req *platev1.ExportJobsRequest) (*platev1.ExportJobsResponse, error) {
	from, to, err := parseWindow(req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	data, err := s.exporter.ExportJobsXLSX(ctx, from, to)
	if err != nil {
		s.logger.Warn("export failed", "error", err)
		return nil, status.Error(codes.Internal, "export failed")
	}
	return &platev1.ExportJobsResponse{Xlsx: data}, nil
}

func jobToProto(j *ent.DetectionJob) *platev1.Job {
	out := &platev1.Job{
		Id:            j.ID.String(),
		Status:        j.Status,
		MinConfidence: j.MinConfidence,
		NeedsReview:   j.NeedsReview,
		StartedAt:     j.StartedAt.Format(time.RFC3339Nano),
	}
	if j.Plate != nil {
		out.Plate = *j.Plate
	}
	if j.Confidence != nil {
		out.Confidence = *j.Confidence
	}
	if j.FinishedAt != nil {
		out.FinishedAt = j.FinishedAt.Format(time.RFC3339Nano)
	}
	if j.ErrorMessage != nil {
		out.ErrorMessage = *j.ErrorMessage
	}
	return out
}

func parseWindow(fromStr, toStr string) (*time.Time, *time.Time, error) {
	parseDate := func(s string) (*time.Time, error) {
		if s == "" {
			return nil, nil
		}
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil, err
		}
		return &t, nil
	}
	from, err := parseDate(fromStr)
	if err != nil {
		return nil, nil, errors.New("from_date must be YYYY-MM-DD")
	}
	to, err := parseDate(toStr)
	if err != nil {
		return nil, nil, errors.New("to_date must be YYYY-MM-DD")
	}
	return from, to, nil
}
