package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/autocare/platetrack/internal/repository"
)

// Service is a thin layer over the repositories that produces XLSX bytes
// for detection-history exports.
type Service struct {
	jobsRepo   repository.DetectionJobRepository
	imagesRepo repository.SourceImageRepository
	logger     *slog.Logger
}

func NewService(jobs repository.DetectionJobRepository, images repository.SourceImageRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{jobsRepo: jobs, imagesRepo: images, logger: logger}
}

// ExportJobsXLSX returns an XLSX workbook (as bytes) for the detection
// jobs in a date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all jobs.
func (s *Service) ExportJobsXLSX(ctx context.Context, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day()+1, 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day()+1, 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	jobs, err := s.jobsRepo.ListByWindow(ctx, fromDate, toDate, 0)
	if err != nil {
		return nil, fmt.Errorf("query jobs: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Detections"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Started At",
		"Status",
		"Plate",
		"Confidence",
		"Threshold",
		"Needs Review",
		"Image Path",
		"Error",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, j := range jobs {
		imagePath := ""
		if img, err := s.imagesRepo.GetByID(ctx, j.ImageID); err == nil && img != nil {
			imagePath = img.SourcePath
		}

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, j.StartedAt.Format("2006-01-02 15:04:05"))
		write(2, j.Status)
		if j.Plate != nil {
			write(3, *j.Plate)
		}
		if j.Confidence != nil {
			write(4, *j.Confidence)
		}
		write(5, j.MinConfidence)
		write(6, j.NeedsReview)
		write(7, imagePath)
		if j.ErrorMessage != nil {
			write(8, *j.ErrorMessage)
		}

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 20) // timestamp
	_ = f.SetColWidth(sheet, "C", "C", 14) // plate
	_ = f.SetColWidth(sheet, "G", "G", 48) // path

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("exported detection jobs",
		"rows", row-2, "duration_ms", time.Since(start).Milliseconds())
	return buf.Bytes(), nil
}
