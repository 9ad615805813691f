package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/autocare/platetrack/internal/async"
	"github.com/autocare/platetrack/internal/common"
	"github.com/autocare/platetrack/internal/detect"
	"github.com/autocare/platetrack/internal/export"
	"github.com/autocare/platetrack/internal/ingest"
	"github.com/autocare/platetrack/internal/ocr"
	"github.com/autocare/platetrack/internal/pipeline/platedetect"
	"github.com/autocare/platetrack/internal/repository"
)

func main() {
	var (
		dir     = flag.String("dir", "", "directory of images to process (required)")
		watch   = flag.Bool("watch", false, "keep watching the directory for new images")
		workers = flag.Int("workers", 4, "concurrent detections")
		out     = flag.String("out", "", "write an XLSX report here when done (defaults next to --dir)")
		fromStr = flag.String("from", "", "report window start, YYYY-MM-DD")
		toStr   = flag.String("to", "", "report window end, YYYY-MM-DD")
	)
	flag.Parse()

	if *dir == "" {
		fmt.Fprintln(os.Stderr, "Error: --dir is required")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "detections.xlsx")
	}
	from, err := parseDate(*fromStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid --from date, use YYYY-MM-DD: %v\n", err)
		os.Exit(1)
	}
	to, err := parseDate(*toStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid --to date, use YYYY-MM-DD: %v\n", err)
		os.Exit(1)
	}

	_ = godotenv.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		// Local runs without a server fall back to a sqlite file.
		cfg.Database.DSN = filepath.Join(filepath.Dir(*dir), "platetrack.db")
		logger.Info("DB_URL not set, using local database", "path", cfg.Database.DSN)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)
	if err := entc.Schema.Create(ctx); err != nil {
		logger.Error("schema migration failed", "error", err)
		os.Exit(1)
	}

	imagesRepo := repository.NewSourceImageRepository(entc, logger)
	jobsRepo := repository.NewDetectionJobRepository(entc, logger)

	engine := ocr.NewEngine(ocr.Config{
		Tesseract:   cfg.Detection.Tesseract,
		Lang:        cfg.Detection.TesseractLang,
		TessdataDir: cfg.Detection.TessdataDir,
	}, logger)
	detOpts := []detect.DetectorOption{
		detect.WithMinConfidence(cfg.Detection.MinConfidence),
	}
	if cfg.Detection.ProfilesFile != "" {
		fileOpts, err := detect.LoadProfilesFile(cfg.Detection.ProfilesFile)
		if err != nil {
			logger.Error("loading profiles", "error", err)
			os.Exit(1)
		}
		detOpts = append(detOpts, fileOpts...)
	}
	detector := detect.NewDetector(engine, logger, detOpts...)

	pipeline := platedetect.NewPipeline(imagesRepo, jobsRepo, detector, logger)
	ingestor := ingest.NewFSIngestor(imagesRepo, logger)
	queue := async.NewDetectionQueue(pipeline, logger, async.WithWorkers(*workers))

	logger.Info("starting ingestion", "dir", *dir)
	results, stats, err := ingestor.IngestDirectory(ctx, *dir, true)
	if err != nil {
		logger.Error("failed to ingest directory", "error", err)
		os.Exit(1)
	}
	logger.Info("ingestion complete",
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"deduplicated", stats.Deduplicated)

	enqueued := 0
	for _, r := range results {
		if r.Err != "" {
			continue
		}
		id, err := uuid.Parse(r.ImageID)
		if err != nil {
			logger.Error("bad image id", "image_id", r.ImageID, "error", err)
			continue
		}
		if err := queue.Enqueue(ctx, async.Job{ImageID: id, SubmittedAt: time.Now()}); err != nil {
			logger.Error("enqueue failed", "image_id", id, "error", err)
			continue
		}
		enqueued++
	}
	logger.Info("detections queued", "count", enqueued)

	if *watch {
		runWatcher(ctx, *dir, ingestor, queue, logger)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	queue.Shutdown(shutdownCtx)
	cancel()

	exporter := export.NewService(jobsRepo, imagesRepo, logger)
	xlsx, err := exporter.ExportJobsXLSX(context.Background(), from, to)
	if err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsx, 0644); err != nil {
		logger.Error("writing report", "path", *out, "error", err)
		os.Exit(1)
	}
	logger.Info("batch complete", "queued", enqueued, "report", *out)
}

// runWatcher feeds newly appearing images into the queue until the
// context is cancelled.
func runWatcher(ctx context.Context, dir string, ingestor ingest.Ingestor, queue async.Queue, logger *slog.Logger) {
	paths, errs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:    []string{dir},
		Debounce: 500 * time.Millisecond,
	})
	if err != nil {
		logger.Error("watcher start failed", "error", err)
		return
	}
	logger.Info("watching for new images", "dir", dir)
	for {
		select {
		case <-ctx.Done():
			return
		case werr, ok := <-errs:
			if !ok {
				return
			}
			logger.Error("watcher error", "error", werr)
		case path, ok := <-paths:
			if !ok {
				return
			}
			res, err := ingestor.IngestPath(ctx, path)
			if err != nil || res.Err != "" {
				logger.Error("ingest failed", "path", path, "error", err, "detail", res.Err)
				continue
			}
			id, err := uuid.Parse(res.ImageID)
			if err != nil {
				logger.Error("bad image id", "image_id", res.ImageID, "error", err)
				continue
			}
			if err := queue.Enqueue(ctx, async.Job{ImageID: id, SubmittedAt: time.Now()}); err != nil {
				logger.Error("enqueue failed", "image_id", id, "error", err)
			}
		}
	}
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
