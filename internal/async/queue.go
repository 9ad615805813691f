package async

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/autocare/platetrack/internal/detect"
	"github.com/autocare/platetrack/internal/pipeline/platedetect"
)

// Job is the smallest useful unit: one stored image to run detection on.
type Job struct {
	ImageID     uuid.UUID
	SubmittedAt time.Time
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

// DetectionQueue fans detection jobs out to a fixed worker pool. Each
// worker runs whole pipeline calls, so concurrent detections never
// share mutable state.
type DetectionQueue struct {
	pipeline *platedetect.Pipeline
	logger   *slog.Logger
	workers  int
	timeout  time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*DetectionQueue)

func WithWorkers(n int) Option {
	return func(q *DetectionQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *DetectionQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}

func WithJobTimeout(d time.Duration) Option {
	return func(q *DetectionQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewDetectionQueue(p *platedetect.Pipeline, logger *slog.Logger, opts ...Option) *DetectionQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &DetectionQueue{
		pipeline: p,
		logger:   logger,
		workers:  4,
		timeout:  2 * time.Minute,
		ch:       make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *DetectionQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					jobID, res, err := q.pipeline.Run(ctx, job.ImageID, detect.Options{})
					cancel()

					if err != nil {
						q.logger.Error("detection failed", "worker_id", workerID, "image_id", job.ImageID, "job_id", jobID, "error", err)
					} else {
						q.logger.Info("detection done", "worker_id", workerID, "image_id", job.ImageID, "job_id", jobID, "plate", res.Plate)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *DetectionQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "image_id", job.ImageID)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued image for detection", "image_id", job.ImageID)
	default:
		q.logger.Warn("queue full, applying backpressure", "image_id", job.ImageID)
		q.ch <- job
	}
	return nil
}

func (q *DetectionQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
