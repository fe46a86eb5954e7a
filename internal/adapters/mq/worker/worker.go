// Package worker defines the worker pool that drains the submission queue
// and applies judged score rows to the competition store.
package worker

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"time"

	"github.com/devalpoteam/instascore-engine/internal/domain/model"
	"github.com/devalpoteam/instascore-engine/pkg/logger"
	"github.com/devalpoteam/instascore-engine/pkg/metrics"
)

// Default worker configuration constants.
const (
	defaultWorkerMultiplier = 2 // multiplier for runtime.NumCPU()
	workerShutdownTimeout   = 5 * time.Second
)

// Submission abstracts what workers read off the queue.
type Submission = model.Submission

// Validator checks a judged row before it enters the store.
type Validator interface {
	Validate(ctx context.Context, row model.ScoreRow) error
}

// Applier applies a validated row to the store.
type Applier interface {
	ApplyRow(ctx context.Context, row model.ScoreRow) (bool, error)
}

// Queue defines how workers receive submissions.
type Queue interface {
	Dequeue(ctx context.Context) <-chan Submission
}

// Worker drains submissions until stopped.
type Worker struct {
	queue     Queue
	validator Validator
	applier   Applier
	name      string

	shutdown chan struct{}
	done     chan struct{}

	logger logger.Logger
}

// NewWorker creates a worker with configuration options.
func NewWorker(queue Queue, validator Validator, applier Applier, opts ...Option) *Worker {
	w := &Worker{
		queue:     queue,
		validator: validator,
		applier:   applier,
		name:      "worker",
		shutdown:  make(chan struct{}),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.logger == nil {
		w.logger = logger.Get().Named(w.name)
	}
	return w
}

// Run starts the worker loop until ctx is cancelled or the queue closes.
func (w *Worker) Run(ctx context.Context) {
	defer close(w.done)

	submissions := w.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.shutdown:
			return
		case s, ok := <-submissions:
			if !ok {
				return
			}
			if err := w.process(ctx, s); err != nil {
				w.logger.Error(ctx, "error processing submission",
					logger.String("submissionID", s.SubmissionID),
					logger.Error(err),
				)
			}
		}
	}
}

// Shutdown stops the worker and waits for it to finish or ctx to expire.
func (w *Worker) Shutdown(ctx context.Context) error {
	close(w.shutdown)
	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		w.logger.Warn(ctx, "shutdown timed out")
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

// process validates and applies one submission.
func (w *Worker) process(ctx context.Context, s Submission) error {
	start := time.Now()
	defer func() {
		metrics.RecordWorkerProcessingLatency(float64(time.Since(start).Milliseconds()))
	}()

	if err := w.validator.Validate(ctx, s.Row); err != nil {
		metrics.RecordRowRejected()
		metrics.RecordWorkerError()
		metrics.RecordErrorByComponent("worker", "validation_error")
		return fmt.Errorf("submission %s rejected: %w", s.SubmissionID, err)
	}

	applied, err := w.applier.ApplyRow(ctx, s.Row)
	if err != nil {
		metrics.RecordWorkerError()
		metrics.RecordErrorByComponent("worker", "store_error")
		return fmt.Errorf("applying submission %s: %w", s.SubmissionID, err)
	}
	if applied {
		metrics.RecordRowApplied()
	}
	return nil
}

// Pool manages multiple workers sharing one queue.
type Pool struct {
	workers []*Worker

	shutdown chan struct{}

	logger logger.Logger
}

// NewPool creates a pool of workerCount workers. A count below one defaults
// to a small multiple of the CPU count.
func NewPool(workerCount int, queue Queue, validator Validator, applier Applier) *Pool {
	if workerCount < 1 {
		workerCount = runtime.NumCPU() * defaultWorkerMultiplier
	}

	p := &Pool{
		workers:  make([]*Worker, workerCount),
		shutdown: make(chan struct{}),
		logger:   logger.Get().Named("worker-pool"),
	}
	for i := 0; i < workerCount; i++ {
		p.workers[i] = NewWorker(queue, validator, applier, WithName("worker-"+strconv.Itoa(i)))
	}

	metrics.UpdateWorkerCount(workerCount)
	return p
}

// Start starts all workers in the pool.
func (p *Pool) Start(ctx context.Context) {
	for _, w := range p.workers {
		go w.Run(ctx)
	}
}

// Stop stops all workers, waiting briefly for each to finish.
func (p *Pool) Stop() {
	close(p.shutdown)
	for _, w := range p.workers {
		select {
		case <-w.shutdown:
		default:
			close(w.shutdown)
		}
		select {
		case <-w.done:
		case <-time.After(workerShutdownTimeout):
			p.logger.Warn(context.Background(), "worker stop timed out", logger.String("worker", w.name))
		}
	}
	metrics.UpdateWorkerCount(0)
}
