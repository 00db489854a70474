package queue

import (
	"context"
	"errors"
	"sync"
	"time"

	"bizsuite/internal/models"
	"bizsuite/internal/reporting"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// MaxRetries is the maximum number of attempts for a report job.
	MaxRetries = 3
	// RetryDelay is the base delay between retries (exponential backoff).
	RetryDelay = 5 * time.Second
	// StatusUpdateTimeout is the timeout for status updates during error handling.
	StatusUpdateTimeout = 5 * time.Second
)

// ReportUpdater records the outcome of a report job.
type ReportUpdater interface {
	MarkReady(ctx context.Context, id primitive.ObjectID, fileKey string, summary map[models.RecordKind]int64) error
	MarkFailed(ctx context.Context, id primitive.ObjectID) error
}

// Processor processes report jobs from the queue.
type Processor struct {
	queue        *MemoryQueue
	generator    reporting.Generator
	updater      ReportUpdater
	workerCount  int
	retryDelay   time.Duration
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

// NewProcessor creates a new report job processor.
func NewProcessor(queue *MemoryQueue, generator reporting.Generator, updater ReportUpdater, workerCount int) *Processor {
	return &Processor{
		queue:       queue,
		generator:   generator,
		updater:     updater,
		workerCount: workerCount,
		retryDelay:  RetryDelay,
		shutdownCh:  make(chan struct{}),
	}
}

// Start begins processing jobs with the configured number of workers.
func (p *Processor) Start(ctx context.Context) {
	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
	logrus.WithField("workers", p.workerCount).Info("Report processor started")
}

// Stop gracefully stops the processor, waiting for workers to finish.
func (p *Processor) Stop() {
	p.shutdownOnce.Do(func() {
		close(p.shutdownCh)
		p.queue.Close()
	})
	p.wg.Wait()
	logrus.Info("Report processor stopped")
}

func (p *Processor) worker(ctx context.Context, id int) {
	defer p.wg.Done()
	log := logrus.WithField("worker", id)
	log.Debug("Report worker started")

	for {
		job, err := p.queue.Dequeue(ctx)
		if err != nil {
			if errors.Is(err, ErrQueueClosed) || errors.Is(err, context.Canceled) {
				log.Debug("Report worker shutting down")
				return
			}
			continue
		}
		p.processJob(ctx, job)
	}
}

func jobLogger(job ReportJob) *logrus.Entry {
	return logrus.WithFields(logrus.Fields{
		"reportId":   job.ReportID.Hex(),
		"businessId": job.BusinessID.Hex(),
		"category":   job.Category,
		"attempt":    job.RetryCount + 1,
	})
}

func (p *Processor) processJob(ctx context.Context, job ReportJob) {
	log := jobLogger(job)
	log.Info("Generating report")

	result, err := p.generator.Generate(ctx, job.ReportID, job.BusinessID, job.Category)
	if err != nil {
		log.WithError(err).Warn("Report generation failed")
		p.handleFailure(ctx, job)
		return
	}

	if err := p.updater.MarkReady(ctx, job.ReportID, result.FileKey, result.Summary); err != nil {
		log.WithError(err).Warn("Failed to store report result")
		p.handleFailure(ctx, job)
		return
	}

	log.Info("Report ready")
}

func (p *Processor) markFailed(job ReportJob) {
	updateCtx, cancel := context.WithTimeout(context.Background(), StatusUpdateTimeout)
	defer cancel()
	if err := p.updater.MarkFailed(updateCtx, job.ReportID); err != nil {
		jobLogger(job).WithError(err).Error("Failed to mark report as failed")
	}
}

func (p *Processor) handleFailure(ctx context.Context, job ReportJob) {
	job.RetryCount++
	log := jobLogger(job)

	if job.RetryCount >= MaxRetries {
		log.Warn("Max retries reached, marking report as failed")
		p.markFailed(job)
		return
	}

	delay := p.retryDelay * time.Duration(1<<uint(job.RetryCount-1))
	log.WithField("delay", delay).Info("Retrying report")

	// Waits on shutdownCh rather than ctx so pending retries still resolve
	// during graceful shutdown.
	go func() {
		select {
		case <-p.shutdownCh:
			log.Warn("Shutdown during retry delay, marking report as failed")
			p.markFailed(job)
		case <-time.After(delay):
			if err := p.queue.Enqueue(job); err != nil {
				log.WithError(err).Error("Failed to re-enqueue report job")
				p.markFailed(job)
			}
		}
	}()
}
