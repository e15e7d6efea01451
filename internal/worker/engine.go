// Package worker drains the scoring queue: each job is validated,
// optionally auto-fixed, scored and stored.
package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/rescue"
	"github.com/zeromicro/go-zero/core/syncx"
	"github.com/zeromicro/go-zero/core/threading"
	"golang.org/x/time/rate"
	"maragu.dev/goqite"

	"github.com/joeblew999/templateforge/internal/model"
	"github.com/joeblew999/templateforge/pkg/queue"
)

// Config holds worker engine configuration.
type Config struct {
	MaxAttempts int
	RateLimit   int // jobs per minute, 0 disables limiting
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxAttempts: queue.DefaultMaxAttempts,
		RateLimit:   600,
	}
}

// Engine processes queued scoring jobs.
type Engine struct {
	config      Config
	queue       *queue.Queue
	jobs        model.ScoreJobsModel
	results     model.ScoredTemplatesModel
	rateLimiter *rate.Limiter
	running     *syncx.AtomicBool

	ctx    context.Context
	cancel context.CancelFunc
	group  *threading.RoutineGroup
}

// NewEngine creates a new worker engine.
func NewEngine(q *queue.Queue, jobs model.ScoreJobsModel, results model.ScoredTemplatesModel, cfg Config) *Engine {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = queue.DefaultMaxAttempts
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RateLimit)), 1)
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Engine{
		config:      cfg,
		queue:       q,
		jobs:        jobs,
		results:     results,
		rateLimiter: limiter,
		running:     syncx.NewAtomicBool(),
		ctx:         ctx,
		cancel:      cancel,
		group:       threading.NewRoutineGroup(),
	}
}

// Start starts the engine with the specified number of workers.
func (e *Engine) Start(workers int) {
	if !e.running.CompareAndSwap(false, true) {
		return
	}

	logx.Infow("Scoring worker started", logx.Field("workers", workers))
	for i := 0; i < workers; i++ {
		e.group.RunSafe(e.worker)
	}
}

// Stop cancels the workers and waits for in-flight jobs.
func (e *Engine) Stop() {
	if !e.running.CompareAndSwap(true, false) {
		return
	}

	logx.Info("Scoring worker stopping, waiting for jobs")
	e.cancel()
	e.group.Wait()
	logx.Info("Scoring worker stopped")
}

// Submit records a pending job row and enqueues the job. The row is written
// first so queue events can reference it.
func (e *Engine) Submit(ctx context.Context, job queue.ScoreJob) (queue.ScoreJob, error) {
	if job.ID == "" {
		job.ID = uuid.New().String()
	}
	if job.MaxAttempts <= 0 {
		job.MaxAttempts = e.config.MaxAttempts
	}

	if _, err := e.jobs.Insert(ctx, &model.ScoreJobs{
		Id:          job.ID,
		Type:        job.Type,
		Name:        job.Name,
		Skin:        job.Skin,
		Autofix:     model.BoolInt(job.AutoFix),
		Status:      model.JobPending,
		MaxAttempts: int64(job.MaxAttempts),
	}); err != nil {
		return queue.ScoreJob{}, fmt.Errorf("insert job: %w", err)
	}

	queued, err := e.queue.Enqueue(ctx, job)
	if err != nil {
		_ = e.jobs.MarkFailed(ctx, job.ID, err.Error())
		return queue.ScoreJob{}, err
	}
	jobsQueued.Inc()
	return queued, nil
}

// ProcessNext handles at most one job and reports whether one was found.
func (e *Engine) ProcessNext(ctx context.Context) (bool, error) {
	job, msg, err := e.queue.Receive(ctx)
	if err != nil {
		if msg != nil {
			// Undecodable bodies never succeed.
			logx.WithContext(ctx).Errorf("Dropping malformed job message: %v", err)
			_ = e.queue.Delete(ctx, msg)
			return true, nil
		}
		return false, err
	}
	if job == nil {
		return false, nil
	}

	e.processJob(ctx, job, msg)
	return true, nil
}

// Drain processes jobs until the queue is empty and returns how many ran.
func (e *Engine) Drain(ctx context.Context) (int, error) {
	n := 0
	for {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		found, err := e.ProcessNext(ctx)
		if err != nil {
			return n, err
		}
		if !found {
			return n, nil
		}
		n++
	}
}

func (e *Engine) worker() {
	backoff := 100 * time.Millisecond
	const maxBackoff = 5 * time.Second

	for {
		select {
		case <-e.ctx.Done():
			return
		default:
			found, err := e.ProcessNext(e.ctx)
			if err != nil || !found {
				if err != nil && !errors.Is(err, context.Canceled) {
					logx.Errorf("Receive failed: %v", err)
				}
				sleep(e.ctx, backoff)
				backoff = min(backoff*2, maxBackoff)
				e.updateQueueDepth()
				continue
			}

			backoff = 100 * time.Millisecond
		}
	}
}

func (e *Engine) processJob(ctx context.Context, job *queue.ScoreJob, msg *goqite.Message) {
	ctx = logx.ContextWithFields(ctx,
		logx.Field("job_id", job.ID),
		logx.Field("type", job.Type),
		logx.Field("autofix", job.AutoFix),
	)

	defer rescue.RecoverCtx(ctx, func() {
		jobsFailed.Inc("panic")
		_ = e.jobs.MarkFailed(ctx, job.ID, "panic during scoring")
		_ = e.queue.Delete(ctx, msg)
		e.queue.Record(job.ID, queue.EventFailed, "panic during scoring")
	})

	logx.WithContext(ctx).Info("Processing job")
	start := time.Now()

	if err := e.rateLimiter.Wait(ctx); err != nil {
		e.handleError(ctx, job, msg, err)
		return
	}

	if err := e.jobs.MarkProcessing(ctx, job.ID); err != nil {
		e.handleError(ctx, job, msg, fmt.Errorf("mark processing: %w", err))
		return
	}

	ev := Evaluate(job.Document(), job.AutoFix)
	resultID := uuid.New().String()
	if _, err := e.results.Insert(ctx, ev.Row(resultID, job.ID)); err != nil {
		e.handleError(ctx, job, msg, fmt.Errorf("store result: %w", err))
		return
	}

	if err := e.jobs.MarkDone(ctx, job.ID, resultID); err != nil {
		logx.WithContext(ctx).Errorf("Mark done failed: %v", err)
	}
	if err := e.queue.Delete(ctx, msg); err != nil {
		logx.WithContext(ctx).Errorf("Delete message failed: %v", err)
	}

	grade := string(ev.Score.Grade)
	jobsScored.Inc(grade)
	scoringDuration.ObserveFloat(time.Since(start).Seconds(), grade)
	e.queue.Record(job.ID, queue.EventScored, fmt.Sprintf("total=%d grade=%s", ev.Score.Total, grade))

	logx.WithContext(ctx).Infow("Job scored",
		logx.Field("total", ev.Score.Total),
		logx.Field("grade", grade),
		logx.Field("fixes", len(ev.AppliedFixes)),
	)
}

// handleError retries the job by leaving its message for redelivery, or
// fails it once the attempt budget is spent.
func (e *Engine) handleError(ctx context.Context, job *queue.ScoreJob, msg *goqite.Message, err error) {
	if ctx.Err() != nil {
		// Shutting down; goqite redelivers the message after its timeout.
		return
	}

	attempts := 0
	if row, ferr := e.jobs.FindOne(ctx, job.ID); ferr == nil {
		attempts = int(row.Attempts)
	}

	maxAttempts := job.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = e.config.MaxAttempts
	}

	if attempts >= maxAttempts {
		_ = e.jobs.MarkFailed(ctx, job.ID, err.Error())
		_ = e.queue.Delete(ctx, msg)
		jobsFailed.Inc("exhausted")
		e.queue.Record(job.ID, queue.EventFailed, err.Error())
		logx.WithContext(ctx).Errorf("Job failed permanently: %v", err)
		return
	}

	_ = e.jobs.MarkRetry(ctx, job.ID, err.Error())
	jobsRetried.Inc()
	e.queue.Record(job.ID, queue.EventRetry, fmt.Sprintf("attempt %d: %v", attempts, err))
	logx.WithContext(ctx).Infof("Job will be redelivered: %v", err)
}

// updateQueueDepth refreshes the queue depth gauge from job stats.
func (e *Engine) updateQueueDepth() {
	stats, err := e.jobs.Stats(e.ctx)
	if err != nil {
		return
	}
	for status, count := range stats {
		queueDepth.Set(float64(count), status)
	}
}

func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
