// Package queue carries asynchronous scoring jobs over a goqite queue
// stored in the same SQLite database as the results.
package queue

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"maragu.dev/goqite"

	"github.com/joeblew999/templateforge/pkg/document"
)

// DefaultMaxAttempts bounds how often a job is retried.
const DefaultMaxAttempts = 3

// ScoreJob is one document waiting to be validated, fixed and scored.
type ScoreJob struct {
	ID          string    `json:"id"`
	Type        string    `json:"type,omitempty"`
	Name        string    `json:"name,omitempty"`
	Skin        string    `json:"skin,omitempty"`
	HTML        string    `json:"html"`
	AutoFix     bool      `json:"autofix"`
	MaxAttempts int       `json:"max_attempts"`
	CreatedAt   time.Time `json:"created_at"`
}

// Document returns the job's template document.
func (j ScoreJob) Document() document.Document {
	return document.Document{
		ID:   j.ID,
		Type: j.Type,
		Name: j.Name,
		Skin: j.Skin,
		HTML: j.HTML,
	}
}

// Queue manages scoring jobs using goqite.
type Queue struct {
	queue  *goqite.Queue
	name   string
	Events *EventRecorder
}

// NewQueue creates the goqite schema if needed and opens the named queue.
func NewQueue(db *sql.DB, name string, events *EventRecorder) (*Queue, error) {
	if err := goqite.Setup(context.Background(), db); err != nil && !isAlreadySetup(err) {
		return nil, fmt.Errorf("setup goqite: %w", err)
	}

	q := goqite.New(goqite.NewOpts{
		DB:   db,
		Name: name,
	})

	return &Queue{
		queue:  q,
		name:   name,
		Events: events,
	}, nil
}

// Name returns the queue name.
func (q *Queue) Name() string {
	return q.name
}

// Enqueue adds a job and returns it with ID, attempt limit and creation
// time filled in.
func (q *Queue) Enqueue(ctx context.Context, job ScoreJob) (ScoreJob, error) {
	if job.ID == "" {
		job.ID = uuid.New().String()
	}
	if job.MaxAttempts <= 0 {
		job.MaxAttempts = DefaultMaxAttempts
	}
	job.CreatedAt = time.Now()

	body, err := json.Marshal(job)
	if err != nil {
		return ScoreJob{}, fmt.Errorf("marshal job: %w", err)
	}

	if err := q.queue.Send(ctx, goqite.Message{Body: body}); err != nil {
		return ScoreJob{}, fmt.Errorf("send to queue: %w", err)
	}

	q.record(job.ID, EventQueued, "")
	return job, nil
}

// Receive gets the next job from the queue. Both results are nil when the
// queue is empty.
func (q *Queue) Receive(ctx context.Context) (*ScoreJob, *goqite.Message, error) {
	msg, err := q.queue.Receive(ctx)
	if err != nil {
		return nil, nil, err
	}
	if msg == nil {
		return nil, nil, nil
	}

	var job ScoreJob
	if err := json.Unmarshal(msg.Body, &job); err != nil {
		return nil, msg, fmt.Errorf("unmarshal job: %w", err)
	}

	return &job, msg, nil
}

// Extend extends the timeout for a message being processed.
func (q *Queue) Extend(ctx context.Context, msg *goqite.Message, d time.Duration) error {
	return q.queue.Extend(ctx, msg.ID, d)
}

// Delete removes a message from the queue (job completed).
func (q *Queue) Delete(ctx context.Context, msg *goqite.Message) error {
	return q.queue.Delete(ctx, msg.ID)
}

// Record writes a job event if an event recorder is attached.
func (q *Queue) Record(jobID, eventType, details string) {
	q.record(jobID, eventType, details)
}

func (q *Queue) record(jobID, eventType, details string) {
	if q.Events != nil {
		q.Events.RecordEvent(jobID, eventType, details)
	}
}

func isAlreadySetup(err error) bool {
	return strings.Contains(err.Error(), "already exists")
}
