package queue

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

// Job lifecycle events stored in job_events.event_type.
const (
	EventQueued = "queued"
	EventScored = "scored"
	EventRetry  = "retry"
	EventFailed = "failed"
)

// EventTimeFormat matches SQLite's CURRENT_TIMESTAMP so event rows sort
// alongside the jobs table.
const EventTimeFormat = "2006-01-02 15:04:05"

const insertJobEvent = "insert into `job_events` (`id`, `job_id`, `event_type`, `timestamp`, `details`) values (?, ?, ?, ?, ?)"

// EventRecorder appends scoring job history. Writes go through a
// BulkInserter, so a row is visible only after the batch fills, the
// flush interval passes or Flush is called.
type EventRecorder struct {
	inserter *sqlx.BulkInserter
	now      func() time.Time
}

// NewEventRecorder prepares the job_events inserter on conn.
func NewEventRecorder(conn sqlx.SqlConn) (*EventRecorder, error) {
	inserter, err := sqlx.NewBulkInserter(conn, insertJobEvent)
	if err != nil {
		return nil, err
	}

	inserter.SetResultHandler(func(_ sql.Result, err error) {
		if err != nil {
			logx.Errorw("job event batch failed", logx.Field("error", err.Error()))
		}
	})

	return &EventRecorder{inserter: inserter, now: time.Now}, nil
}

// RecordEvent queues one event row for jobID. Details is free text such
// as "total=82 grade=B" for a scored job or the error for a retry.
func (r *EventRecorder) RecordEvent(jobID, eventType, details string) {
	stamp := r.now().UTC().Format(EventTimeFormat)
	if err := r.inserter.Insert(uuid.NewString(), jobID, eventType, stamp, details); err != nil {
		logx.Errorw("job event dropped",
			logx.Field("job", jobID),
			logx.Field("event", eventType),
			logx.Field("error", err.Error()))
	}
}

// Flush writes any buffered events.
func (r *EventRecorder) Flush() {
	r.inserter.Flush()
}
