package queue

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeblew999/templateforge/pkg/db"
)

func newTestQueue(t *testing.T) (*Queue, *db.DB) {
	t.Helper()
	d, err := db.Open(filepath.Join(t.TempDir(), "forge.db"))
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })

	q, err := NewQueue(d.DB, "score", nil)
	require.NoError(t, err)
	return q, d
}

func TestEnqueueReceiveDelete(t *testing.T) {
	ctx := context.Background()
	q, _ := newTestQueue(t)

	job, err := q.Enqueue(ctx, ScoreJob{Type: "welcome", HTML: "<p>hi</p>", AutoFix: true})
	require.NoError(t, err)
	assert.NotEmpty(t, job.ID)
	assert.Equal(t, DefaultMaxAttempts, job.MaxAttempts)
	assert.False(t, job.CreatedAt.IsZero())

	got, msg, err := q.Receive(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, msg)
	assert.Equal(t, job.ID, got.ID)
	assert.Equal(t, "<p>hi</p>", got.Document().HTML)
	assert.True(t, got.AutoFix)

	require.NoError(t, q.Delete(ctx, msg))

	got, msg, err = q.Receive(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Nil(t, msg)
}

func TestNewQueueTwice(t *testing.T) {
	_, d := newTestQueue(t)

	q, err := NewQueue(d.DB, "other", nil)
	require.NoError(t, err)
	assert.Equal(t, "other", q.Name())
}

func TestDocument(t *testing.T) {
	job := ScoreJob{ID: "j1", Type: "promo", Name: "Promo", Skin: "linear_dark", HTML: "<html></html>"}
	doc := job.Document()
	assert.Equal(t, "j1", doc.ID)
	assert.Equal(t, "promo", doc.Label())
	assert.Equal(t, "linear_dark", doc.Skin)
	assert.False(t, doc.AutoFixed)
}

func TestEventRecorder(t *testing.T) {
	ctx := context.Background()
	_, d := newTestQueue(t)
	conn := d.SqlConn()

	_, err := conn.ExecCtx(ctx, "INSERT INTO score_jobs (id) VALUES (?)", "j1")
	require.NoError(t, err)

	events, err := NewEventRecorder(conn)
	require.NoError(t, err)
	events.now = func() time.Time {
		return time.Date(2026, 3, 1, 9, 30, 0, 0, time.FixedZone("CET", 3600))
	}

	events.RecordEvent("j1", EventScored, "total=82 grade=B")
	events.Flush()

	var row struct {
		EventType string `db:"event_type"`
		Timestamp string `db:"timestamp"`
		Details   string `db:"details"`
	}
	require.NoError(t, conn.QueryRowCtx(ctx, &row,
		"SELECT event_type, CAST(timestamp AS TEXT) AS timestamp, details FROM job_events WHERE job_id = ?", "j1"))
	assert.Equal(t, EventScored, row.EventType)
	assert.Equal(t, "2026-03-01 08:30:00", row.Timestamp)
	assert.Equal(t, "total=82 grade=B", row.Details)
}
