package worker

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeblew999/templateforge/internal/model"
	"github.com/joeblew999/templateforge/pkg/autofix"
	"github.com/joeblew999/templateforge/pkg/db"
	"github.com/joeblew999/templateforge/pkg/document"
	"github.com/joeblew999/templateforge/pkg/queue"
)

const bareTemplate = `<!DOCTYPE html><html><head><title>t</title></head><body>` +
	`<table><tr><td><img src="a.png"><h1>{{headline}}</h1></td></tr></table></body></html>`

type fixture struct {
	engine  *Engine
	jobs    model.ScoreJobsModel
	results model.ScoredTemplatesModel
	events  *queue.EventRecorder
	eventsM model.JobEventsModel
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	d, err := db.Open(filepath.Join(t.TempDir(), "forge.db"))
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })

	events, err := queue.NewEventRecorder(d.SqlConn())
	require.NoError(t, err)
	q, err := queue.NewQueue(d.DB, "score", events)
	require.NoError(t, err)

	jobs := model.NewScoreJobsModel(d.SqlConn())
	results := model.NewScoredTemplatesModel(d.SqlConn())
	cfg := DefaultConfig()
	cfg.RateLimit = 0

	return fixture{
		engine:  NewEngine(q, jobs, results, cfg),
		jobs:    jobs,
		results: results,
		events:  events,
		eventsM: model.NewJobEventsModel(d.SqlConn()),
	}
}

func TestEvaluateWithFix(t *testing.T) {
	ev := Evaluate(document.Document{Type: "welcome", HTML: bareTemplate}, true)

	assert.True(t, ev.Document.AutoFixed)
	assert.ElementsMatch(t, []string{autofix.RuleImageAlt, autofix.RuleTablePresentation, autofix.RuleHTMLLang}, ev.AppliedFixes)
	assert.Contains(t, ev.Document.HTML, `role="presentation"`)
	assert.NotEmpty(t, ev.ContentHash)
	assert.NotEmpty(t, ev.StructureHash)
	// Validation describes the submitted markup, before fixes.
	assert.NotEmpty(t, ev.Validation.Warnings)
}

func TestEvaluateWithoutFix(t *testing.T) {
	ev := Evaluate(document.Document{HTML: bareTemplate}, false)

	assert.False(t, ev.Document.AutoFixed)
	assert.Empty(t, ev.AppliedFixes)
	assert.Equal(t, bareTemplate, ev.Document.HTML)
}

func TestEvaluateRow(t *testing.T) {
	ev := Evaluate(document.Document{Type: "welcome", Skin: "apple_light", HTML: bareTemplate}, true)
	row := ev.Row("r1", "j1")

	assert.Equal(t, "r1", row.Id)
	assert.Equal(t, "j1", model.NullStringValue(row.JobId))
	assert.Equal(t, int64(1), row.AutoFixed)
	assert.Equal(t, int64(ev.Score.Total), row.Total)
	assert.Equal(t, string(ev.Score.Grade), row.Grade)
	assert.Equal(t, ev.AppliedFixes, model.DecodeList(row.AppliedFixes))
	assert.Equal(t, ev.Score.Deductions, model.DecodeList(row.Deductions))

	assert.False(t, ev.Row("r2", "").JobId.Valid)
}

func TestSubmitAndDrain(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	job, err := f.engine.Submit(ctx, queue.ScoreJob{Type: "welcome", HTML: bareTemplate, AutoFix: true})
	require.NoError(t, err)
	require.NotEmpty(t, job.ID)

	pending, err := f.jobs.FindOne(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, model.JobPending, pending.Status)

	n, err := f.engine.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	done, err := f.jobs.FindOne(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, model.JobDone, done.Status)
	assert.Equal(t, int64(1), done.Attempts)
	require.True(t, done.ResultId.Valid)

	result, err := f.results.FindOne(ctx, done.ResultId.String)
	require.NoError(t, err)
	assert.Equal(t, job.ID, model.NullStringValue(result.JobId))
	assert.Equal(t, int64(1), result.AutoFixed)
	assert.Contains(t, result.Html, `lang="en"`)

	f.events.Flush()
	events, err := f.eventsM.ListByJob(ctx, job.ID)
	require.NoError(t, err)
	var types []string
	for _, e := range events {
		types = append(types, e.EventType)
	}
	assert.Contains(t, types, queue.EventQueued)
	assert.Contains(t, types, queue.EventScored)
}

func TestDrainEmptyQueue(t *testing.T) {
	f := newFixture(t)

	n, err := f.engine.Drain(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStartStop(t *testing.T) {
	f := newFixture(t)

	f.engine.Start(2)
	f.engine.Start(2)
	f.engine.Stop()
	f.engine.Stop()
}
