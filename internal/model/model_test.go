package model

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/stores/sqlx"

	"github.com/joeblew999/templateforge/pkg/db"
)

func openConn(t *testing.T) sqlx.SqlConn {
	t.Helper()
	d, err := db.Open(filepath.Join(t.TempDir(), "forge.db"))
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })
	return d.SqlConn()
}

func scored(id, grade string, total int64) *ScoredTemplates {
	return &ScoredTemplates{
		Id:           id,
		Type:         "welcome",
		Html:         "<html></html>",
		AppliedFixes: EncodeList(nil),
		Total:        total,
		Grade:        grade,
		Deductions:   EncodeList([]string{"[hierarchy] Missing H1 tag"}),
		Errors:       EncodeList(nil),
		Warnings:     EncodeList(nil),
	}
}

func TestScoredTemplatesModel(t *testing.T) {
	ctx := context.Background()
	m := NewScoredTemplatesModel(openConn(t))

	for _, rec := range []*ScoredTemplates{
		scored("a", "A", 92),
		scored("b", "F", 40),
		scored("c", "A", 88),
	} {
		_, err := m.Insert(ctx, rec)
		require.NoError(t, err)
	}

	got, err := m.FindOne(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, int64(92), got.Total)
	assert.Equal(t, []string{"[hierarchy] Missing H1 tag"}, DecodeList(got.Deductions))

	_, err = m.FindOne(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	onlyA, err := m.ListByGrade(ctx, "A", 10)
	require.NoError(t, err)
	assert.Len(t, onlyA, 2)

	all, err := m.ListByGrade(ctx, "all", 2)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	counts, err := m.GradeCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"A": 2, "F": 1}, counts)

	sum, err := m.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, sum.Count)
	assert.Equal(t, 92, sum.Best)
	assert.InDelta(t, 73.33, sum.Average, 0.01)

	require.NoError(t, m.Delete(ctx, "b"))
	_, err = m.FindOne(ctx, "b")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestScoreJobsLifecycle(t *testing.T) {
	ctx := context.Background()
	m := NewScoreJobsModel(openConn(t))

	_, err := m.Insert(ctx, &ScoreJobs{Id: "job-1", Type: "welcome", Autofix: 1, Status: JobPending, MaxAttempts: 3})
	require.NoError(t, err)

	require.NoError(t, m.MarkProcessing(ctx, "job-1"))
	require.NoError(t, m.MarkRetry(ctx, "job-1", "database is locked"))
	job, err := m.FindOne(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, JobPending, job.Status)
	assert.Equal(t, int64(1), job.Attempts)
	assert.Equal(t, "database is locked", NullStringValue(job.Error))

	require.NoError(t, m.MarkProcessing(ctx, "job-1"))
	require.NoError(t, m.MarkDone(ctx, "job-1", "result-1"))
	job, err = m.FindOne(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, JobDone, job.Status)
	assert.Equal(t, int64(2), job.Attempts)
	assert.Equal(t, "result-1", NullStringValue(job.ResultId))
	assert.False(t, job.Error.Valid)

	_, err = m.Insert(ctx, &ScoreJobs{Id: "job-2", Status: JobPending, MaxAttempts: 1})
	require.NoError(t, err)
	require.NoError(t, m.MarkFailed(ctx, "job-2", "boom"))

	stats, err := m.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{JobDone: 1, JobFailed: 1}, stats)

	job.Name = "renamed"
	require.NoError(t, m.Update(ctx, job))
	job, err = m.FindOne(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, "renamed", job.Name)
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, "[]", EncodeList(nil))
	assert.Equal(t, []string{"a", "b"}, DecodeList(EncodeList([]string{"a", "b"})))
	assert.Empty(t, DecodeList("not json"))
	assert.Equal(t, int64(1), BoolInt(true))
	assert.False(t, NullString("").Valid)
	assert.Equal(t, "x", NullStringValue(NullString("x")))
}
