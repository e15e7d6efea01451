package model

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

// Job statuses.
const (
	JobPending    = "pending"
	JobProcessing = "processing"
	JobDone       = "done"
	JobFailed     = "failed"
)

var _ ScoreJobsModel = (*customScoreJobsModel)(nil)

type (
	// ScoreJobsModel is an interface to be customized, add more methods here,
	// and implement the added methods in customScoreJobsModel.
	ScoreJobsModel interface {
		scoreJobsModel
		withSession(session sqlx.Session) ScoreJobsModel
		MarkProcessing(ctx context.Context, id string) error
		MarkDone(ctx context.Context, id, resultID string) error
		MarkRetry(ctx context.Context, id, errMsg string) error
		MarkFailed(ctx context.Context, id, errMsg string) error
		Stats(ctx context.Context) (map[string]int, error)
	}

	customScoreJobsModel struct {
		*defaultScoreJobsModel
	}
)

// NewScoreJobsModel returns a model for the database table.
func NewScoreJobsModel(conn sqlx.SqlConn) ScoreJobsModel {
	return &customScoreJobsModel{
		defaultScoreJobsModel: newScoreJobsModel(conn),
	}
}

func (m *customScoreJobsModel) withSession(session sqlx.Session) ScoreJobsModel {
	return NewScoreJobsModel(sqlx.NewSqlConnFromSession(session))
}

// MarkProcessing records a delivery attempt.
func (m *customScoreJobsModel) MarkProcessing(ctx context.Context, id string) error {
	query := fmt.Sprintf("update %s set `status` = ?, `attempts` = `attempts` + 1, `updated_at` = CURRENT_TIMESTAMP where `id` = ?", m.table)
	_, err := m.conn.ExecCtx(ctx, query, JobProcessing, id)
	return err
}

// MarkDone links a finished job to its scored template.
func (m *customScoreJobsModel) MarkDone(ctx context.Context, id, resultID string) error {
	query := fmt.Sprintf("update %s set `status` = ?, `result_id` = ?, `error` = null, `updated_at` = CURRENT_TIMESTAMP where `id` = ?", m.table)
	_, err := m.conn.ExecCtx(ctx, query, JobDone, resultID, id)
	return err
}

// MarkRetry puts a job back to pending after a failed attempt.
func (m *customScoreJobsModel) MarkRetry(ctx context.Context, id, errMsg string) error {
	query := fmt.Sprintf("update %s set `status` = ?, `error` = ?, `updated_at` = CURRENT_TIMESTAMP where `id` = ?", m.table)
	_, err := m.conn.ExecCtx(ctx, query, JobPending, errMsg, id)
	return err
}

// MarkFailed marks a job as permanently failed.
func (m *customScoreJobsModel) MarkFailed(ctx context.Context, id, errMsg string) error {
	query := fmt.Sprintf("update %s set `status` = ?, `error` = ?, `updated_at` = CURRENT_TIMESTAMP where `id` = ?", m.table)
	_, err := m.conn.ExecCtx(ctx, query, JobFailed, errMsg, id)
	return err
}

// Stats returns job counts grouped by status.
func (m *customScoreJobsModel) Stats(ctx context.Context) (map[string]int, error) {
	type statusCount struct {
		Status string `db:"status"`
		Count  int    `db:"count"`
	}

	var rows []statusCount
	query := fmt.Sprintf("select `status`, count(*) as `count` from %s group by `status`", m.table)
	if err := m.conn.QueryRowsCtx(ctx, &rows, query); err != nil {
		return nil, err
	}

	stats := make(map[string]int)
	for _, r := range rows {
		stats[r.Status] = r.Count
	}
	return stats, nil
}
