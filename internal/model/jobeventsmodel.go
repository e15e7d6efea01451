package model

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ JobEventsModel = (*customJobEventsModel)(nil)

type (
	// JobEventsModel is an interface to be customized, add more methods here,
	// and implement the added methods in customJobEventsModel.
	JobEventsModel interface {
		jobEventsModel
		withSession(session sqlx.Session) JobEventsModel
		ListByJob(ctx context.Context, jobID string) ([]*JobEvents, error)
	}

	customJobEventsModel struct {
		*defaultJobEventsModel
	}
)

// NewJobEventsModel returns a model for the database table.
func NewJobEventsModel(conn sqlx.SqlConn) JobEventsModel {
	return &customJobEventsModel{
		defaultJobEventsModel: newJobEventsModel(conn),
	}
}

func (m *customJobEventsModel) withSession(session sqlx.Session) JobEventsModel {
	return NewJobEventsModel(sqlx.NewSqlConnFromSession(session))
}

// ListByJob returns a job's events oldest first.
func (m *customJobEventsModel) ListByJob(ctx context.Context, jobID string) ([]*JobEvents, error) {
	var resp []*JobEvents
	query := fmt.Sprintf("select %s from %s where `job_id` = ? order by `timestamp`, `id`", jobEventsRows, m.table)
	if err := m.conn.QueryRowsCtx(ctx, &resp, query, jobID); err != nil {
		return nil, err
	}
	return resp, nil
}
