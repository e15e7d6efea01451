package model

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ ScoredTemplatesModel = (*customScoredTemplatesModel)(nil)

type (
	// ScoredTemplatesModel is an interface to be customized, add more methods here,
	// and implement the added methods in customScoredTemplatesModel.
	ScoredTemplatesModel interface {
		scoredTemplatesModel
		withSession(session sqlx.Session) ScoredTemplatesModel
		ListByGrade(ctx context.Context, grade string, limit int) ([]*ScoredTemplates, error)
		GradeCounts(ctx context.Context) (map[string]int, error)
		Summary(ctx context.Context) (*ScoreSummary, error)
	}

	customScoredTemplatesModel struct {
		*defaultScoredTemplatesModel
	}

	// ScoreSummary aggregates every stored score.
	ScoreSummary struct {
		Count   int     `db:"count"`
		Average float64 `db:"average"`
		Best    int     `db:"best"`
	}
)

// NewScoredTemplatesModel returns a model for the database table.
func NewScoredTemplatesModel(conn sqlx.SqlConn) ScoredTemplatesModel {
	return &customScoredTemplatesModel{
		defaultScoredTemplatesModel: newScoredTemplatesModel(conn),
	}
}

func (m *customScoredTemplatesModel) withSession(session sqlx.Session) ScoredTemplatesModel {
	return NewScoredTemplatesModel(sqlx.NewSqlConnFromSession(session))
}

// ListByGrade returns the newest scored templates, optionally of one grade.
func (m *customScoredTemplatesModel) ListByGrade(ctx context.Context, grade string, limit int) ([]*ScoredTemplates, error) {
	var resp []*ScoredTemplates
	var query string
	var args []any

	if grade != "" && grade != "all" {
		query = fmt.Sprintf("select %s from %s where `grade` = ? order by `created_at` desc, `id` limit ?", scoredTemplatesRows, m.table)
		args = []any{grade, limit}
	} else {
		query = fmt.Sprintf("select %s from %s order by `created_at` desc, `id` limit ?", scoredTemplatesRows, m.table)
		args = []any{limit}
	}

	if err := m.conn.QueryRowsCtx(ctx, &resp, query, args...); err != nil {
		return nil, err
	}
	return resp, nil
}

// GradeCounts returns scored template counts grouped by grade.
func (m *customScoredTemplatesModel) GradeCounts(ctx context.Context) (map[string]int, error) {
	type gradeCount struct {
		Grade string `db:"grade"`
		Count int    `db:"count"`
	}

	var rows []gradeCount
	query := fmt.Sprintf("select `grade`, count(*) as `count` from %s group by `grade`", m.table)
	if err := m.conn.QueryRowsCtx(ctx, &rows, query); err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, r := range rows {
		counts[r.Grade] = r.Count
	}
	return counts, nil
}

// Summary returns the count, mean and best total over all stored scores.
func (m *customScoredTemplatesModel) Summary(ctx context.Context) (*ScoreSummary, error) {
	var resp ScoreSummary
	query := fmt.Sprintf("select count(*) as `count`, coalesce(avg(`total`), 0) as `average`, coalesce(max(`total`), 0) as `best` from %s", m.table)
	if err := m.conn.QueryRowCtx(ctx, &resp, query); err != nil {
		return nil, err
	}
	return &resp, nil
}
