// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package stats

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/mr"

	"github.com/joeblew999/templateforge/internal/errorx"
	"github.com/joeblew999/templateforge/internal/model"
	"github.com/joeblew999/templateforge/internal/svc"
	"github.com/joeblew999/templateforge/internal/types"
)

type GetStatsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetStatsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetStatsLogic {
	return &GetStatsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetStatsLogic) GetStats() (resp *types.StatsResponse, err error) {
	var (
		jobs    map[string]int
		grades  map[string]int
		summary *model.ScoreSummary
	)

	err = mr.Finish(
		func() (e error) {
			jobs, e = l.svcCtx.ScoreJobsModel.Stats(l.ctx)
			return e
		},
		func() (e error) {
			grades, e = l.svcCtx.ScoredTemplatesModel.GradeCounts(l.ctx)
			return e
		},
		func() (e error) {
			summary, e = l.svcCtx.ScoredTemplatesModel.Summary(l.ctx)
			return e
		},
	)
	if err != nil {
		return nil, errorx.ErrInternal("failed to get stats: " + err.Error())
	}

	total := 0
	for _, count := range jobs {
		total += count
	}

	return &types.StatsResponse{
		Jobs:      jobs,
		JobsTotal: total,
		Grades:    grades,
		Scored:    summary.Count,
		Average:   summary.Average,
		Best:      summary.Best,
	}, nil
}
