// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package job

import (
	"context"
	"errors"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/joeblew999/templateforge/internal/errorx"
	"github.com/joeblew999/templateforge/internal/logic/shared"
	"github.com/joeblew999/templateforge/internal/model"
	"github.com/joeblew999/templateforge/internal/svc"
	"github.com/joeblew999/templateforge/internal/types"
)

type GetJobLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetJobLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetJobLogic {
	return &GetJobLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetJobLogic) GetJob(req *types.GetJobRequest) (resp *types.JobResponse, err error) {
	row, err := l.svcCtx.ScoreJobsModel.FindOne(l.ctx, req.Id)
	if err != nil {
		return nil, errorx.Lookup(err, "job", req.Id)
	}

	resp = &types.JobResponse{
		Id:          row.Id,
		Type:        row.Type,
		Name:        row.Name,
		Skin:        row.Skin,
		Autofix:     row.Autofix == 1,
		Status:      row.Status,
		Attempts:    row.Attempts,
		MaxAttempts: row.MaxAttempts,
		Error:       model.NullStringValue(row.Error),
		CreatedAt:   row.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   row.UpdatedAt.Format(time.RFC3339),
		Events:      []types.JobEvent{},
	}

	if row.ResultId.Valid {
		result, err := l.svcCtx.ScoredTemplatesModel.FindOne(l.ctx, row.ResultId.String)
		if err == nil {
			summary := shared.Summary(result)
			resp.Result = &summary
		} else if !errors.Is(err, model.ErrNotFound) {
			return nil, errorx.ErrInternal("failed to load result: " + err.Error())
		}
	}

	events, err := l.svcCtx.JobEventsModel.ListByJob(l.ctx, row.Id)
	if err != nil {
		l.Errorf("Failed to list job events: %v", err)
	}
	for _, e := range events {
		resp.Events = append(resp.Events, types.JobEvent{
			Type:      e.EventType,
			Timestamp: e.Timestamp.Format(time.RFC3339),
			Details:   model.NullStringValue(e.Details),
		})
	}

	return resp, nil
}
