// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package job

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/joeblew999/templateforge/internal/errorx"
	"github.com/joeblew999/templateforge/internal/model"
	"github.com/joeblew999/templateforge/internal/svc"
	"github.com/joeblew999/templateforge/internal/types"
	"github.com/joeblew999/templateforge/pkg/queue"
)

type SubmitJobLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSubmitJobLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SubmitJobLogic {
	return &SubmitJobLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *SubmitJobLogic) SubmitJob(req *types.SubmitJobRequest) (resp *types.SubmitJobResponse, err error) {
	if req.Html == "" {
		return nil, errorx.ErrMissingHTML()
	}

	job, err := l.svcCtx.Worker.Submit(l.ctx, queue.ScoreJob{
		Type:    req.Type,
		Name:    req.Name,
		Skin:    req.Skin,
		HTML:    req.Html,
		AutoFix: req.Autofix,
	})
	if err != nil {
		return nil, errorx.ErrInternal("failed to enqueue job: " + err.Error())
	}

	return &types.SubmitJobResponse{
		Id:     job.ID,
		Status: model.JobPending,
	}, nil
}
