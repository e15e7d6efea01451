// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package template

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/joeblew999/templateforge/internal/errorx"
	"github.com/joeblew999/templateforge/internal/logic/shared"
	"github.com/joeblew999/templateforge/internal/svc"
	"github.com/joeblew999/templateforge/internal/types"
	"github.com/joeblew999/templateforge/pkg/score"
)

type ListTemplatesLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListTemplatesLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListTemplatesLogic {
	return &ListTemplatesLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListTemplatesLogic) ListTemplates(req *types.ListTemplatesRequest) (resp *types.ListTemplatesResponse, err error) {
	if req.Grade != "" && req.Grade != "all" {
		if _, ok := score.ParseGrade(req.Grade); !ok {
			return nil, errorx.ErrBadRequest("grade must be one of A, B, C, F or all")
		}
	}

	rows, err := l.svcCtx.ScoredTemplatesModel.ListByGrade(l.ctx, req.Grade, shared.Limit(req.Limit))
	if err != nil {
		return nil, errorx.ErrInternal("failed to list templates: " + err.Error())
	}

	items := make([]types.ScoredSummary, 0, len(rows))
	for _, row := range rows {
		items = append(items, shared.Summary(row))
	}

	return &types.ListTemplatesResponse{
		Templates: items,
		Total:     len(items),
	}, nil
}
