// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package score

import (
	"context"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/joeblew999/templateforge/internal/errorx"
	"github.com/joeblew999/templateforge/internal/logic/shared"
	"github.com/joeblew999/templateforge/internal/svc"
	"github.com/joeblew999/templateforge/internal/types"
	"github.com/joeblew999/templateforge/internal/worker"
	"github.com/joeblew999/templateforge/pkg/document"
)

type ScoreTemplateLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewScoreTemplateLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ScoreTemplateLogic {
	return &ScoreTemplateLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ScoreTemplateLogic) ScoreTemplate(req *types.ScoreRequest) (resp *types.ScoreResponse, err error) {
	ev := worker.Evaluate(document.Document{
		Type: req.Type,
		Name: req.Name,
		Skin: req.Skin,
		HTML: req.Html,
	}, req.Autofix)

	resp = &types.ScoreResponse{
		Score:         shared.ScoreCard(ev.Score),
		Validation:    shared.Validation(ev.Validation),
		AutoFixed:     ev.Document.AutoFixed,
		AppliedFixes:  ev.AppliedFixes,
		ContentHash:   ev.ContentHash,
		StructureHash: ev.StructureHash,
	}
	if resp.AppliedFixes == nil {
		resp.AppliedFixes = []string{}
	}
	if ev.Document.AutoFixed {
		resp.Html = ev.Document.HTML
	}

	if req.Store {
		id := uuid.New().String()
		if _, err := l.svcCtx.ScoredTemplatesModel.Insert(l.ctx, ev.Row(id, "")); err != nil {
			return nil, errorx.ErrInternal("failed to store score: " + err.Error())
		}
		resp.Id = id
	}

	l.Infow("Template scored",
		logx.Field("total", ev.Score.Total),
		logx.Field("grade", string(ev.Score.Grade)),
		logx.Field("stored", req.Store),
	)
	return resp, nil
}
