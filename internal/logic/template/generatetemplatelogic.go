// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package template

import (
	"context"
	"errors"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/joeblew999/templateforge/internal/errorx"
	"github.com/joeblew999/templateforge/internal/logic/shared"
	"github.com/joeblew999/templateforge/internal/svc"
	"github.com/joeblew999/templateforge/internal/types"
	"github.com/joeblew999/templateforge/internal/worker"
	"github.com/joeblew999/templateforge/pkg/forge"
)

type GenerateTemplateLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGenerateTemplateLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GenerateTemplateLogic {
	return &GenerateTemplateLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GenerateTemplateLogic) GenerateTemplate(req *types.GenerateRequest) (resp *types.GenerateResponse, err error) {
	var tpl forge.Template
	if req.Variant == 0 {
		tpl, err = l.svcCtx.Generator.Generate(req.Type, req.Skin)
	} else {
		tpl, err = l.svcCtx.Generator.LayoutVariant(req.Type, req.Variant, req.Skin)
	}
	if errors.Is(err, forge.ErrUnknownType) {
		return nil, errorx.ErrNotFound(err.Error())
	}
	if err != nil {
		return nil, errorx.ErrBadRequest(err.Error())
	}

	ev := worker.Evaluate(tpl.Document, false)
	return &types.GenerateResponse{
		Id:       tpl.ID,
		Type:     tpl.Type,
		BaseType: tpl.BaseType,
		Skin:     tpl.Skin,
		Sections: tpl.Sections,
		Html:     tpl.HTML,
		Score:    shared.ScoreCard(ev.Score),
		Valid:    shared.Validation(ev.Validation),
	}, nil
}
