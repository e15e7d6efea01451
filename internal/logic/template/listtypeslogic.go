// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package template

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/joeblew999/templateforge/internal/logic/shared"
	"github.com/joeblew999/templateforge/internal/svc"
	"github.com/joeblew999/templateforge/internal/types"
)

type ListTypesLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListTypesLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListTypesLogic {
	return &ListTypesLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListTypesLogic) ListTypes() (resp *types.ListTypesResponse, err error) {
	list := l.svcCtx.Generator.Registry.List()
	infos := make([]types.TemplateTypeInfo, 0, len(list))
	for _, t := range list {
		infos = append(infos, shared.TemplateType(t))
	}

	return &types.ListTypesResponse{
		Types: infos,
		Total: len(infos),
	}, nil
}
