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

type ListSkinsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListSkinsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListSkinsLogic {
	return &ListSkinsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListSkinsLogic) ListSkins() (resp *types.ListSkinsResponse, err error) {
	all := l.svcCtx.Generator.Skins.All()
	infos := make([]types.SkinInfo, 0, len(all))
	for _, s := range all {
		infos = append(infos, shared.Skin(s))
	}

	return &types.ListSkinsResponse{
		Skins: infos,
		Total: len(infos),
	}, nil
}
