// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package score

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/joeblew999/templateforge/internal/svc"
	"github.com/joeblew999/templateforge/internal/types"
	"github.com/joeblew999/templateforge/pkg/autofix"
	"github.com/joeblew999/templateforge/pkg/document"
)

type AutofixTemplateLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewAutofixTemplateLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AutofixTemplateLogic {
	return &AutofixTemplateLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *AutofixTemplateLogic) AutofixTemplate(req *types.AutofixRequest) (resp *types.AutofixResponse, err error) {
	fixed, applied := autofix.Apply(document.Document{HTML: req.Html})
	if applied == nil {
		applied = []string{}
	}

	return &types.AutofixResponse{
		Html:    fixed.HTML,
		Applied: applied,
		Changed: fixed.HTML != req.Html,
	}, nil
}
