// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package score

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/joeblew999/templateforge/internal/logic/shared"
	"github.com/joeblew999/templateforge/internal/svc"
	"github.com/joeblew999/templateforge/internal/types"
	"github.com/joeblew999/templateforge/pkg/document"
	"github.com/joeblew999/templateforge/pkg/htmlcheck"
)

type ValidateTemplateLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewValidateTemplateLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ValidateTemplateLogic {
	return &ValidateTemplateLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ValidateTemplateLogic) ValidateTemplate(req *types.ValidateRequest) (resp *types.Validation, err error) {
	res := shared.Validation(htmlcheck.Validate(document.Document{Type: req.Type, HTML: req.Html}))
	return &res, nil
}
