// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package template

import (
	"net/http"

	"github.com/joeblew999/templateforge/internal/logic/template"
	"github.com/joeblew999/templateforge/internal/svc"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func ListSkinsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := template.NewListSkinsLogic(r.Context(), svcCtx)
		resp, err := l.ListSkins()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
