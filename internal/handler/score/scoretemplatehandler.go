// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package score

import (
	"net/http"

	"github.com/joeblew999/templateforge/internal/logic/score"
	"github.com/joeblew999/templateforge/internal/svc"
	"github.com/joeblew999/templateforge/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func ScoreTemplateHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ScoreRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := score.NewScoreTemplateLogic(r.Context(), svcCtx)
		resp, err := l.ScoreTemplate(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
