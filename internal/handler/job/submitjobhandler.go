// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package job

import (
	"net/http"

	"github.com/joeblew999/templateforge/internal/logic/job"
	"github.com/joeblew999/templateforge/internal/svc"
	"github.com/joeblew999/templateforge/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func SubmitJobHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.SubmitJobRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := job.NewSubmitJobLogic(r.Context(), svcCtx)
		resp, err := l.SubmitJob(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
