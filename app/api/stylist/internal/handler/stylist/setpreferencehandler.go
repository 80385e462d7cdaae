// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package stylist

import (
	"net/http"

	"AtelierAI/app/api/stylist/internal/logic/stylist"
	"AtelierAI/app/api/stylist/internal/svc"
	"AtelierAI/app/api/stylist/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func SetPreferenceHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.SetPreferenceRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := stylist.NewSetPreferenceLogic(r.Context(), svcCtx)
		resp, err := l.SetPreference(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
