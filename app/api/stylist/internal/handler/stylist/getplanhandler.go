// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package stylist

import (
	"net/http"

	"AtelierAI/app/api/stylist/internal/logic/stylist"
	"AtelierAI/app/api/stylist/internal/svc"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func GetPlanHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := stylist.NewGetPlanLogic(r.Context(), svcCtx)
		resp, err := l.GetPlan()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
