// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	stylist "AtelierAI/app/api/stylist/internal/handler/stylist"
	"AtelierAI/app/api/stylist/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		rest.WithMiddlewares(
			[]rest.Middleware{serverCtx.AuthMiddleware},
			[]rest.Route{
				{
					Method:  http.MethodPost,
					Path:    "/stylist/chat",
					Handler: stylist.ChatHandler(serverCtx),
				},
				{
					Method:  http.MethodGet,
					Path:    "/stylist/plan",
					Handler: stylist.GetPlanHandler(serverCtx),
				},
				{
					Method:  http.MethodGet,
					Path:    "/stylist/preference",
					Handler: stylist.GetPreferenceHandler(serverCtx),
				},
				{
					Method:  http.MethodPut,
					Path:    "/stylist/preference",
					Handler: stylist.SetPreferenceHandler(serverCtx),
				},
			}...,
		),
		rest.WithPrefix("/api/v1"),
	)
}
