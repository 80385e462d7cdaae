// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package main

import (
	"context"
	stderrors "errors"
	"flag"
	"fmt"
	"net/http"

	"AtelierAI/app/api/stylist/internal/config"
	"AtelierAI/app/api/stylist/internal/handler"
	"AtelierAI/app/api/stylist/internal/svc"
	"AtelierAI/app/common/consts/errno"
	"AtelierAI/app/common/response"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/go-zero/rest/httpx"
	"github.com/zeromicro/x/errors"
)

var configFile = flag.String("f", "etc/stylist-api.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)

	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

	httpx.SetErrorHandler(errorBody)
	httpx.SetErrorHandlerCtx(func(_ context.Context, err error) (int, any) {
		return errorBody(err)
	})

	ctx := svc.NewServiceContext(c)
	defer ctx.Stylist.Close()
	handler.RegisterHandlers(server, ctx)

	fmt.Printf("Starting server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}

// errorBody keeps error payloads in the same code/msg envelope success
// responses use.
func errorBody(err error) (int, any) {
	var cm *errors.CodeMsg
	if stderrors.As(err, &cm) {
		return http.StatusOK, response.NewResponse(cm.Code, cm.Msg)
	}
	return http.StatusInternalServerError, response.NewResponse(int(errno.InternalError), err.Error())
}
