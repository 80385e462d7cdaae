// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package svc

import (
	"context"

	"AtelierAI/app/api/stylist/internal/config"
	"AtelierAI/app/common/middleware"
	"AtelierAI/app/services/stylist"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/rest"
)

type ServiceContext struct {
	Config         config.Config
	AuthMiddleware rest.Middleware
	Stylist        *stylist.Stylist
}

func NewServiceContext(c config.Config) *ServiceContext {
	logx.MustSetup(c.LogConf)

	rds := redis.MustNewRedis(c.Redis)

	return &ServiceContext{
		Config:         c,
		AuthMiddleware: middleware.NewAuthMiddleware(c.AccessSecret).Handle,
		Stylist:        stylist.MustNew(context.Background(), c.Stylist, rds),
	}
}
