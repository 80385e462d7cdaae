// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package config

import (
	"AtelierAI/app/services/stylist"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf

	LogConf logx.LogConf

	AccessSecret string

	Redis redis.RedisConf

	Stylist stylist.Config
}
