package redis

import (
	"childcare-center-backend/config"
	"childcare-center-backend/internal/global/sentry/tracing"
	"fmt"

	"github.com/redis/go-redis/v9"
)

var Client *redis.Client

// Init 初始化 Redis 连接
// 未配置 Host 时不启用（打卡机限流会直接放行）
func Init() {
	cfg := config.Get()
	if cfg.Redis.Host == "" {
		return
	}

	Client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if tracing.IsEnabled() {
		Client.AddHook(tracing.NewRedisSentryHook())
	}
}
