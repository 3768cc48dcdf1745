package kiosk

import (
	"childcare-center-backend/config"
	redisglobal "childcare-center-backend/internal/global/redis"
	"context"
	"fmt"
	"time"
)

// PIN 错误限流：同一终端（按来源 IP）连续输错若干次后锁定一段时间
// Redis 未启用时直接放行，正确性不依赖限流

func attemptKey(ip string) string {
	return fmt.Sprintf("kiosk:pin_miss:%s", ip)
}

// pinLocked 该终端是否已被锁定
func pinLocked(ctx context.Context, ip string) bool {
	if redisglobal.Client == nil {
		return false
	}
	count, err := redisglobal.Client.Get(ctx, attemptKey(ip)).Int()
	if err != nil {
		return false
	}
	return count >= config.Get().Kiosk.MaxPinAttempts
}

// recordPinMiss 记一次 PIN 错误，首次错误开始计锁定窗口
func recordPinMiss(ctx context.Context, ip string) {
	if redisglobal.Client == nil {
		return
	}
	key := attemptKey(ip)
	count, err := redisglobal.Client.Incr(ctx, key).Result()
	if err != nil {
		log.Warn("PIN 限流计数失败", "error", err)
		return
	}
	if count == 1 {
		lockout := time.Duration(config.Get().Kiosk.LockoutSeconds) * time.Second
		redisglobal.Client.Expire(ctx, key, lockout)
	}
}

// clearPinMisses PIN 验证通过后清零
func clearPinMisses(ctx context.Context, ip string) {
	if redisglobal.Client == nil {
		return
	}
	redisglobal.Client.Del(ctx, attemptKey(ip))
}
