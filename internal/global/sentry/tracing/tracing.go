// Package tracing 提供 Sentry 性能追踪的集成
// 包含 GORM、Redis 和 HTTP 客户端的追踪实现
package tracing

import (
	"childcare-center-backend/config"
	"context"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
)

// IsEnabled 检查 Sentry 追踪是否已启用
func IsEnabled() bool {
	return config.Get().Sentry.Dsn != ""
}

// ContextWithSpan 返回一个包含 Sentry span 的 context
// 用于将 gin.Context 转换为可以传递给 GORM/Redis 的 context
// 用法：
//
//	ctx := tracing.ContextWithSpan(c)
//	database.DB.WithContext(ctx).Find(&punches)
func ContextWithSpan(c *gin.Context) context.Context {
	if c == nil || c.Request == nil || c.Request.Context() == nil {
		return context.Background()
	}
	// sentrygin 中间件已经把 span 存进了 request context
	return c.Request.Context()
}

// StartSpan 在当前请求的 transaction 下创建一个业务子 span
// 返回值可能为 nil，调用方需判空后 Finish()
func StartSpan(c *gin.Context, operation string) *sentry.Span {
	if c == nil || c.Request == nil {
		return nil
	}
	parent := sentry.SpanFromContext(c.Request.Context())
	if parent == nil {
		return nil
	}
	return parent.StartChild(operation)
}
