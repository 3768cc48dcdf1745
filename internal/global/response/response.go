package response

import (
	"net/http"
	"runtime/debug"

	"childcare-center-backend/config"
	"childcare-center-backend/internal/global/logger"
	"childcare-center-backend/internal/global/sentry"

	"github.com/gin-gonic/gin"
)

// 业务错误码采用 HTTP 语义，>=500 的错误会上报 Sentry
var (
	ErrInvalidRequest = newError(400, "请求参数错误")
	ErrTokenInvalid   = newError(401, "登录凭证无效或已过期")
	ErrUnauthorized   = newError(401, "未登录或登录信息缺失")
	ErrForbidden      = newError(403, "没有操作权限")
	ErrNotFound       = newError(404, "资源不存在")
	ErrPinConflict    = newError(409, "PIN 码已被占用")
	ErrRateLimited    = newError(429, "尝试次数过多，请稍后再试")
	ErrDatabase       = newError(500, "数据库错误")
	ErrInternal       = newError(500, "服务器内部错误")
)

type ResponseBody struct {
	Code   int32  `json:"code"`
	Msg    string `json:"msg"`
	Data   any    `json:"data"`
	Origin string `json:"origin,omitempty"`
}

func Success(c *gin.Context, data any) {
	body := ResponseBody{
		Code: 200,
		Msg:  "success",
		Data: data,
	}
	c.Set(ResponseContextKey, body)
	c.JSON(http.StatusOK, body)
}

func Fail(c *gin.Context, err *Error) {
	body := ResponseBody{
		Code: err.Code,
		Msg:  err.Message,
	}
	// Origin 仅在 debug 模式下暴露给前端
	if config.Get().Mode == config.ModeDebug {
		body.Origin = err.Origin
	}
	c.Set(ErrorContextKey, err)
	c.Set(ResponseContextKey, body)
	sentry.CaptureException(c, err)
	c.JSON(int(err.Code), body)
}

// Recovery 捕获 handler panic，统一返回 500
// 由 middleware.Recovery 以 defer 调用
func Recovery(c *gin.Context) {
	if r := recover(); r != nil {
		logger.New("Recovery").Error("handler panic",
			"panic", r,
			"path", c.Request.URL.Path,
			"stack", string(debug.Stack()),
		)
		sentry.CapturePanic(c, r)
		c.JSON(http.StatusInternalServerError, ResponseBody{
			Code: ErrInternal.Code,
			Msg:  ErrInternal.Message,
		})
		c.Abort()
	}
}
