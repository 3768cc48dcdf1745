package kiosk

import (
	"github.com/gin-gonic/gin"
)

// InitRouter 打卡机端点不走 JWT：终端只有 PIN，
// 错误 PIN 由 Redis 限流兜底
func (k *ModuleKiosk) InitRouter(r *gin.RouterGroup) {
	kioskGroup := r.Group("/kiosk")

	// PIN 识别（终端首屏：输入 PIN 显示身份）
	kioskGroup.POST("/identify", Identify)
	// 员工上下班/午休打卡
	kioskGroup.POST("/clock", Clock)
	// 家长接送签到
	kioskGroup.POST("/child/check-in", ChildCheckIn)
	kioskGroup.POST("/child/check-out", ChildCheckOut)
}
