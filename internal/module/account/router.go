package account

import (
	"childcare-center-backend/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (a *ModuleAccount) InitRouter(r *gin.RouterGroup) {
	accountGroup := r.Group("/account")

	// 后台/打卡端员工登录
	accountGroup.POST("/staff/login", StaffLogin)
	// 家长端登录
	accountGroup.POST("/parent/login", ParentLogin)

	accountGroup.Use(middleware.Auth(0)).GET("/me", Me)
}
