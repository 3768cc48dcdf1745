package timeclock

import (
	"childcare-center-backend/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (t *ModuleTimeclock) InitRouter(r *gin.RouterGroup) {
	// 打卡修正只开放给管理员，普通打卡走 kiosk 模块
	timeclockGroup := r.Group("/timeclock").Use(middleware.Auth(1))
	{
		// 补录缺失的打卡记录
		timeclockGroup.POST("/insert", InsertPunch)
		// 修正已有打卡记录
		timeclockGroup.PUT("/update/:id", EditPunch)
		// 物理删除打卡记录
		timeclockGroup.DELETE("/delete/:id", DeletePunch)
		// 按员工与日期范围查打卡记录
		timeclockGroup.GET("/employee/:id", ListEmployeePunches)
	}
}
