package reports

import (
	"childcare-center-backend/internal/global/middleware"
	"childcare-center-backend/internal/module/reports/daily"
	"childcare-center-backend/internal/module/reports/period"

	"github.com/gin-gonic/gin"
)

func (r *ModuleReports) InitRouter(g *gin.RouterGroup) {
	// 考勤报表仅后台管理员可见
	reportsGroup := g.Group("/reports").Use(middleware.Auth(1))
	{
		// 当日考勤总览
		reportsGroup.GET("/daily", daily.Summary)
		// 薪资周期汇总
		reportsGroup.GET("/period", period.Report)
		// 薪资周期导出 Excel
		reportsGroup.GET("/period/export", period.Export)
	}
}
