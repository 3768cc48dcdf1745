package employee

import (
	"childcare-center-backend/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (e *ModuleEmployee) InitRouter(r *gin.RouterGroup) {
	// 员工档案仅后台管理员可操作
	employeeGroup := r.Group("/employee").Use(middleware.Auth(1))
	{
		employeeGroup.POST("/create", CreateEmployee)
		employeeGroup.PUT("/update/:id", UpdateEmployee)
		employeeGroup.DELETE("/delete/:id", DeleteEmployee)
		employeeGroup.GET("/list", ListEmployees)
		// PIN 可用性预检（新建/修改表单的即时校验）
		employeeGroup.GET("/pin-check", CheckPin)
	}
}
