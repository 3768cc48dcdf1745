package parent

import (
	"childcare-center-backend/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (p *ModuleParent) InitRouter(r *gin.RouterGroup) {
	parentGroup := r.Group("/parent").Use(middleware.Auth(1))
	{
		parentGroup.POST("/create", CreateParent)
		parentGroup.PUT("/update/:id", UpdateParent)
		parentGroup.DELETE("/delete/:id", DeleteParent)
		parentGroup.GET("/list", ListParents)

		// 幼儿名册挂在所属家长下
		parentGroup.POST("/:id/child", CreateChild)
		parentGroup.GET("/:id/children", ListChildren)
		parentGroup.PUT("/child/update/:child_id", UpdateChild)
		parentGroup.DELETE("/child/delete/:child_id", DeleteChild)
	}
}
