package parent

import (
	"childcare-center-backend/internal/global/database"
	"childcare-center-backend/internal/global/response"
	"childcare-center-backend/internal/model"
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ChildRequest struct {
	Name      string `json:"name" binding:"required"`
	Birthday  string `json:"birthday" binding:"omitempty,datetime=2006-01-02"`
	Classroom string `json:"classroom"`
}

// CreateChild 为家长登记一名幼儿
func CreateChild(c *gin.Context) {
	parentID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req ChildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var p model.Parent
	if err := database.DB.First(&p, parentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("家长不存在"))
			return
		}
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	child := &model.Child{
		ParentID:  parentID,
		Name:      req.Name,
		Birthday:  req.Birthday,
		Classroom: req.Classroom,
	}
	if err := database.DB.Create(child).Error; err != nil {
		log.Error("插入 child 记录失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, child)
}

// ListChildren 列出某家长名下的幼儿
func ListChildren(c *gin.Context) {
	parentID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var children []model.Child
	if err := database.DB.Where("parent_id = ?", parentID).Find(&children).Error; err != nil {
		log.Error("查询 child 表错误", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, children)
}

// UpdateChild 更新幼儿信息
func UpdateChild(c *gin.Context) {
	childID, ok := idParam(c, "child_id")
	if !ok {
		return
	}
	var req ChildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var child model.Child
	if err := database.DB.First(&child, childID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("幼儿不存在"))
			return
		}
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	child.Name = req.Name
	child.Birthday = req.Birthday
	child.Classroom = req.Classroom
	if err := database.DB.Save(&child).Error; err != nil {
		log.Error("更新 child 记录失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, child)
}

// DeleteChild 移除幼儿登记
func DeleteChild(c *gin.Context) {
	childID, ok := idParam(c, "child_id")
	if !ok {
		return
	}
	var child model.Child
	if err := database.DB.First(&child, childID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("幼儿不存在"))
			return
		}
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if err := database.DB.Delete(&child).Error; err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
