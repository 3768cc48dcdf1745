package kiosk

import (
	"childcare-center-backend/internal/global/database"
	"childcare-center-backend/internal/global/response"
	"childcare-center-backend/internal/model"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ChildCheckRequest struct {
	PinCode string `json:"pin_code" binding:"required"`
	ChildID uint   `json:"child_id" binding:"required"`
}

// ChildCheckIn 家长接送签到（入园）
func ChildCheckIn(c *gin.Context) {
	var req ChildCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	p, ok := findParentByPin(c, req.PinCode)
	if !ok {
		return
	}

	var child model.Child
	if err := database.DB.First(&child, "id = ? AND parent_id = ?", req.ChildID, p.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("该家长名下没有此幼儿"))
			return
		}
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	record := &model.ChildAttendance{
		ChildID:  child.ID,
		ParentID: p.ID,
		CheckIn:  time.Now(),
	}
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var openCount int64
		if err := tx.Model(&model.ChildAttendance{}).
			Where("child_id = ? AND check_out IS NULL", child.ID).
			Count(&openCount).Error; err != nil {
			return err
		}
		if openCount > 0 {
			return response.ErrInvalidRequest.WithTips("该幼儿已签到入园")
		}
		return tx.Create(record).Error
	})
	if err != nil {
		var respErr *response.Error
		if errors.As(err, &respErr) {
			response.Fail(c, respErr)
			return
		}
		log.Error("接送签到写入失败", "error", err, "child_id", child.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	notifyAttendance(attendanceEvent{
		Event:     eventCheckIn,
		ChildID:   child.ID,
		ChildName: child.Name,
		ParentID:  p.ID,
		Time:      record.CheckIn,
	})
	response.Success(c, record)
}

// ChildCheckOut 家长接送签退（离园）
func ChildCheckOut(c *gin.Context) {
	var req ChildCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	p, ok := findParentByPin(c, req.PinCode)
	if !ok {
		return
	}

	var child model.Child
	if err := database.DB.First(&child, "id = ? AND parent_id = ?", req.ChildID, p.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("该家长名下没有此幼儿"))
			return
		}
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	now := time.Now()
	var record model.ChildAttendance
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("child_id = ? AND check_out IS NULL", child.ID).
			Order("check_in DESC").First(&record).Error; err != nil {
			return err
		}
		record.CheckOut = &now
		return tx.Save(&record).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("该幼儿没有在园记录"))
			return
		}
		log.Error("接送签退写入失败", "error", err, "child_id", child.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	notifyAttendance(attendanceEvent{
		Event:     eventCheckOut,
		ChildID:   child.ID,
		ChildName: child.Name,
		ParentID:  p.ID,
		Time:      now,
	})
	response.Success(c, record)
}
