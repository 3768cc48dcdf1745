package timeclock

import (
	"childcare-center-backend/internal/global/database"
	"childcare-center-backend/internal/global/jwt"
	"childcare-center-backend/internal/global/response"
	"childcare-center-backend/internal/model"
	"childcare-center-backend/internal/module/reports/tool"
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// EditPunch 修正一条打卡记录
// 起止时间与总时长在同一事务内落库，避免读到改了一半的记录
func EditPunch(c *gin.Context) {
	admin, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}
	punchID, ok := idParam(c)
	if !ok {
		return
	}

	var req PunchEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	if !req.changesPunch() {
		response.Fail(c, response.ErrInvalidRequest.WithTips("未提供任何修改字段"))
		return
	}

	var punch model.Punch
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&punch, punchID).Error; err != nil {
			return err
		}

		if respErr := applyEdit(&punch, &req, admin.UserID, time.Now()); respErr != nil {
			return respErr
		}

		// 重新打开记录前确认该员工没有其他进行中的打卡
		if punch.EndTime == nil {
			var openCount int64
			if err := tx.Model(&model.Punch{}).
				Where("employee_id = ? AND end_time IS NULL AND id <> ?", punch.EmployeeID, punch.ID).
				Count(&openCount).Error; err != nil {
				return err
			}
			if openCount > 0 {
				return response.ErrInvalidRequest.WithTips("该员工已有进行中的打卡记录")
			}
		}

		return tx.Save(&punch).Error
	})
	if err != nil {
		var respErr *response.Error
		if errors.As(err, &respErr) {
			response.Fail(c, respErr)
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("打卡记录不存在"))
			return
		}
		log.Error("修正打卡记录失败", "error", err, "punch_id", punchID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, punch)
}

type PunchInsertRequest struct {
	EmployeeID uint       `json:"employee_id" binding:"required"`
	StartTime  *time.Time `json:"start_time" binding:"required"`
	EndTime    *time.Time `json:"end_time"`
	EntryType  string     `json:"entry_type" binding:"omitempty,oneof=shift lunch_break"`
	Note       string     `json:"note"`
	Reason     string     `json:"reason"`
}

// InsertPunch 补录一条缺失的打卡记录
func InsertPunch(c *gin.Context) {
	admin, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req PunchInsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	if req.EndTime != nil && req.EndTime.Before(*req.StartTime) {
		response.Fail(c, response.ErrInvalidRequest.WithTips("结束时间不能早于开始时间"))
		return
	}

	entryType := req.EntryType
	if entryType == "" {
		entryType = model.EntryTypeShift
	}
	reason := req.Reason
	if reason == "" {
		reason = ReasonAdminInsert
	}
	now := time.Now()
	adminID := admin.UserID

	punch := &model.Punch{
		EmployeeID:   req.EmployeeID,
		StartTime:    *req.StartTime,
		EndTime:      req.EndTime,
		EntryType:    entryType,
		Note:         req.Note,
		AdjustedBy:   &adminID,
		AdjustedAt:   &now,
		AdjustReason: reason,
	}
	recomputeTotal(punch)

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var emp model.Employee
		if err := tx.First(&emp, req.EmployeeID).Error; err != nil {
			return err
		}
		if punch.EndTime == nil {
			var openCount int64
			if err := tx.Model(&model.Punch{}).
				Where("employee_id = ? AND end_time IS NULL", req.EmployeeID).
				Count(&openCount).Error; err != nil {
				return err
			}
			if openCount > 0 {
				return response.ErrInvalidRequest.WithTips("该员工已有进行中的打卡记录")
			}
		}
		return tx.Create(punch).Error
	})
	if err != nil {
		var respErr *response.Error
		if errors.As(err, &respErr) {
			response.Fail(c, respErr)
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("员工不存在"))
			return
		}
		log.Error("补录打卡记录失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, punch)
}

// DeletePunch 物理删除打卡记录，ID 不存在时报 404 而非静默成功
func DeletePunch(c *gin.Context) {
	punchID, ok := idParam(c)
	if !ok {
		return
	}

	var punch model.Punch
	if err := database.DB.First(&punch, punchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("打卡记录不存在"))
			return
		}
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if err := database.DB.Delete(&punch).Error; err != nil {
		log.Error("删除打卡记录失败", "error", err, "punch_id", punchID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// ListEmployeePunches 查某员工一段日期内的打卡记录，按开始时间升序
func ListEmployeePunches(c *gin.Context) {
	employeeID, ok := idParam(c)
	if !ok {
		return
	}

	q := database.DB.Where("employee_id = ?", employeeID).Order("start_time ASC")
	if s := c.Query("start_date"); s != "" {
		day, err := tool.ParseDate(s)
		if err != nil {
			response.Fail(c, response.ErrInvalidRequest.WithTips("start_date 格式错误"))
			return
		}
		q = q.Where("start_time >= ?", day)
	}
	if s := c.Query("end_date"); s != "" {
		day, err := tool.ParseDate(s)
		if err != nil {
			response.Fail(c, response.ErrInvalidRequest.WithTips("end_date 格式错误"))
			return
		}
		q = q.Where("start_time < ?", day.AddDate(0, 0, 1))
	}

	var punches []model.Punch
	if err := q.Find(&punches).Error; err != nil {
		log.Error("查询 punch 表错误", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, punches)
}

func idParam(c *gin.Context) (uint, bool) {
	v, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips("ID 格式错误"))
		return 0, false
	}
	return uint(v), true
}
