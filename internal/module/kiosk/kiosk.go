package kiosk

import (
	"childcare-center-backend/internal/global/database"
	"childcare-center-backend/internal/global/pin"
	"childcare-center-backend/internal/global/response"
	"childcare-center-backend/internal/global/sentry/tracing"
	"childcare-center-backend/internal/model"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	ActionClockIn    = "clock_in"
	ActionClockOut   = "clock_out"
	ActionStartLunch = "start_lunch"
	ActionEndLunch   = "end_lunch"
)

type PinRequest struct {
	PinCode string `json:"pin_code" binding:"required"`
}

// findEmployeeByPin 按 PIN 找在职员工，查不到时记一次限流
func findEmployeeByPin(c *gin.Context, pinCode string) (*model.Employee, bool) {
	ctx := tracing.ContextWithSpan(c)
	ip := c.ClientIP()
	if pinLocked(ctx, ip) {
		response.Fail(c, response.ErrRateLimited)
		return nil, false
	}

	var emp model.Employee
	err := database.DB.WithContext(ctx).
		First(&emp, "pin_code = ? AND active = ?", pinCode, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			recordPinMiss(ctx, ip)
			response.Fail(c, response.ErrNotFound.WithTips("PIN 无效"))
			return nil, false
		}
		log.Error("查询 employee 表错误", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return nil, false
	}
	clearPinMisses(ctx, ip)
	return &emp, true
}

// findParentByPin 按 PIN 找家长，查不到时记一次限流
func findParentByPin(c *gin.Context, pinCode string) (*model.Parent, bool) {
	ctx := tracing.ContextWithSpan(c)
	ip := c.ClientIP()
	if pinLocked(ctx, ip) {
		response.Fail(c, response.ErrRateLimited)
		return nil, false
	}

	var p model.Parent
	err := database.DB.WithContext(ctx).First(&p, "pin_code = ?", pinCode).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			recordPinMiss(ctx, ip)
			response.Fail(c, response.ErrNotFound.WithTips("PIN 无效"))
			return nil, false
		}
		log.Error("查询 parent 表错误", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return nil, false
	}
	clearPinMisses(ctx, ip)
	return &p, true
}

// Identify 终端输入 PIN 后显示身份（员工或家长）
func Identify(c *gin.Context) {
	var req PinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	pinCode := pin.Normalize(&req.PinCode)
	if pinCode == nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips("PIN 不能为空"))
		return
	}

	ctx := tracing.ContextWithSpan(c)
	ip := c.ClientIP()
	if pinLocked(ctx, ip) {
		response.Fail(c, response.ErrRateLimited)
		return
	}

	var emp model.Employee
	err := database.DB.WithContext(ctx).
		First(&emp, "pin_code = ? AND active = ?", *pinCode, true).Error
	if err == nil {
		clearPinMisses(ctx, ip)
		response.Success(c, gin.H{"owner_type": pin.OwnerEmployee, "id": emp.ID, "name": emp.Name})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	var p model.Parent
	err = database.DB.WithContext(ctx).First(&p, "pin_code = ?", *pinCode).Error
	if err == nil {
		clearPinMisses(ctx, ip)
		var children []model.Child
		database.DB.WithContext(ctx).Where("parent_id = ?", p.ID).Find(&children)
		response.Success(c, gin.H{"owner_type": pin.OwnerParent, "id": p.ID, "name": p.Name, "children": children})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	recordPinMiss(ctx, ip)
	response.Fail(c, response.ErrNotFound.WithTips("PIN 无效"))
}

type ClockRequest struct {
	PinCode string `json:"pin_code" binding:"required"`
	Action  string `json:"action" binding:"required,oneof=clock_in clock_out start_lunch end_lunch"`
}

// Clock 员工打卡
// 同一员工任意时刻至多一条进行中的记录；午休以"收班开休/收休开班"成对落库，
// 这样一天的流水天然是 班次-午休-班次 交替的闭区间
func Clock(c *gin.Context) {
	var req ClockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	emp, ok := findEmployeeByPin(c, req.PinCode)
	if !ok {
		return
	}

	now := time.Now()
	var result *model.Punch
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var open []model.Punch
		if err := tx.Where("employee_id = ? AND end_time IS NULL", emp.ID).
			Order("start_time ASC").Find(&open).Error; err != nil {
			return err
		}

		switch req.Action {
		case ActionClockIn:
			if len(open) > 0 {
				return response.ErrInvalidRequest.WithTips("已有进行中的打卡记录，请先下班")
			}
			result = &model.Punch{EmployeeID: emp.ID, StartTime: now, EntryType: model.EntryTypeShift}
			return tx.Create(result).Error

		case ActionClockOut:
			shift := findOpenByType(open, model.EntryTypeShift)
			if shift == nil {
				return response.ErrInvalidRequest.WithTips("没有进行中的班次")
			}
			closePunch(shift, now)
			result = shift
			return tx.Save(shift).Error

		case ActionStartLunch:
			shift := findOpenByType(open, model.EntryTypeShift)
			if shift == nil {
				return response.ErrInvalidRequest.WithTips("没有进行中的班次，无法开始午休")
			}
			closePunch(shift, now)
			if err := tx.Save(shift).Error; err != nil {
				return err
			}
			result = &model.Punch{EmployeeID: emp.ID, StartTime: now, EntryType: model.EntryTypeLunchBreak}
			return tx.Create(result).Error

		case ActionEndLunch:
			lunch := findOpenByType(open, model.EntryTypeLunchBreak)
			if lunch == nil {
				return response.ErrInvalidRequest.WithTips("没有进行中的午休")
			}
			closePunch(lunch, now)
			if err := tx.Save(lunch).Error; err != nil {
				return err
			}
			result = &model.Punch{EmployeeID: emp.ID, StartTime: now, EntryType: model.EntryTypeShift}
			return tx.Create(result).Error
		}
		return nil
	})
	if err != nil {
		var respErr *response.Error
		if errors.As(err, &respErr) {
			response.Fail(c, respErr)
			return
		}
		log.Error("打卡写入失败", "error", err, "employee_id", emp.ID, "action", req.Action)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, gin.H{
		"employee_id": emp.ID,
		"name":        emp.Name,
		"action":      req.Action,
		"punch":       result,
	})
}

func findOpenByType(open []model.Punch, entryType string) *model.Punch {
	for i := range open {
		if open[i].EntryType == entryType {
			return &open[i]
		}
	}
	return nil
}

func closePunch(p *model.Punch, end time.Time) {
	p.EndTime = &end
	minutes := model.MinutesBetween(p.StartTime, end)
	p.TotalMinutes = &minutes
}
