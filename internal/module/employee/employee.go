package employee

import (
	"childcare-center-backend/internal/global/database"
	"childcare-center-backend/internal/global/pin"
	"childcare-center-backend/internal/global/response"
	"childcare-center-backend/internal/model"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type EmployeeCreateRequest struct {
	Name       string   `json:"name" binding:"required"`
	Username   string   `json:"username" binding:"required"`
	Password   string   `json:"password" binding:"required,min=6"`
	RoleID     int      `json:"role_id" binding:"omitempty,oneof=0 1"`
	Position   string   `json:"position"`
	Department string   `json:"department"`
	HourlyRate *float64 `json:"hourly_rate"`
	PinCode    *string  `json:"pin_code"`
}

// CreateEmployee 新建员工档案，PIN 绑定与建档同事务
func CreateEmployee(c *gin.Context) {
	var req EmployeeCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	pinCode := pin.Normalize(req.PinCode)
	if pinCode != nil {
		// 预检只是提前拦掉明显冲突，最终以唯一索引为准
		ok, err := pin.Available(database.DB, *pinCode, pin.OwnerEmployee, 0)
		if err != nil {
			log.Error("PIN 预检查询失败", "error", err)
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
			return
		}
		if !ok {
			response.Fail(c, response.ErrPinConflict)
			return
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}

	emp := &model.Employee{
		Name:       req.Name,
		Username:   req.Username,
		Password:   string(hashed),
		RoleID:     req.RoleID,
		Position:   req.Position,
		Department: req.Department,
		HourlyRate: req.HourlyRate,
		Active:     true,
		PinCode:    pinCode,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(emp).Error; err != nil {
			return err
		}
		return pin.Assign(tx, pin.OwnerEmployee, emp.ID, pinCode)
	})
	if err != nil {
		if pin.IsDuplicate(err) {
			response.Fail(c, response.ErrPinConflict)
			return
		}
		log.Error("插入 employee 记录失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, emp)
}

type EmployeeUpdateRequest struct {
	Name       *string  `json:"name"`
	Position   *string  `json:"position"`
	Department *string  `json:"department"`
	HourlyRate *float64 `json:"hourly_rate"`
	Active     *bool    `json:"active"`
	RoleID     *int     `json:"role_id"`
	PinCode    *string  `json:"pin_code"` // 空串表示解除 PIN 绑定
}

// UpdateEmployee 更新员工档案（部分字段）
func UpdateEmployee(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req EmployeeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var emp model.Employee
	if err := database.DB.First(&emp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("员工不存在"))
			return
		}
		log.Error("查询 employee 表错误", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Position != nil {
		emp.Position = *req.Position
	}
	if req.Department != nil {
		emp.Department = *req.Department
	}
	if req.HourlyRate != nil {
		emp.HourlyRate = req.HourlyRate
	}
	if req.Active != nil {
		emp.Active = *req.Active
	}
	if req.RoleID != nil {
		emp.RoleID = *req.RoleID
	}

	pinChanged := req.PinCode != nil
	pinCode := pin.Normalize(req.PinCode)
	if pinChanged {
		if pinCode != nil {
			ok, err := pin.Available(database.DB, *pinCode, pin.OwnerEmployee, emp.ID)
			if err != nil {
				log.Error("PIN 预检查询失败", "error", err)
				response.Fail(c, response.ErrDatabase.WithOrigin(err))
				return
			}
			if !ok {
				response.Fail(c, response.ErrPinConflict)
				return
			}
		}
		emp.PinCode = pinCode
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&emp).Error; err != nil {
			return err
		}
		if pinChanged {
			return pin.Assign(tx, pin.OwnerEmployee, emp.ID, pinCode)
		}
		return nil
	})
	if err != nil {
		if pin.IsDuplicate(err) {
			response.Fail(c, response.ErrPinConflict)
			return
		}
		log.Error("更新 employee 记录失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, emp)
}

// DeleteEmployee 停用并软删除员工，同时释放其 PIN
func DeleteEmployee(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var emp model.Employee
	if err := database.DB.First(&emp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("员工不存在"))
			return
		}
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := pin.Assign(tx, pin.OwnerEmployee, emp.ID, nil); err != nil {
			return err
		}
		return tx.Delete(&emp).Error
	})
	if err != nil {
		log.Error("删除 employee 记录失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, gin.H{"deleted": true})
}

// ListEmployees 列出员工，支持部门与在职状态过滤
func ListEmployees(c *gin.Context) {
	q := database.DB.Model(&model.Employee{}).Order("name ASC")
	if dept := c.Query("department"); dept != "" {
		q = q.Where("department = ?", dept)
	}
	if active := c.Query("active"); active != "" {
		q = q.Where("active = ?", active == "true")
	}

	var employees []model.Employee
	if err := q.Find(&employees).Error; err != nil {
		log.Error("查询 employee 表错误", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, employees)
}

// CheckPin PIN 可用性预检
// 空 PIN（解除绑定）永远可用；被占用时返回 409
func CheckPin(c *gin.Context) {
	pinCode := pin.Normalize(ptr(c.Query("pin_code")))
	if pinCode == nil {
		response.Success(c, gin.H{"available": true})
		return
	}

	var excludeID uint
	if s := c.Query("exclude_id"); s != "" {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			response.Fail(c, response.ErrInvalidRequest.WithTips("exclude_id 格式错误"))
			return
		}
		excludeID = uint(v)
	}

	ok, err := pin.Available(database.DB, *pinCode, pin.OwnerEmployee, excludeID)
	if err != nil {
		log.Error("PIN 预检查询失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if !ok {
		response.Fail(c, response.ErrPinConflict)
		return
	}
	response.Success(c, gin.H{"available": true})
}

func idParam(c *gin.Context) (uint, bool) {
	v, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips("ID 格式错误"))
		return 0, false
	}
	return uint(v), true
}

func ptr(s string) *string {
	return &s
}
