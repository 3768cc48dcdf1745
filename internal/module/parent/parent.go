package parent

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

type ParentCreateRequest struct {
	Name     string  `json:"name" binding:"required"`
	Phone    string  `json:"phone" binding:"required"`
	Email    string  `json:"email" binding:"omitempty,email"`
	Password string  `json:"password" binding:"required,min=6"`
	PinCode  *string `json:"pin_code"`
}

// CreateParent 新建家长档案，PIN 与员工共用一个命名空间
func CreateParent(c *gin.Context) {
	var req ParentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	pinCode := pin.Normalize(req.PinCode)
	if pinCode != nil {
		ok, err := pin.Available(database.DB, *pinCode, pin.OwnerParent, 0)
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

	p := &model.Parent{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Password: string(hashed),
		PinCode:  pinCode,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		return pin.Assign(tx, pin.OwnerParent, p.ID, pinCode)
	})
	if err != nil {
		if pin.IsDuplicate(err) {
			response.Fail(c, response.ErrPinConflict)
			return
		}
		log.Error("插入 parent 记录失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, p)
}

type ParentUpdateRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	PinCode *string `json:"pin_code"` // 空串表示解除 PIN 绑定
}

// UpdateParent 更新家长档案（部分字段）
func UpdateParent(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req ParentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var p model.Parent
	if err := database.DB.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("家长不存在"))
			return
		}
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Phone != nil {
		p.Phone = *req.Phone
	}
	if req.Email != nil {
		p.Email = *req.Email
	}

	pinChanged := req.PinCode != nil
	pinCode := pin.Normalize(req.PinCode)
	if pinChanged {
		if pinCode != nil {
			ok, err := pin.Available(database.DB, *pinCode, pin.OwnerParent, p.ID)
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
		p.PinCode = pinCode
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&p).Error; err != nil {
			return err
		}
		if pinChanged {
			return pin.Assign(tx, pin.OwnerParent, p.ID, pinCode)
		}
		return nil
	})
	if err != nil {
		if pin.IsDuplicate(err) {
			response.Fail(c, response.ErrPinConflict)
			return
		}
		log.Error("更新 parent 记录失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, p)
}

// DeleteParent 软删除家长并释放 PIN
func DeleteParent(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var p model.Parent
	if err := database.DB.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("家长不存在"))
			return
		}
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := pin.Assign(tx, pin.OwnerParent, p.ID, nil); err != nil {
			return err
		}
		return tx.Delete(&p).Error
	})
	if err != nil {
		log.Error("删除 parent 记录失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, gin.H{"deleted": true})
}

// ListParents 列出家长及其幼儿
func ListParents(c *gin.Context) {
	var parents []model.Parent
	if err := database.DB.Preload("Children").Order("name ASC").Find(&parents).Error; err != nil {
		log.Error("查询 parent 表错误", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, parents)
}

func idParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips("ID 格式错误"))
		return 0, false
	}
	return uint(v), true
}
