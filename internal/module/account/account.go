package account

import (
	"childcare-center-backend/internal/global/database"
	"childcare-center-backend/internal/global/jwt"
	"childcare-center-backend/internal/global/response"
	"childcare-center-backend/internal/model"
	"errors"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type StaffLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// StaffLogin 员工账号登录，签发带角色的访问令牌
func StaffLogin(c *gin.Context) {
	var req StaffLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var emp model.Employee
	if err := database.DB.First(&emp, "username = ?", req.Username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrInvalidRequest.WithTips("用户名或密码错误"))
			return
		}
		log.Error("查询 employee 表错误", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if !emp.Active {
		response.Fail(c, response.ErrForbidden.WithTips("账号已停用"))
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(emp.Password), []byte(req.Password)) != nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips("用户名或密码错误"))
		return
	}

	token, err := jwt.GenerateToken(emp.ID, jwt.UserTypeEmployee, emp.RoleID)
	if err != nil {
		log.Error("签发令牌失败", "error", err)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}
	response.Success(c, gin.H{
		"token":   token,
		"user_id": emp.ID,
		"name":    emp.Name,
		"role_id": emp.RoleID,
	})
}

type ParentLoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ParentLogin 家长手机号登录
func ParentLogin(c *gin.Context) {
	var req ParentLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var p model.Parent
	if err := database.DB.First(&p, "phone = ?", req.Phone).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrInvalidRequest.WithTips("手机号或密码错误"))
			return
		}
		log.Error("查询 parent 表错误", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(p.Password), []byte(req.Password)) != nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips("手机号或密码错误"))
		return
	}

	token, err := jwt.GenerateToken(p.ID, jwt.UserTypeParent, 0)
	if err != nil {
		log.Error("签发令牌失败", "error", err)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}
	response.Success(c, gin.H{
		"token":   token,
		"user_id": p.ID,
		"name":    p.Name,
	})
}

// Me 返回当前登录身份
func Me(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}
	response.Success(c, gin.H{
		"user_id":   payload.UserID,
		"user_type": payload.UserType,
		"role_id":   payload.RoleID,
	})
}
