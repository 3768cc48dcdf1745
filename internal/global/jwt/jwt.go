package jwt

import (
	"childcare-center-backend/config"
	"time"

	jwtlib "github.com/golang-jwt/jwt"
)

// 登录主体类型：员工（后台/打卡）或家长（家长端）
const (
	UserTypeEmployee = "employee"
	UserTypeParent   = "parent"
)

type Claims struct {
	UserID   uint   `json:"user_id"`
	UserType string `json:"user_type"`
	RoleID   int    `json:"role_id"` // 0 普通员工/家长 1 管理员
	jwtlib.StandardClaims
}

// GenerateToken 签发访问令牌
func GenerateToken(userID uint, userType string, roleID int) (string, error) {
	cfg := config.Get()
	expire := cfg.JWT.AccessExpire
	if expire <= 0 {
		expire = 7200
	}
	claims := &Claims{
		UserID:   userID,
		UserType: userType,
		RoleID:   roleID,
		StandardClaims: jwtlib.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(time.Duration(expire) * time.Second).Unix(),
			Issuer:    "childcare-center-backend",
		},
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.AccessSecret))
}

// ParseToken 解析并校验令牌，返回 (claims, 是否有效)
func ParseToken(tokenStr string) (*Claims, bool) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (interface{}, error) {
		return []byte(config.Get().JWT.AccessSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, false
	}
	return claims, true
}
