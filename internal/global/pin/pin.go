// Package pin 管理员工与家长共用的打卡机 PIN 命名空间
//
// 唯一性的最终防线是 kiosk_pin.pin_code 上的唯一索引：
// Assign 必须和归属方（employee/parent 行）的写入放在同一事务，
// 并发抢占同一 PIN 时后写者会收到重复键错误。Available 只是
// 给前端的预检，不构成正确性保证。
package pin

import (
	"childcare-center-backend/internal/model"
	"errors"
	"strings"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

const (
	OwnerEmployee = "employee"
	OwnerParent   = "parent"
)

// mysqlDuplicateEntry MySQL 重复键错误码
const mysqlDuplicateEntry = 1062

// Normalize 去除首尾空白，空串视为"不设置 PIN"返回 nil
func Normalize(raw *string) *string {
	if raw == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*raw)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// Available 预检 PIN 是否可用，excludeID 用于更新时排除自身
// 空 PIN（解除绑定）永远可用，调用方应先走 Normalize
func Available(db *gorm.DB, pinCode, ownerType string, excludeID uint) (bool, error) {
	var count int64

	q := db.Model(&model.Employee{}).Where("pin_code = ?", pinCode)
	if ownerType == OwnerEmployee && excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	q = db.Model(&model.Parent{}).Where("pin_code = ?", pinCode)
	if ownerType == OwnerParent && excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

// Assign 在事务内把 PIN 绑定到归属方，pinCode 为 nil 时仅解除旧绑定
// PIN 被他人占用时返回的错误满足 IsDuplicate
func Assign(tx *gorm.DB, ownerType string, ownerID uint, pinCode *string) error {
	if err := tx.Where("owner_type = ? AND owner_id = ?", ownerType, ownerID).
		Delete(&model.KioskPin{}).Error; err != nil {
		return err
	}
	if pinCode == nil {
		return nil
	}
	return tx.Create(&model.KioskPin{
		PinCode:   *pinCode,
		OwnerType: ownerType,
		OwnerID:   ownerID,
	}).Error
}

// IsDuplicate 判断是否为唯一索引冲突（即 PIN 已被占用）
func IsDuplicate(err error) bool {
	var mysqlErr *mysqldriver.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDuplicateEntry
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
