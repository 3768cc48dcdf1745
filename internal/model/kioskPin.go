package model

import "time"

// KioskPin 员工+家长共用的 PIN 命名空间
// pin_code 上的唯一索引是跨两张身份表唯一性的最终保证，
// 应用层对 employee/parent 表的扫描只是给前端的快速预检
type KioskPin struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	PinCode   string    `gorm:"type:varchar(10);uniqueIndex;not null" json:"pin_code"`
	OwnerType string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_pin_owner" json:"owner_type"` // employee | parent
	OwnerID   uint      `gorm:"not null;uniqueIndex:idx_pin_owner" json:"owner_id"`
}
