package model

import "time"

// ChildAttendance 幼儿接送签到记录，由家长在打卡机上操作
type ChildAttendance struct {
	Model
	ChildID  uint       `gorm:"not null;index" json:"child_id"`
	ParentID uint       `gorm:"not null;index" json:"parent_id"` // 操作接送的家长
	CheckIn  time.Time  `gorm:"not null" json:"check_in"`
	CheckOut *time.Time `json:"check_out"` // 为空表示还在园

	Child  Child  `gorm:"foreignKey:ChildID;references:ID" json:"-"`
	Parent Parent `gorm:"foreignKey:ParentID;references:ID" json:"-"`
}
