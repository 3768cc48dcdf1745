package model

import (
	"math"
	"time"
)

const (
	EntryTypeShift      = "shift"
	EntryTypeLunchBreak = "lunch_break"
)

// Punch 一条上下班打卡记录
// 不使用软删除：管理员删除即物理删除
type Punch struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	EmployeeID uint       `gorm:"not null;index" json:"employee_id"`
	StartTime  time.Time  `gorm:"not null;index" json:"start_time"`
	EndTime    *time.Time `json:"end_time"` // 为空表示还未下班
	EntryType  string     `gorm:"type:varchar(20);not null;default:shift" json:"entry_type"`
	// TotalMinutes 与 EndTime 同生共死：EndTime 为空时必须为空，
	// 否则等于 round((end-start)/60s)，只在服务端重算，不接受客户端写入
	TotalMinutes *int   `json:"total_minutes"`
	Note         string `gorm:"type:varchar(255)" json:"note"`

	// 修正痕迹，仅管理员改动过才有值
	AdjustedBy   *uint      `json:"adjusted_by"`
	AdjustedAt   *time.Time `json:"adjusted_at"`
	AdjustReason string     `gorm:"type:varchar(255)" json:"adjust_reason"`

	Employee Employee `gorm:"foreignKey:EmployeeID;references:ID" json:"-"`
}

// Open 是否为进行中的打卡
func (p *Punch) Open() bool {
	return p.EndTime == nil
}

// MinutesBetween 按四舍五入到分钟计算时长
func MinutesBetween(start, end time.Time) int {
	return int(math.Round(end.Sub(start).Minutes()))
}
