package model

type Employee struct {
	Model
	Name       string   `gorm:"type:varchar(50);not null" json:"name"`
	Username   string   `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Password   string   `gorm:"type:varchar(255);not null" json:"-"`
	RoleID     int      `gorm:"default:0;not null" json:"role_id"` // 0 普通员工 1 管理员
	Position   string   `gorm:"type:varchar(50)" json:"position"`
	Department string   `gorm:"type:varchar(50);index" json:"department"`
	HourlyRate *float64 `json:"hourly_rate"`                        // 时薪，未录入则工资估算为空
	Active     bool     `gorm:"default:true;not null" json:"active"`
	PinCode    *string  `gorm:"type:varchar(10);index" json:"-"` // 打卡机 PIN，唯一性由 kiosk_pin 表保证
}
