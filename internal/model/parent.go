package model

type Parent struct {
	Model
	Name     string  `gorm:"type:varchar(50);not null" json:"name"`
	Phone    string  `gorm:"type:varchar(20);uniqueIndex;not null" json:"phone"`
	Email    string  `gorm:"type:varchar(100)" json:"email"`
	Password string  `gorm:"type:varchar(255);not null" json:"-"`
	PinCode  *string `gorm:"type:varchar(10);index" json:"-"` // 与员工共用同一 PIN 命名空间

	Children []Child `gorm:"foreignKey:ParentID" json:"children,omitempty"`
}

type Child struct {
	Model
	ParentID  uint   `gorm:"not null;index" json:"parent_id"`
	Name      string `gorm:"type:varchar(50);not null" json:"name"`
	Birthday  string `gorm:"type:varchar(10)" json:"birthday"` // 2006-01-02
	Classroom string `gorm:"type:varchar(50)" json:"classroom"`
}
