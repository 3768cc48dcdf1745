package daily

import (
	"childcare-center-backend/internal/global/database"
	"childcare-center-backend/internal/model"
	"time"
)

func selectActiveEmployees(department string) ([]model.Employee, error) {
	q := database.DB.Model(&model.Employee{}).
		Where("active = ?", true).
		Order("name ASC")
	if department != "" {
		q = q.Where("department = ?", department)
	}
	var employees []model.Employee
	err := q.Find(&employees).Error
	return employees, err
}

// selectDayPunches 取某天（当地时区零点起 24 小时）的全部打卡
func selectDayPunches(day time.Time) ([]model.Punch, error) {
	var punches []model.Punch
	err := database.DB.
		Where("start_time >= ? AND start_time < ?", day, day.AddDate(0, 0, 1)).
		Order("start_time ASC").
		Find(&punches).Error
	return punches, err
}
