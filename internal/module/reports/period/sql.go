package period

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

// selectRangePunches 取周期内指定员工的全部打卡
// 周期按当地时区零点切分，end 当天整日包含在内
func selectRangePunches(start, end time.Time, employeeIDs []uint) ([]model.Punch, error) {
	if len(employeeIDs) == 0 {
		return nil, nil
	}
	var punches []model.Punch
	err := database.DB.
		Where("employee_id IN ?", employeeIDs).
		Where("start_time >= ? AND start_time < ?", start, end.AddDate(0, 0, 1)).
		Order("start_time ASC").
		Find(&punches).Error
	return punches, err
}
