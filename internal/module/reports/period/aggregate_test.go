package period

import (
	"childcare-center-backend/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minutes(n int) *int { return &n }

func rate(v float64) *float64 { return &v }

func at(day, hour, min int) time.Time {
	return time.Date(2024, 6, day, hour, min, 0, 0, time.Local)
}

func endAt(day, hour, min int) *time.Time {
	t := at(day, hour, min)
	return &t
}

func weekRange() (time.Time, time.Time) {
	// 2024-06-03 周一 到 2024-06-09 周日
	return at(3, 0, 0), at(9, 0, 0)
}

func TestBuildPeriodEmployeeSummary(t *testing.T) {
	start, end := weekRange()
	employees := []model.Employee{
		{Model: model.Model{ID: 1}, Name: "张老师", Department: "小班", HourlyRate: rate(25)},
		{Model: model.Model{ID: 2}, Name: "李老师", Department: "中班"}, // 未设置时薪
		{Model: model.Model{ID: 3}, Name: "王老师", Department: "大班", HourlyRate: rate(30)},
	}
	punches := []model.Punch{
		{ID: 1, EmployeeID: 1, StartTime: at(3, 8, 0), EndTime: endAt(3, 16, 0), EntryType: model.EntryTypeShift, TotalMinutes: minutes(480)},
		{ID: 2, EmployeeID: 1, StartTime: at(4, 8, 0), EndTime: endAt(4, 12, 30), EntryType: model.EntryTypeShift, TotalMinutes: minutes(270)},
		{ID: 3, EmployeeID: 1, StartTime: at(4, 12, 30), EndTime: endAt(4, 13, 0), EntryType: model.EntryTypeLunchBreak, TotalMinutes: minutes(30)},
		{ID: 4, EmployeeID: 2, StartTime: at(5, 9, 0), EndTime: endAt(5, 15, 0), EntryType: model.EntryTypeShift, TotalMinutes: minutes(360)},
		{ID: 5, EmployeeID: 2, StartTime: at(6, 9, 0), EntryType: model.EntryTypeShift}, // 未结
	}

	summary, rows, _ := BuildPeriod(employees, punches, start, end)
	require.Len(t, rows, 3)

	zhang := rows[0]
	assert.Equal(t, 2, zhang.ShiftCount)
	assert.Equal(t, 750, zhang.WorkMinutes)
	assert.Equal(t, 30, zhang.LunchMinutes)
	require.NotNil(t, zhang.FirstPunch)
	assert.True(t, zhang.FirstPunch.Equal(at(3, 8, 0)))
	require.NotNil(t, zhang.LastPunch)
	assert.True(t, zhang.LastPunch.Equal(at(4, 13, 0)))
	require.NotNil(t, zhang.EstimatedPay)
	assert.InDelta(t, 312.5, *zhang.EstimatedPay, 0.001) // 25 × 12.5h

	li := rows[1]
	assert.Equal(t, 360, li.WorkMinutes)
	assert.Equal(t, 1, li.OpenCount)
	assert.Nil(t, li.EstimatedPay) // 没有时薪不估算薪资

	// 周期内没有打卡的员工也占一行
	wang := rows[2]
	assert.Equal(t, 0, wang.WorkMinutes)
	assert.Nil(t, wang.FirstPunch)
	assert.Nil(t, wang.LastPunch)
	require.NotNil(t, wang.EstimatedPay)
	assert.Equal(t, 0.0, *wang.EstimatedPay)

	assert.Equal(t, 1110, summary.WorkMinutes)
	assert.Equal(t, 30, summary.LunchMinutes)
	assert.Equal(t, 2, summary.EmployeesWithHours)
	assert.Equal(t, 1, summary.OpenPunches)
	assert.InDelta(t, 312.5, summary.TotalEstimatedPay, 0.001)
	assert.Equal(t, "2024-06-03", summary.StartDate)
	assert.Equal(t, "2024-06-09", summary.EndDate)
}

func TestBuildPeriodDayBreakdown(t *testing.T) {
	start, end := weekRange()
	employees := []model.Employee{
		{Model: model.Model{ID: 1}, Name: "张老师"},
		{Model: model.Model{ID: 2}, Name: "李老师"},
	}
	punches := []model.Punch{
		{ID: 1, EmployeeID: 1, StartTime: at(3, 8, 0), EndTime: endAt(3, 16, 0), EntryType: model.EntryTypeShift, TotalMinutes: minutes(480)},
		{ID: 2, EmployeeID: 2, StartTime: at(3, 9, 0), EndTime: endAt(3, 15, 0), EntryType: model.EntryTypeShift, TotalMinutes: minutes(360)},
		{ID: 3, EmployeeID: 1, StartTime: at(5, 12, 0), EndTime: endAt(5, 12, 45), EntryType: model.EntryTypeLunchBreak, TotalMinutes: minutes(45)},
	}

	_, _, breakdown := BuildPeriod(employees, punches, start, end)
	require.Len(t, breakdown, 7) // 每个日历日一行

	assert.Equal(t, "2024-06-03", breakdown[0].Date)
	assert.Equal(t, 2, breakdown[0].EmployeeCount)
	assert.Equal(t, 840, breakdown[0].WorkMinutes)

	// 没有打卡的日子保留零行
	assert.Equal(t, "2024-06-04", breakdown[1].Date)
	assert.Equal(t, 0, breakdown[1].EmployeeCount)
	assert.Equal(t, 0, breakdown[1].WorkMinutes)

	assert.Equal(t, "2024-06-05", breakdown[2].Date)
	assert.Equal(t, 1, breakdown[2].EmployeeCount)
	assert.Equal(t, 45, breakdown[2].LunchMinutes)
	assert.Equal(t, 0, breakdown[2].WorkMinutes)
}

func TestToExcelRows(t *testing.T) {
	first := at(3, 8, 0)
	last := at(3, 16, 0)
	pay := 312.5
	rows := toExcelRows([]EmployeeSummary{
		{EmployeeID: 1, Name: "张老师", WorkMinutes: 750, FirstPunch: &first, LastPunch: &last, EstimatedPay: &pay},
		{EmployeeID: 2, Name: "李老师"},
	})
	require.Len(t, rows, 2)
	assert.InDelta(t, 12.5, rows[0].WorkHours, 0.001)
	assert.Equal(t, "2024-06-03 08:00", rows[0].FirstPunch)
	assert.Equal(t, "312.50", rows[0].EstimatedPay)
	assert.Equal(t, "", rows[1].FirstPunch)
	assert.Equal(t, "", rows[1].EstimatedPay)
}
