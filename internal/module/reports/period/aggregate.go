package period

import (
	"childcare-center-backend/internal/model"
	"childcare-center-backend/internal/module/reports/tool"
	"math"
	"time"
)

// EmployeeSummary 一名员工整个周期的汇总
type EmployeeSummary struct {
	EmployeeID   uint       `json:"employee_id"`
	Name         string     `json:"name"`
	Department   string     `json:"department"`
	ShiftCount   int        `json:"shift_count"`
	WorkMinutes  int        `json:"work_minutes"`
	LunchMinutes int        `json:"lunch_minutes"`
	FirstPunch   *time.Time `json:"first_punch"`
	LastPunch    *time.Time `json:"last_punch"`
	OpenCount    int        `json:"open_count"`
	// EstimatedPay 时薪 × 工时（小时），没有时薪则为空
	EstimatedPay *float64 `json:"estimated_pay"`
}

// DayBreakdown 周期内单日的横向汇总
type DayBreakdown struct {
	Date          string `json:"date"`
	EmployeeCount int    `json:"employee_count"` // 当日有打卡的员工数
	WorkMinutes   int    `json:"work_minutes"`
	LunchMinutes  int    `json:"lunch_minutes"`
}

// PeriodSummary 周期总览
type PeriodSummary struct {
	StartDate          string  `json:"start_date"`
	EndDate            string  `json:"end_date"`
	WorkMinutes        int     `json:"work_minutes"`
	LunchMinutes       int     `json:"lunch_minutes"`
	EmployeesWithHours int     `json:"employees_with_hours"` // 有工时的员工数
	OpenPunches        int     `json:"open_punches"`
	TotalEstimatedPay  float64 `json:"total_estimated_pay"`
}

// BuildPeriod 汇总一个薪资周期
// 周期内没有打卡的在职员工同样占一行（全零、首末打卡为空），
// 与当日报表的口径一致；离职员工由调用方在查询时排除
func BuildPeriod(employees []model.Employee, punches []model.Punch, start, end time.Time) (PeriodSummary, []EmployeeSummary, []DayBreakdown) {
	byEmployee := make(map[uint][]model.Punch)
	for _, p := range punches {
		byEmployee[p.EmployeeID] = append(byEmployee[p.EmployeeID], p)
	}

	rows := make([]EmployeeSummary, 0, len(employees))
	summary := PeriodSummary{
		StartDate: start.Format(tool.DateLayout),
		EndDate:   end.Format(tool.DateLayout),
	}

	for _, emp := range employees {
		row := summarizeEmployee(emp, byEmployee[emp.ID])
		rows = append(rows, row)

		summary.WorkMinutes += row.WorkMinutes
		summary.LunchMinutes += row.LunchMinutes
		summary.OpenPunches += row.OpenCount
		if row.WorkMinutes > 0 {
			summary.EmployeesWithHours++
		}
		if row.EstimatedPay != nil {
			summary.TotalEstimatedPay = round2(summary.TotalEstimatedPay + *row.EstimatedPay)
		}
	}

	return summary, rows, buildBreakdown(punches, start, end)
}

func summarizeEmployee(emp model.Employee, punches []model.Punch) EmployeeSummary {
	row := EmployeeSummary{
		EmployeeID: emp.ID,
		Name:       emp.Name,
		Department: emp.Department,
	}

	for _, p := range punches {
		if row.FirstPunch == nil || p.StartTime.Before(*row.FirstPunch) {
			t := p.StartTime
			row.FirstPunch = &t
		}
		if p.EndTime != nil && (row.LastPunch == nil || p.EndTime.After(*row.LastPunch)) {
			t := *p.EndTime
			row.LastPunch = &t
		}
		if p.Open() {
			row.OpenCount++
		}
		if p.EntryType == model.EntryTypeShift {
			row.ShiftCount++
		}
		if p.TotalMinutes == nil {
			continue
		}
		if p.EntryType == model.EntryTypeLunchBreak {
			row.LunchMinutes += *p.TotalMinutes
		} else {
			row.WorkMinutes += *p.TotalMinutes
		}
	}

	if emp.HourlyRate != nil {
		pay := round2(*emp.HourlyRate * float64(row.WorkMinutes) / 60)
		row.EstimatedPay = &pay
	}
	return row
}

// buildBreakdown 周期内每个日历日一行，没有打卡的日子保留零行
// 打卡按开始时间归属到日历日
func buildBreakdown(punches []model.Punch, start, end time.Time) []DayBreakdown {
	type dayAcc struct {
		employees map[uint]struct{}
		work      int
		lunch     int
	}
	byDay := make(map[string]*dayAcc)

	for _, p := range punches {
		key := tool.DayStart(p.StartTime).Format(tool.DateLayout)
		acc, ok := byDay[key]
		if !ok {
			acc = &dayAcc{employees: make(map[uint]struct{})}
			byDay[key] = acc
		}
		acc.employees[p.EmployeeID] = struct{}{}
		if p.TotalMinutes == nil {
			continue
		}
		if p.EntryType == model.EntryTypeLunchBreak {
			acc.lunch += *p.TotalMinutes
		} else {
			acc.work += *p.TotalMinutes
		}
	}

	days := tool.DaysBetween(start, end)
	breakdown := make([]DayBreakdown, 0, len(days))
	for _, day := range days {
		key := day.Format(tool.DateLayout)
		row := DayBreakdown{Date: key}
		if acc, ok := byDay[key]; ok {
			row.EmployeeCount = len(acc.employees)
			row.WorkMinutes = acc.work
			row.LunchMinutes = acc.lunch
		}
		breakdown = append(breakdown, row)
	}
	return breakdown
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
