package daily

import (
	"childcare-center-backend/internal/model"
	"sort"
)

// 员工当日状态
const (
	StatusNotClockedIn = "not_clocked_in"
	StatusClockedIn    = "clocked_in"
	StatusOnLunch      = "on_lunch"
	StatusClockedOut   = "clocked_out"
)

// EmployeeDay 一名员工一天的考勤汇总
type EmployeeDay struct {
	EmployeeID   uint          `json:"employee_id"`
	Name         string        `json:"name"`
	Department   string        `json:"department"`
	Punches      []model.Punch `json:"punches"`
	WorkMinutes  int           `json:"work_minutes"`
	LunchMinutes int           `json:"lunch_minutes"`
	Status       string        `json:"status"`
}

// DayStats 当日汇总数字，全员人数 = 四种状态之和
type DayStats struct {
	TotalEmployees int `json:"total_employees"`
	ClockedIn      int `json:"clocked_in"`
	OnLunch        int `json:"on_lunch"`
	ClockedOut     int `json:"clocked_out"`
	NotClockedIn   int `json:"not_clocked_in"`
}

// BuildDay 把当日打卡流水按员工归并成汇总行
// 没有任何打卡的在职员工也要占一行（状态 not_clocked_in），
// 否则首页的在园人数对不上花名册
func BuildDay(employees []model.Employee, punches []model.Punch) ([]EmployeeDay, DayStats) {
	byEmployee := make(map[uint][]model.Punch)
	for _, p := range punches {
		byEmployee[p.EmployeeID] = append(byEmployee[p.EmployeeID], p)
	}

	rows := make([]EmployeeDay, 0, len(employees))
	var stats DayStats
	stats.TotalEmployees = len(employees)

	for _, emp := range employees {
		work, lunch, status := summarize(byEmployee[emp.ID])
		row := EmployeeDay{
			EmployeeID:   emp.ID,
			Name:         emp.Name,
			Department:   emp.Department,
			Punches:      sortedByStart(byEmployee[emp.ID]),
			WorkMinutes:  work,
			LunchMinutes: lunch,
			Status:       status,
		}
		if row.Punches == nil {
			row.Punches = []model.Punch{}
		}
		rows = append(rows, row)

		switch status {
		case StatusClockedIn:
			stats.ClockedIn++
		case StatusOnLunch:
			stats.OnLunch++
		case StatusClockedOut:
			stats.ClockedOut++
		default:
			stats.NotClockedIn++
		}
	}
	return rows, stats
}

// summarize 汇总一名员工一天的打卡：工时、午休时长、状态
//
// 状态由开始时间最晚的一条决定（开始时间相同取 ID 较大者，保证确定性）：
// 未结束的午休是 on_lunch，未结束的班次是 clocked_in，已结束则 clocked_out。
// 进行中的记录没有 total_minutes，不计入时长
func summarize(punches []model.Punch) (workMinutes, lunchMinutes int, status string) {
	if len(punches) == 0 {
		return 0, 0, StatusNotClockedIn
	}

	sorted := sortedByStart(punches)
	for _, p := range sorted {
		if p.TotalMinutes == nil {
			continue
		}
		if p.EntryType == model.EntryTypeLunchBreak {
			lunchMinutes += *p.TotalMinutes
		} else {
			workMinutes += *p.TotalMinutes
		}
	}

	last := sorted[len(sorted)-1]
	switch {
	case last.Open() && last.EntryType == model.EntryTypeLunchBreak:
		status = StatusOnLunch
	case last.Open():
		status = StatusClockedIn
	default:
		status = StatusClockedOut
	}
	return
}

func sortedByStart(punches []model.Punch) []model.Punch {
	if punches == nil {
		return nil
	}
	sorted := make([]model.Punch, len(punches))
	copy(sorted, punches)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].StartTime.Equal(sorted[j].StartTime) {
			return sorted[i].ID < sorted[j].ID
		}
		return sorted[i].StartTime.Before(sorted[j].StartTime)
	})
	return sorted
}
