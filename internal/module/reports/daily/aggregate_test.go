package daily

import (
	"childcare-center-backend/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minutes(n int) *int { return &n }

func timeAt(hour, min int) time.Time {
	return time.Date(2024, 6, 5, hour, min, 0, 0, time.Local)
}

func endAt(hour, min int) *time.Time {
	t := timeAt(hour, min)
	return &t
}

func TestSummarizeStatus(t *testing.T) {
	tests := []struct {
		name     string
		punches  []model.Punch
		expected string
	}{
		{
			name:     "无打卡",
			punches:  nil,
			expected: StatusNotClockedIn,
		},
		{
			name: "班次进行中",
			punches: []model.Punch{
				{ID: 1, StartTime: timeAt(8, 0), EntryType: model.EntryTypeShift},
			},
			expected: StatusClockedIn,
		},
		{
			name: "午休进行中",
			punches: []model.Punch{
				{ID: 1, StartTime: timeAt(8, 0), EndTime: endAt(12, 0), EntryType: model.EntryTypeShift, TotalMinutes: minutes(240)},
				{ID: 2, StartTime: timeAt(12, 0), EntryType: model.EntryTypeLunchBreak},
			},
			expected: StatusOnLunch,
		},
		{
			name: "全部已结束",
			punches: []model.Punch{
				{ID: 1, StartTime: timeAt(8, 0), EndTime: endAt(17, 0), EntryType: model.EntryTypeShift, TotalMinutes: minutes(540)},
			},
			expected: StatusClockedOut,
		},
		{
			name: "以开始时间最晚的为准",
			punches: []model.Punch{
				{ID: 5, StartTime: timeAt(13, 0), EntryType: model.EntryTypeShift},
				{ID: 4, StartTime: timeAt(8, 0), EndTime: endAt(12, 0), EntryType: model.EntryTypeShift, TotalMinutes: minutes(240)},
			},
			expected: StatusClockedIn,
		},
		{
			name: "开始时间相同取 ID 较大者",
			punches: []model.Punch{
				{ID: 9, StartTime: timeAt(8, 0), EntryType: model.EntryTypeLunchBreak},
				{ID: 3, StartTime: timeAt(8, 0), EndTime: endAt(17, 0), EntryType: model.EntryTypeShift, TotalMinutes: minutes(540)},
			},
			expected: StatusOnLunch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, status := summarize(tt.punches)
			assert.Equal(t, tt.expected, status)
		})
	}
}

func TestSummarizeMinutes(t *testing.T) {
	punches := []model.Punch{
		{ID: 1, StartTime: timeAt(8, 0), EndTime: endAt(12, 0), EntryType: model.EntryTypeShift, TotalMinutes: minutes(240)},
		{ID: 2, StartTime: timeAt(12, 0), EndTime: endAt(12, 30), EntryType: model.EntryTypeLunchBreak, TotalMinutes: minutes(30)},
		{ID: 3, StartTime: timeAt(12, 30), EntryType: model.EntryTypeShift}, // 进行中，不计时长
	}
	work, lunch, status := summarize(punches)
	assert.Equal(t, 240, work)
	assert.Equal(t, 30, lunch)
	assert.Equal(t, StatusClockedIn, status)
}

func TestBuildDay(t *testing.T) {
	employees := []model.Employee{
		{Model: model.Model{ID: 1}, Name: "张老师", Department: "小班"},
		{Model: model.Model{ID: 2}, Name: "李老师", Department: "中班"},
		{Model: model.Model{ID: 3}, Name: "王老师", Department: "大班"},
	}
	punches := []model.Punch{
		{ID: 10, EmployeeID: 1, StartTime: timeAt(8, 0), EndTime: endAt(16, 0), EntryType: model.EntryTypeShift, TotalMinutes: minutes(480)},
		{ID: 11, EmployeeID: 2, StartTime: timeAt(9, 0), EntryType: model.EntryTypeShift},
	}

	rows, stats := BuildDay(employees, punches)
	require.Len(t, rows, 3)

	// 没有打卡的员工也占一行
	assert.Equal(t, StatusClockedOut, rows[0].Status)
	assert.Equal(t, 480, rows[0].WorkMinutes)
	assert.Equal(t, StatusClockedIn, rows[1].Status)
	assert.Equal(t, StatusNotClockedIn, rows[2].Status)
	assert.NotNil(t, rows[2].Punches)
	assert.Empty(t, rows[2].Punches)

	assert.Equal(t, 3, stats.TotalEmployees)
	assert.Equal(t, 1, stats.ClockedIn)
	assert.Equal(t, 1, stats.ClockedOut)
	assert.Equal(t, 1, stats.NotClockedIn)
	assert.Equal(t, 0, stats.OnLunch)
	assert.Equal(t, stats.TotalEmployees,
		stats.ClockedIn+stats.OnLunch+stats.ClockedOut+stats.NotClockedIn)
}

func TestBuildDaySortsPunches(t *testing.T) {
	employees := []model.Employee{{Model: model.Model{ID: 1}, Name: "张老师"}}
	punches := []model.Punch{
		{ID: 2, EmployeeID: 1, StartTime: timeAt(13, 0), EndTime: endAt(17, 0), EntryType: model.EntryTypeShift, TotalMinutes: minutes(240)},
		{ID: 1, EmployeeID: 1, StartTime: timeAt(8, 0), EndTime: endAt(12, 0), EntryType: model.EntryTypeShift, TotalMinutes: minutes(240)},
	}
	rows, _ := BuildDay(employees, punches)
	require.Len(t, rows, 1)
	require.Len(t, rows[0].Punches, 2)
	assert.Equal(t, uint(1), rows[0].Punches[0].ID)
	assert.Equal(t, uint(2), rows[0].Punches[1].ID)
}
