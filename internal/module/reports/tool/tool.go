package tool

import (
	"time"
)

// DateLayout 报表接口统一的日期格式
const DateLayout = "2006-01-02"

// ParseDate 解析日期参数，返回当地时区当天零点
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}

// DayStart 截断到当天零点
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// CurrentISOWeek 当前 ISO 周（周一到周日），用作薪资周期的默认范围
// 返回的都是零点日期，end 为周日当天
func CurrentISOWeek(now time.Time) (start, end time.Time) {
	day := DayStart(now)
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7 // ISO 记法里周日是 7
	}
	start = day.AddDate(0, 0, 1-weekday)
	end = start.AddDate(0, 0, 6)
	return
}

// DaysBetween 列出 [start, end] 间的所有日期（含两端，按零点对齐）
func DaysBetween(start, end time.Time) []time.Time {
	var days []time.Time
	for d := DayStart(start); !d.After(DayStart(end)); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
