package period

import (
	"childcare-center-backend/internal/global/logger"
	"childcare-center-backend/internal/global/response"
	"childcare-center-backend/internal/global/sentry/tracing"
	"childcare-center-backend/internal/model"
	"childcare-center-backend/internal/module/reports/tool"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

var log *slog.Logger

func Init() {
	log = logger.New("Reports-Period")
}

// parseRange 解析 start_date / end_date 参数
// 两个都缺省时退回当前 ISO 周（周一到周日），只给一个则另一端等于它
func parseRange(c *gin.Context) (start, end time.Time, failErr *response.Error) {
	startStr := c.Query("start_date")
	endStr := c.Query("end_date")

	if startStr == "" && endStr == "" {
		start, end = tool.CurrentISOWeek(time.Now())
		return
	}

	var err error
	if startStr != "" {
		start, err = tool.ParseDate(startStr)
		if err != nil {
			failErr = response.ErrInvalidRequest.WithTips("start_date 格式应为 2006-01-02")
			return
		}
	}
	if endStr != "" {
		end, err = tool.ParseDate(endStr)
		if err != nil {
			failErr = response.ErrInvalidRequest.WithTips("end_date 格式应为 2006-01-02")
			return
		}
	}
	if startStr == "" {
		start = end
	}
	if endStr == "" {
		end = start
	}
	if end.Before(start) {
		failErr = response.ErrInvalidRequest.WithTips("end_date 不能早于 start_date")
	}
	return
}

func loadPeriod(c *gin.Context) (summary PeriodSummary, rows []EmployeeSummary, breakdown []DayBreakdown, ok bool) {
	start, end, failErr := parseRange(c)
	if failErr != nil {
		response.Fail(c, failErr)
		return
	}

	employees, err := selectActiveEmployees(c.Query("department"))
	if err != nil {
		log.Error("数据库 查询 employee 表错误", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	punches, err := selectRangePunches(start, end, employeeIDs(employees))
	if err != nil {
		log.Error("数据库 查询 punch 表错误", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	span := tracing.StartSpan(c, "reports.build_period")
	summary, rows, breakdown = BuildPeriod(employees, punches, start, end)
	if span != nil {
		span.Finish()
	}
	return summary, rows, breakdown, true
}

// Report 薪资周期汇总
func Report(c *gin.Context) {
	summary, rows, breakdown, ok := loadPeriod(c)
	if !ok {
		return
	}
	response.Success(c, gin.H{
		"summary":   summary,
		"employees": rows,
		"days":      breakdown,
	})
}

func employeeIDs(employees []model.Employee) []uint {
	ids := make([]uint, 0, len(employees))
	for _, e := range employees {
		ids = append(ids, e.ID)
	}
	return ids
}
