package daily

import (
	"childcare-center-backend/internal/global/logger"
	"childcare-center-backend/internal/global/response"
	"childcare-center-backend/internal/global/sentry/tracing"
	"childcare-center-backend/internal/module/reports/tool"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

var log *slog.Logger

func Init() {
	log = logger.New("Reports-Daily")
}

// Summary 当日考勤总览
// date 参数缺省为今天，只读不写
func Summary(c *gin.Context) {
	day := tool.DayStart(time.Now())
	if s := c.Query("date"); s != "" {
		parsed, err := tool.ParseDate(s)
		if err != nil {
			response.Fail(c, response.ErrInvalidRequest.WithTips("date 格式应为 2006-01-02"))
			return
		}
		day = parsed
	}

	employees, err := selectActiveEmployees("")
	if err != nil {
		log.Error("数据库 查询 employee 表错误", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	punches, err := selectDayPunches(day)
	if err != nil {
		log.Error("数据库 查询 punch 表错误", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	span := tracing.StartSpan(c, "reports.build_day")
	rows, stats := BuildDay(employees, punches)
	if span != nil {
		span.Finish()
	}
	response.Success(c, gin.H{
		"date":      day.Format(tool.DateLayout),
		"stats":     stats,
		"employees": rows,
	})
}
