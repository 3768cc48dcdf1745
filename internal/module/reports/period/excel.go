package period

import (
	"childcare-center-backend/internal/global/response"
	"childcare-center-backend/tools"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// excelRow 导出用的平铺行，时间和可空字段先转成字符串
type excelRow struct {
	EmployeeID   uint    `excel:"员工ID"`
	Name         string  `excel:"姓名"`
	Department   string  `excel:"部门"`
	ShiftCount   int     `excel:"班次数"`
	WorkHours    float64 `excel:"工时(小时)"`
	LunchMinutes int     `excel:"午休(分钟)"`
	FirstPunch   string  `excel:"最早上班"`
	LastPunch    string  `excel:"最晚下班"`
	OpenCount    int     `excel:"未结打卡"`
	EstimatedPay string  `excel:"预估薪资"`
}

const exportTimeLayout = "2006-01-02 15:04"

func toExcelRows(rows []EmployeeSummary) []excelRow {
	out := make([]excelRow, 0, len(rows))
	for _, r := range rows {
		row := excelRow{
			EmployeeID:   r.EmployeeID,
			Name:         r.Name,
			Department:   r.Department,
			ShiftCount:   r.ShiftCount,
			WorkHours:    float64(r.WorkMinutes) / 60,
			LunchMinutes: r.LunchMinutes,
			OpenCount:    r.OpenCount,
		}
		if r.FirstPunch != nil {
			row.FirstPunch = r.FirstPunch.Format(exportTimeLayout)
		}
		if r.LastPunch != nil {
			row.LastPunch = r.LastPunch.Format(exportTimeLayout)
		}
		if r.EstimatedPay != nil {
			row.EstimatedPay = fmt.Sprintf("%.2f", *r.EstimatedPay)
		}
		out = append(out, row)
	}
	return out
}

// Export 薪资周期报表导出为 xlsx
func Export(c *gin.Context) {
	summary, rows, _, ok := loadPeriod(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := tools.ExportToExcel(f, "汇总", toExcelRows(rows)); err != nil {
		log.Error("导出 Excel 失败", "error", err)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}
	// excelize 默认建的 Sheet1 删掉，保持只有汇总页
	if len(f.GetSheetList()) > 1 {
		_ = f.DeleteSheet("Sheet1")
	}

	name := fmt.Sprintf("考勤汇总_%s_%s.xlsx", summary.StartDate, summary.EndDate)
	path := filepath.Join(os.TempDir(), name)
	if err := f.SaveAs(path); err != nil {
		log.Error("保存 Excel 临时文件失败", "error", err)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}
	defer os.Remove(path)

	if err := tools.SendStoredFile(c, path, name, tools.ExcelContentType); err != nil {
		log.Error("下发 Excel 文件失败", "error", err)
	}
}
