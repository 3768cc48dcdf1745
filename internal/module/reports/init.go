package reports

import (
	"childcare-center-backend/internal/global/logger"
	"childcare-center-backend/internal/module/reports/daily"
	"childcare-center-backend/internal/module/reports/period"
	"log/slog"
)

var log *slog.Logger

type ModuleReports struct{}

func (r *ModuleReports) GetName() string {
	return "Reports"
}

func (r *ModuleReports) Init() {
	log = logger.New("Reports")
	daily.Init()
	period.Init()
}
