package employee

import (
	"childcare-center-backend/internal/global/logger"
	"log/slog"
)

var log *slog.Logger

type ModuleEmployee struct{}

func (e *ModuleEmployee) GetName() string {
	return "Employee"
}

func (e *ModuleEmployee) Init() {
	log = logger.New("Employee")
}
