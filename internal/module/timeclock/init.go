package timeclock

import (
	"childcare-center-backend/internal/global/logger"
	"log/slog"
)

var log *slog.Logger

type ModuleTimeclock struct{}

func (t *ModuleTimeclock) GetName() string {
	return "Timeclock"
}

func (t *ModuleTimeclock) Init() {
	log = logger.New("Timeclock")
}
