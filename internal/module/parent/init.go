package parent

import (
	"childcare-center-backend/internal/global/logger"
	"log/slog"
)

var log *slog.Logger

type ModuleParent struct{}

func (p *ModuleParent) GetName() string {
	return "Parent"
}

func (p *ModuleParent) Init() {
	log = logger.New("Parent")
}
