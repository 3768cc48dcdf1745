package kiosk

import (
	"childcare-center-backend/internal/global/logger"
	"log/slog"
)

var log *slog.Logger

type ModuleKiosk struct{}

func (k *ModuleKiosk) GetName() string {
	return "Kiosk"
}

func (k *ModuleKiosk) Init() {
	log = logger.New("Kiosk")
}
