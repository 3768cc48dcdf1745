package account

import (
	"childcare-center-backend/internal/global/logger"
	"log/slog"
)

var log *slog.Logger

type ModuleAccount struct{}

func (a *ModuleAccount) GetName() string {
	return "Account"
}

func (a *ModuleAccount) Init() {
	log = logger.New("Account")
}
