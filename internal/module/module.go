package module

import (
	"childcare-center-backend/internal/module/account"
	"childcare-center-backend/internal/module/employee"
	"childcare-center-backend/internal/module/kiosk"
	"childcare-center-backend/internal/module/parent"
	"childcare-center-backend/internal/module/ping"
	"childcare-center-backend/internal/module/reports"
	"childcare-center-backend/internal/module/timeclock"

	"github.com/gin-gonic/gin"
)

type Module interface {
	GetName() string
	Init()
	InitRouter(r *gin.RouterGroup)
}

var Modules []Module

func registerModule(m []Module) {
	Modules = append(Modules, m...)
}

func init() {
	// Register your module here
	registerModule([]Module{
		&ping.ModulePing{},
		&account.ModuleAccount{},
		&employee.ModuleEmployee{},
		&parent.ModuleParent{},
		&timeclock.ModuleTimeclock{},
		&kiosk.ModuleKiosk{},
		&reports.ModuleReports{},
	})
}
