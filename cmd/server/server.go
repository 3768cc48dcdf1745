package server

import (
	"childcare-center-backend/config"
	"childcare-center-backend/internal/global/database"
	"childcare-center-backend/internal/global/httpclient"
	"childcare-center-backend/internal/global/logger"
	"childcare-center-backend/internal/global/middleware"
	internalRedis "childcare-center-backend/internal/global/redis"
	internalSentry "childcare-center-backend/internal/global/sentry"
	"childcare-center-backend/internal/module"
	"childcare-center-backend/tools"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

var log *slog.Logger

func Init() {
	config.Init()
	log = logger.New("Server")

	if err := internalSentry.Init(); err != nil {
		log.Error("Sentry 初始化失败", "error", err)
	}

	database.Init()
	internalRedis.Init()
	httpclient.Init()

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Module: %s", m.GetName()))
		m.Init()
	}
}

func Run() {
	gin.SetMode(string(config.Get().Mode))
	r := gin.New()

	r.Use(internalSentry.Middleware())
	r.Use(middleware.SentryEnrichIP())

	switch config.Get().Mode {
	case config.ModeRelease:
		r.Use(middleware.Logger(logger.Get()))
	case config.ModeDebug:
		r.Use(gin.Logger())
	}
	r.Use(middleware.Cors())
	r.Use(middleware.Recovery())

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Router: %s", m.GetName()))
		m.InitRouter(r.Group("/" + config.Get().Prefix))
	}

	defer internalSentry.Flush(2 * time.Second)
	err := r.Run(config.Get().Host + ":" + config.Get().Port)
	tools.PanicOnErr(err)
}
