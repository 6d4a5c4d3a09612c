package app

import (
	"github.com/gin-gonic/gin"

	apphttp "github.com/yungbote/claimline-backend/internal/http"
	httpH "github.com/yungbote/claimline-backend/internal/http/handlers"
	"github.com/yungbote/claimline-backend/internal/observability"
	"github.com/yungbote/claimline-backend/internal/platform/logger"
)

type Handlers struct {
	Health        *httpH.HealthHandler
	Input         *httpH.InputHandler
	Claim         *httpH.ClaimHandler
	Variant       *httpH.VariantHandler
	ExportVersion *httpH.ExportVersionHandler
}

func wireHandlers(log *logger.Logger, cfg Config, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:        httpH.NewHealthHandler(cfg.ServiceName),
		Input:         httpH.NewInputHandler(services.Input),
		Claim:         httpH.NewClaimHandler(services.Claim),
		Variant:       httpH.NewVariantHandler(services.Variant),
		ExportVersion: httpH.NewExportVersionHandler(services.Export),
	}
}

func routerConfig(log *logger.Logger, cfg Config, handlers Handlers, metrics *observability.Metrics) apphttp.RouterConfig {
	rc := apphttp.RouterConfig{
		Log:                  log,
		Metrics:              metrics,
		CORSOrigins:          cfg.CORSOrigins,
		HealthHandler:        handlers.Health,
		InputHandler:         handlers.Input,
		ClaimHandler:         handlers.Claim,
		VariantHandler:       handlers.Variant,
		ExportVersionHandler: handlers.ExportVersion,
	}
	if cfg.Otel.Enabled {
		rc.ServiceName = cfg.ServiceName
	}
	return rc
}

func ginMode(cfg Config) string {
	if cfg.LogMode == "production" || cfg.LogMode == "prod" {
		return gin.ReleaseMode
	}
	return gin.DebugMode
}
