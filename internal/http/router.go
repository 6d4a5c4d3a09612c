package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/claimline-backend/internal/http/handlers"
	httpMW "github.com/yungbote/claimline-backend/internal/http/middleware"
	"github.com/yungbote/claimline-backend/internal/observability"
	"github.com/yungbote/claimline-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log     *logger.Logger
	Metrics *observability.Metrics

	// ServiceName labels otel spans; tracing middleware is skipped when empty.
	ServiceName string
	CORSOrigins []string

	InputHandler         *httpH.InputHandler
	ClaimHandler         *httpH.ClaimHandler
	VariantHandler       *httpH.VariantHandler
	ExportVersionHandler *httpH.ExportVersionHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	httpH.ConfigureValidator()

	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.CORSOrigins...))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
		r.GET("/health", cfg.HealthHandler.HealthCheck)
	}

	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapF(cfg.Metrics.WriteHTTP))
	}

	api := r.Group("/api")
	{
		// Inputs
		if cfg.InputHandler != nil {
			api.POST("/inputs", cfg.InputHandler.CreateInput)
			api.GET("/inputs", cfg.InputHandler.ListInputs)
			api.GET("/inputs/:id", cfg.InputHandler.GetInput)
		}

		// Claims
		if cfg.ClaimHandler != nil {
			api.POST("/claims", cfg.ClaimHandler.CreateClaim)
			api.GET("/claims/:id", cfg.ClaimHandler.GetClaim)
		}

		// Variants
		if cfg.VariantHandler != nil {
			api.POST("/variants", cfg.VariantHandler.CreateVariant)
			api.GET("/variants/:id", cfg.VariantHandler.GetVariant)
		}

		// Export versions
		if cfg.ExportVersionHandler != nil {
			api.POST("/export-versions", cfg.ExportVersionHandler.CreateExportVersion)
			api.GET("/export-versions/:id", cfg.ExportVersionHandler.GetExportVersion)
		}
	}

	return r
}
