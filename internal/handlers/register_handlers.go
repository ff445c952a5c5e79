package handlers

import (
	"net/http"

	"github.com/SscSPs/finance_tracker/cmd/docs"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/platform/config"
	"github.com/SscSPs/finance_tracker/internal/platform/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouteMiddleware holds per-group middleware, such as separate rate limiters for the API
// and the operational endpoints.
type RouteMiddleware struct {
	API []gin.HandlerFunc
	Ops []gin.HandlerFunc
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	m *metrics.Metrics,
	mw RouteMiddleware,
) {
	ops := r.Group("", mw.Ops...)
	ops.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	if m != nil {
		ops.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})))
	}

	setupAPIV1Routes(r, services, mw.API)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(r *gin.Engine, services *portssvc.ServiceContainer, apiMiddleware []gin.HandlerFunc) {
	v1 := r.Group("/api/v1", apiMiddleware...)
	RegisterTransactionRoutes(v1, services.Transaction, services.Payment)
	RegisterCardRoutes(v1, services.Card)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
