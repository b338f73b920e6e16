package handler

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"scheme-console/internal/handler/api"
	"scheme-console/internal/handler/middleware"
	"scheme-console/internal/pkg/config"
	"scheme-console/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, m *metrics.Metrics, schemeHandler *api.SchemeHandler, catalogHandler *api.CatalogHandler) {
	setupMiddleware(engine, cfg, logger, m)
	setupRoutes(engine, cfg, schemeHandler, catalogHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.MetricsMiddleware(m))
	engine.Use(middleware.ErrorHandler(logger))
}

func setupRoutes(engine *gin.Engine, cfg config.Config, schemeHandler *api.SchemeHandler, catalogHandler *api.CatalogHandler) {
	engine.GET("/health", healthCheck(cfg))
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		catalog := apiGroup.Group("/catalog")
		{
			addRoutes(catalog, []route{
				{Method: http.MethodGet, Path: "/regions", Handler: catalogHandler.Regions},
				{Method: http.MethodGet, Path: "/skus", Handler: catalogHandler.SKUs},
				{Method: http.MethodGet, Path: "/skus/:id/pack-sizes", Handler: catalogHandler.PackSizes},
				{Method: http.MethodGet, Path: "/coupon-types", Handler: catalogHandler.CouponTypes},
			})
		}

		schemes := apiGroup.Group("/schemes")
		{
			addRoutes(schemes, []route{
				{Method: http.MethodPost, Path: "", Handler: schemeHandler.Create, Mw: []gin.HandlerFunc{middleware.RequireJSON()}},
				{Method: http.MethodGet, Path: "", Handler: schemeHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: schemeHandler.Get},
				{Method: http.MethodDelete, Path: "/:id", Handler: schemeHandler.Delete},
				{Method: http.MethodPost, Path: "/:id/activate", Handler: schemeHandler.Activate},
				{Method: http.MethodGet, Path: "/:id/entries/:index/regions/:code", Handler: schemeHandler.Resolve},
				{Method: http.MethodGet, Path: "/:id/entries/:index/coverage", Handler: schemeHandler.Coverage},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy and report its backends
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"store":     cfg.Store.Driver,
			"sequencer": cfg.Scheme.Sequencer,
		})
	}
}

// addRoutes registers each route with its own middleware ahead of the handler.
func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		handlers := append(slices.Clone(r.Mw), r.Handler)
		g.Handle(r.Method, r.Path, handlers...)
	}
}
