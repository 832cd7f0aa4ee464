// Package api wires the HTTP routes of the data service.
package api

import (
	"stock-data-api/internal/api/handlers"
	"stock-data-api/internal/api/middleware"
	"stock-data-api/internal/config"
	"stock-data-api/internal/metrics"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine. m may be nil, in which case no metrics are
// recorded and the metrics route is not registered.
func NewRouter(cfg *config.Config, source handlers.Source, m *metrics.Metrics) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(cfg.Server.CORSOrigins))
	if m != nil {
		router.Use(middleware.Metrics(m))
	}

	datasets := handlers.NewDatasetHandler(source, m)

	router.GET("/", handlers.Root)
	router.GET("/favicon.ico", handlers.Favicon)
	router.GET("/health", handlers.Health)
	router.GET("/openapi.json", handlers.OpenAPI)

	router.GET("/iip_data/", datasets.GetIndicatorData)
	router.GET("/stock_data/", datasets.ListSymbols)
	router.GET("/stock_data/:symbol", datasets.GetStockData)
	router.GET("/stock_data/:symbol/range", datasets.GetStockDataInRange)

	if m != nil && cfg.Metrics.Enabled {
		router.GET(cfg.Metrics.Path, gin.WrapH(m.Handler()))
	}

	router.NoRoute(handlers.NotFound)
	return router
}
