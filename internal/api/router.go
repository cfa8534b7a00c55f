package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mthiaw/mapaq-analytics-go/internal/config"
	"github.com/mthiaw/mapaq-analytics-go/internal/handler"
	"github.com/mthiaw/mapaq-analytics-go/internal/middleware"
	"github.com/mthiaw/mapaq-analytics-go/internal/service"
)

// SetupRouter builds the gin engine with all analytics routes.
func SetupRouter(cfg *config.Config, svc *service.AnalyticsService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	limiter := middleware.NewRateLimiter(cfg.RateLimit, time.Minute)
	r.Use(limiter.Middleware())

	h := handler.NewAnalyticsHandler(svc)

	r.GET("/health", h.Health)

	api := r.Group("/api/v1")
	{
		zones := api.Group("/zones")
		{
			zones.GET("", h.GetZones)
			zones.GET("/stats", h.GetZoneStats)
			zones.GET("/correlations", h.GetZoneCorrelations)
		}

		analytics := api.Group("/analytics")
		{
			analytics.GET("/heatmap", h.GetHeatmap)
			analytics.GET("/report", h.GetReport)
		}

		api.GET("/restaurants/nearby", h.GetNearby)
	}

	return r
}
