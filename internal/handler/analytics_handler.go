package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mthiaw/mapaq-analytics-go/internal/models"
	"github.com/mthiaw/mapaq-analytics-go/internal/service"
	"github.com/mthiaw/mapaq-analytics-go/pkg/response"
)

// AnalyticsHandler handles HTTP requests for zone analytics.
type AnalyticsHandler struct {
	service *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(service *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// GetZoneStats handles GET /api/v1/zones/stats
func (h *AnalyticsHandler) GetZoneStats(c *gin.Context) {
	zones, err := h.service.ZoneStats(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Failed to aggregate zones")
		return
	}

	response.Success(c, gin.H{
		"data":  zones,
		"count": len(zones),
	})
}

// GetZoneCorrelations handles GET /api/v1/zones/correlations
func (h *AnalyticsHandler) GetZoneCorrelations(c *gin.Context) {
	correlations, err := h.service.Correlations(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Failed to compute correlations")
		return
	}

	response.Success(c, gin.H{
		"data":  correlations,
		"count": len(correlations),
	})
}

// GetHeatmap handles GET /api/v1/analytics/heatmap
func (h *AnalyticsHandler) GetHeatmap(c *gin.Context) {
	heatmap, err := h.service.Heatmap(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Failed to build heatmap")
		return
	}

	response.Success(c, heatmap)
}

// GetReport handles GET /api/v1/analytics/report
func (h *AnalyticsHandler) GetReport(c *gin.Context) {
	report, err := h.service.Report(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Failed to build report")
		return
	}

	response.Success(c, report)
}

// GetNearby handles GET /api/v1/restaurants/nearby?lat=&lng=&radius_km=
func (h *AnalyticsHandler) GetNearby(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		response.BadRequest(c, "Invalid or missing lat parameter")
		return
	}
	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		response.BadRequest(c, "Invalid or missing lng parameter")
		return
	}
	radiusKm, err := strconv.ParseFloat(c.DefaultQuery("radius_km", "1.0"), 64)
	if err != nil {
		response.BadRequest(c, "Invalid radius_km parameter")
		return
	}
	if radiusKm <= 0 {
		response.BadRequest(c, "radius_km must be positive")
		return
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		response.BadRequest(c, "Coordinates out of range")
		return
	}

	records, err := h.service.Nearby(c.Request.Context(), models.GeoPoint{Lat: lat, Lng: lng}, radiusKm)
	if err != nil {
		response.InternalError(c, "Failed to query records")
		return
	}

	response.Success(c, gin.H{
		"data":  records,
		"count": len(records),
	})
}

// GetZones handles GET /api/v1/zones
func (h *AnalyticsHandler) GetZones(c *gin.Context) {
	zones := h.service.Zones()
	response.Success(c, gin.H{
		"data":  zones,
		"count": len(zones),
	})
}

// Health handles GET /health, reporting cache counters alongside status.
func (h *AnalyticsHandler) Health(c *gin.Context) {
	hits, misses, size := h.service.CacheStats()
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"cache": gin.H{
			"hits":   hits,
			"misses": misses,
			"size":   size,
		},
	})
}
