package service

import (
	"context"
	"fmt"

	"github.com/mthiaw/mapaq-analytics-go/internal/analytics"
	"github.com/mthiaw/mapaq-analytics-go/internal/cache"
	"github.com/mthiaw/mapaq-analytics-go/internal/models"
	"github.com/mthiaw/mapaq-analytics-go/internal/spatial"
)

// RecordSource supplies inspection records to the analytics engine. Both
// the SQLite repository and the synthetic generator satisfy it.
type RecordSource interface {
	All(ctx context.Context) ([]models.Restaurant, error)
	RecordsInZones(ctx context.Context, zones []models.Zone) ([]models.Restaurant, error)
}

// AnalyticsService orchestrates zone aggregation, correlation and spatial
// queries over one record source and one fixed zone configuration.
type AnalyticsService struct {
	source RecordSource
	zones  []models.Zone
	index  *spatial.Index
	cache  *cache.SpatialQueryCache
}

// NewAnalyticsService wires the service. cacheCapacity <= 0 selects the
// cache default.
func NewAnalyticsService(source RecordSource, zones []models.Zone, cacheCapacity int) *AnalyticsService {
	index := spatial.NewIndex(zones)
	return &AnalyticsService{
		source: source,
		zones:  zones,
		index:  index,
		cache:  cache.NewSpatialQueryCache(index, source, cacheCapacity),
	}
}

// ZoneStats runs a fresh aggregation over the full record set. An empty
// zone configuration or record set degrades to an empty result, never an
// error; only record-source failures propagate.
func (s *AnalyticsService) ZoneStats(ctx context.Context) ([]models.ZoneStats, error) {
	records, err := s.source.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	return analytics.AggregateZones(s.zones, records), nil
}

// Correlations computes pairwise zone correlations for the current data.
func (s *AnalyticsService) Correlations(ctx context.Context) ([]models.ZoneCorrelation, error) {
	zones, err := s.ZoneStats(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.CorrelateZones(zones), nil
}

// Heatmap builds the density heatmap for the current data.
func (s *AnalyticsService) Heatmap(ctx context.Context) (models.Heatmap, error) {
	zones, err := s.ZoneStats(ctx)
	if err != nil {
		return models.Heatmap{}, err
	}
	return analytics.BuildHeatmap(zones), nil
}

// Report builds the full analytics report for the current data.
func (s *AnalyticsService) Report(ctx context.Context) (models.Report, error) {
	zones, err := s.ZoneStats(ctx)
	if err != nil {
		return models.Report{}, err
	}
	return analytics.BuildReport(zones, analytics.CorrelateZones(zones)), nil
}

// Nearby returns all records within radiusKm of p, served through the
// spatial query cache.
func (s *AnalyticsService) Nearby(ctx context.Context, p models.GeoPoint, radiusKm float64) ([]models.Restaurant, error) {
	if radiusKm <= 0 {
		return nil, fmt.Errorf("radius must be positive, got %v", radiusKm)
	}
	if p.Lat < -90 || p.Lat > 90 || p.Lng < -180 || p.Lng > 180 {
		return nil, fmt.Errorf("coordinates out of range: (%v, %v)", p.Lat, p.Lng)
	}
	return s.cache.Query(ctx, p, radiusKm)
}

// CacheStats exposes spatial cache counters for monitoring.
func (s *AnalyticsService) CacheStats() (hits, misses uint64, size int) {
	return s.cache.Stats()
}

// Zones returns the configured zone list.
func (s *AnalyticsService) Zones() []models.Zone {
	return s.zones
}
