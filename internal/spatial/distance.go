package spatial

import (
	"github.com/golang/geo/s2"

	"github.com/mthiaw/mapaq-analytics-go/internal/models"
)

// Earth's mean radius.
const (
	EarthRadiusKm     = 6371.0
	EarthRadiusMeters = 6371000.0
)

// DistanceKm returns the great-circle distance between two points in
// kilometers. Symmetric, and exactly zero for identical points. Non-finite
// coordinates propagate as NaN; validation is a caller responsibility.
func DistanceKm(a, b models.GeoPoint) float64 {
	if a == b {
		return 0
	}
	p1 := s2.LatLngFromDegrees(a.Lat, a.Lng)
	p2 := s2.LatLngFromDegrees(b.Lat, b.Lng)
	return p1.Distance(p2).Radians() * EarthRadiusKm
}
