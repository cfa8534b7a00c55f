package spatial

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mthiaw/mapaq-analytics-go/internal/models"
)

func TestDistanceKmIdentity(t *testing.T) {
	t.Parallel()

	p := models.GeoPoint{Lat: 45.5017, Lng: -73.5673}
	assert.Zero(t, DistanceKm(p, p))
}

func TestDistanceKmSymmetry(t *testing.T) {
	t.Parallel()

	pairs := []struct {
		name string
		a, b models.GeoPoint
	}{
		{"montreal", models.GeoPoint{Lat: 45.5200, Lng: -73.5800}, models.GeoPoint{Lat: 45.5017, Lng: -73.5673}},
		{"equator", models.GeoPoint{Lat: 0, Lng: 0}, models.GeoPoint{Lat: 0, Lng: 1}},
		{"hemispheres", models.GeoPoint{Lat: 51.5, Lng: -0.12}, models.GeoPoint{Lat: -33.86, Lng: 151.2}},
	}

	for _, tt := range pairs {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, DistanceKm(tt.a, tt.b), DistanceKm(tt.b, tt.a), 1e-9)
		})
	}
}

func TestDistanceKmKnownValues(t *testing.T) {
	t.Parallel()

	// One degree of latitude along a meridian is R*pi/180 km.
	a := models.GeoPoint{Lat: 45.0, Lng: -73.0}
	b := models.GeoPoint{Lat: 46.0, Lng: -73.0}
	assert.InDelta(t, EarthRadiusKm*math.Pi/180, DistanceKm(a, b), 0.01)

	// Plateau to downtown Montreal is roughly two kilometers.
	plateau := models.GeoPoint{Lat: 45.5200, Lng: -73.5800}
	downtown := models.GeoPoint{Lat: 45.5017, Lng: -73.5673}
	d := DistanceKm(plateau, downtown)
	assert.Greater(t, d, 2.0)
	assert.Less(t, d, 2.6)
}

func TestDistanceKmNaNPropagation(t *testing.T) {
	t.Parallel()

	valid := models.GeoPoint{Lat: 45.5, Lng: -73.5}
	invalid := models.GeoPoint{Lat: math.NaN(), Lng: -73.5}

	d := DistanceKm(valid, invalid)
	assert.True(t, math.IsNaN(d))
	// NaN distances fail every membership comparison.
	assert.False(t, d <= 100)
}
