package analytics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mthiaw/mapaq-analytics-go/internal/models"
)

func zoneZ1() models.Zone {
	return models.Zone{
		ID:       "z1",
		Name:     "Zone One",
		Center:   models.GeoPoint{Lat: 45.50, Lng: -73.57},
		RadiusKm: 1.0,
	}
}

func restaurantAt(id string, p models.GeoPoint, risk float64, infractions int, theme string) models.Restaurant {
	return models.Restaurant{
		ID:              id,
		Name:            id,
		Position:        p,
		Theme:           theme,
		RiskScore:       risk,
		RiskCategory:    models.ClassifyRisk(risk),
		InfractionCount: infractions,
	}
}

func TestAggregateZonesScenario(t *testing.T) {
	t.Parallel()

	zone := zoneZ1()
	center := zone.Center
	records := []models.Restaurant{
		restaurantAt("r1", center, 0.5, 2, "Italian"),
		restaurantAt("r2", center, 0.5, 3, "Greek"),
		restaurantAt("r3", center, 0.5, 5, "Italian"),
	}

	stats := AggregateZones([]models.Zone{zone}, records)
	require.Len(t, stats, 1)

	z := stats[0]
	assert.Equal(t, 3, z.MemberCount)
	assert.Equal(t, 10, z.InfractionCount)
	assert.InDelta(t, 0.5, z.MeanRiskScore, 1e-9)
	assert.InDelta(t, 10/math.Pi, z.InfractionDensity, 1e-9)

	sum := 0
	for _, n := range z.CategoryHistogram {
		sum += n
	}
	assert.Equal(t, z.MemberCount, sum)
	assert.Equal(t, 3, z.CategoryHistogram[models.RiskModerate])
}

func TestAggregateZonesOmitsEmptyZones(t *testing.T) {
	t.Parallel()

	zones := []models.Zone{
		zoneZ1(),
		{ID: "empty", Name: "Empty", Center: models.GeoPoint{Lat: 46.8, Lng: -71.2}, RadiusKm: 1.0},
	}
	records := []models.Restaurant{
		restaurantAt("r1", zones[0].Center, 0.4, 1, "French"),
	}

	stats := AggregateZones(zones, records)
	require.Len(t, stats, 1)
	assert.Equal(t, "z1", stats[0].Zone.ID)
}

func TestAggregateZonesExcludesInvalidCoordinates(t *testing.T) {
	t.Parallel()

	zone := zoneZ1()
	records := []models.Restaurant{
		restaurantAt("ok", zone.Center, 0.4, 1, "French"),
		restaurantAt("nan", models.GeoPoint{Lat: math.NaN(), Lng: math.NaN()}, 0.9, 7, "French"),
	}

	stats := AggregateZones([]models.Zone{zone}, records)
	require.Len(t, stats, 1)
	assert.Equal(t, 1, stats[0].MemberCount)
	assert.Equal(t, 1, stats[0].InfractionCount)
}

func TestAggregateZonesDensityOrdering(t *testing.T) {
	t.Parallel()

	zones := []models.Zone{
		{ID: "a", Name: "A", Center: models.GeoPoint{Lat: 45.50, Lng: -73.57}, RadiusKm: 1.0},
		{ID: "b", Name: "B", Center: models.GeoPoint{Lat: 45.60, Lng: -73.40}, RadiusKm: 1.0},
	}
	records := []models.Restaurant{
		restaurantAt("low", zones[0].Center, 0.4, 1, "French"),
		restaurantAt("high", zones[1].Center, 0.4, 9, "French"),
	}

	stats := AggregateZones(zones, records)
	require.Len(t, stats, 2)
	assert.Equal(t, "b", stats[0].Zone.ID)
	assert.Equal(t, "a", stats[1].Zone.ID)
	assert.GreaterOrEqual(t, stats[0].InfractionDensity, stats[1].InfractionDensity)
}

func TestAggregateZonesStableTies(t *testing.T) {
	t.Parallel()

	// Equal densities keep configuration order.
	zones := []models.Zone{
		{ID: "first", Name: "First", Center: models.GeoPoint{Lat: 45.50, Lng: -73.57}, RadiusKm: 1.0},
		{ID: "second", Name: "Second", Center: models.GeoPoint{Lat: 45.60, Lng: -73.40}, RadiusKm: 1.0},
	}
	records := []models.Restaurant{
		restaurantAt("r1", zones[0].Center, 0.4, 3, "French"),
		restaurantAt("r2", zones[1].Center, 0.4, 3, "French"),
	}

	stats := AggregateZones(zones, records)
	require.Len(t, stats, 2)
	assert.Equal(t, "first", stats[0].Zone.ID)
	assert.Equal(t, "second", stats[1].Zone.ID)
}

func TestAggregateZonesZeroInfractionsZeroDensity(t *testing.T) {
	t.Parallel()

	zone := zoneZ1()
	records := []models.Restaurant{
		restaurantAt("clean", zone.Center, 0.1, 0, "French"),
	}

	stats := AggregateZones([]models.Zone{zone}, records)
	require.Len(t, stats, 1)
	assert.Zero(t, stats[0].InfractionDensity)
}

func TestAggregateZonesEmptyInputs(t *testing.T) {
	t.Parallel()

	assert.Empty(t, AggregateZones(nil, []models.Restaurant{restaurantAt("r", models.GeoPoint{}, 0.5, 1, "x")}))
	assert.Empty(t, AggregateZones([]models.Zone{zoneZ1()}, nil))
}
