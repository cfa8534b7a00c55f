package repository

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/mthiaw/mapaq-analytics-go/internal/models"
)

// Per-zone base risk levels for generated data. Zones not listed fall
// back to 0.5.
var baseRiskByZone = map[string]float64{
	"centre_ville":   0.6,
	"plateau":        0.4,
	"vieux_montreal": 0.3,
	"mile_end":       0.45,
	"verdun":         0.55,
	"outremont":      0.35,
	"rosemont":       0.5,
	"hochelaga":      0.65,
}

var syntheticThemes = []string{
	"Italian", "Asian", "French", "Fast Food", "Mexican", "Greek", "Lebanese",
}

// SyntheticSource generates demo records when no database is available.
// Records are generated once per zone at construction, so repeated reads
// return the same data for the lifetime of the source.
type SyntheticSource struct {
	byZone map[string][]models.Restaurant
	all    []models.Restaurant
}

// NewSyntheticSource populates every zone with 8-15 random restaurants
// scattered inside its radius. The same seed reproduces the same dataset.
func NewSyntheticSource(zones []models.Zone, seed int64) *SyntheticSource {
	rng := rand.New(rand.NewSource(seed))
	s := &SyntheticSource{byZone: make(map[string][]models.Restaurant, len(zones))}

	for _, zone := range zones {
		count := 8 + rng.Intn(8)
		records := make([]models.Restaurant, 0, count)
		for i := 0; i < count; i++ {
			records = append(records, syntheticRestaurant(rng, zone, i+1))
		}
		s.byZone[zone.ID] = records
		s.all = append(s.all, records...)
	}

	return s
}

func syntheticRestaurant(rng *rand.Rand, zone models.Zone, n int) models.Restaurant {
	// Uniform angle, distance within the zone radius; km offsets converted
	// to degrees with the 111 km/degree approximation.
	angle := rng.Float64() * 2 * math.Pi
	distance := rng.Float64() * zone.RadiusKm
	latOffset := distance * math.Cos(angle) / 111.0
	lngOffset := distance * math.Sin(angle) / (111.0 * math.Cos(zone.Center.Lat*math.Pi/180))

	baseRisk, ok := baseRiskByZone[zone.ID]
	if !ok {
		baseRisk = 0.5
	}
	score := baseRisk + (rng.Float64()*0.4 - 0.2)
	score = math.Max(0.1, math.Min(0.95, score))

	infractions := int(score*10 + (rng.Float64()*5 - 2))
	if infractions < 0 {
		infractions = 0
	}

	return models.Restaurant{
		ID:   fmt.Sprintf("demo_%s_%d", zone.ID, n),
		Name: fmt.Sprintf("Restaurant %s %d", zone.Name, n),
		Position: models.GeoPoint{
			Lat: zone.Center.Lat + latOffset,
			Lng: zone.Center.Lng + lngOffset,
		},
		Theme:           syntheticThemes[rng.Intn(len(syntheticThemes))],
		RiskScore:       score,
		RiskCategory:    models.ClassifyRisk(score),
		InfractionCount: infractions,
	}
}

// All returns every generated record.
func (s *SyntheticSource) All(ctx context.Context) ([]models.Restaurant, error) {
	return s.all, nil
}

// RecordsInZones returns the generated records of the given zones.
func (s *SyntheticSource) RecordsInZones(ctx context.Context, zones []models.Zone) ([]models.Restaurant, error) {
	var records []models.Restaurant
	for _, z := range zones {
		records = append(records, s.byZone[z.ID]...)
	}
	return records, nil
}
