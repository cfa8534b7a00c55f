package analytics

import (
	"math"
	"sort"

	"github.com/mthiaw/mapaq-analytics-go/internal/models"
	"github.com/mthiaw/mapaq-analytics-go/internal/spatial"
	"github.com/mthiaw/mapaq-analytics-go/internal/stats"
)

// AggregateZones assigns restaurants to zones and computes per-zone
// statistics. Membership is the exact predicate: the restaurant lies within
// RadiusKm of the zone center. Restaurants with non-finite coordinates
// yield NaN distances and fail every comparison, so they are silently
// excluded rather than rejected up front.
//
// Zones with zero members are omitted from the result. The returned list
// is sorted by infraction density descending; the sort is stable, so zones
// with equal densities keep their configuration order.
func AggregateZones(zones []models.Zone, restaurants []models.Restaurant) []models.ZoneStats {
	result := make([]models.ZoneStats, 0, len(zones))

	for _, zone := range zones {
		var members []models.Restaurant
		for _, r := range restaurants {
			if spatial.DistanceKm(r.Position, zone.Center) <= zone.RadiusKm {
				members = append(members, r)
			}
		}
		if len(members) == 0 {
			continue
		}
		result = append(result, zoneStats(zone, members))
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].InfractionDensity > result[j].InfractionDensity
	})

	return result
}

func zoneStats(zone models.Zone, members []models.Restaurant) models.ZoneStats {
	infractions := 0
	risks := make([]float64, len(members))
	histogram := make(map[models.RiskCategory]int)

	for i, r := range members {
		infractions += r.InfractionCount
		risks[i] = r.RiskScore
		histogram[categoryOf(r)]++
	}

	area := math.Pi * zone.RadiusKm * zone.RadiusKm

	return models.ZoneStats{
		Zone:              zone,
		MemberCount:       len(members),
		InfractionCount:   infractions,
		MeanRiskScore:     stats.Mean(risks),
		InfractionDensity: float64(infractions) / area,
		CategoryHistogram: histogram,
		Members:           members,
	}
}

// categoryOf trusts the category carried by the record and recomputes it
// from the score only when the record arrived unclassified.
func categoryOf(r models.Restaurant) models.RiskCategory {
	if r.RiskCategory != "" {
		return r.RiskCategory
	}
	return models.ClassifyRisk(r.RiskScore)
}
