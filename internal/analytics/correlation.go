package analytics

import (
	"math"
	"sort"

	"github.com/mthiaw/mapaq-analytics-go/internal/models"
	"github.com/mthiaw/mapaq-analytics-go/internal/spatial"
)

// Trend thresholds. Positive demands both similarity signals strong;
// negative needs only one weak signal.
const (
	trendPositiveThreshold = 0.7
	trendNegativeThreshold = 0.3
)

// CorrelateZones computes one ZoneCorrelation per unordered pair of
// ZoneStats. The result is sorted by mean similarity descending; the sort
// is stable, so equal pairs keep their generation order.
func CorrelateZones(zones []models.ZoneStats) []models.ZoneCorrelation {
	var correlations []models.ZoneCorrelation

	for i, a := range zones {
		for _, b := range zones[i+1:] {
			correlations = append(correlations, correlatePair(a, b))
		}
	}

	sort.SliceStable(correlations, func(i, j int) bool {
		return correlations[i].MeanSimilarity() > correlations[j].MeanSimilarity()
	})

	return correlations
}

func correlatePair(a, b models.ZoneStats) models.ZoneCorrelation {
	infractionSim := 0.0
	if a.InfractionCount > 0 && b.InfractionCount > 0 {
		lo, hi := a.InfractionCount, b.InfractionCount
		if lo > hi {
			lo, hi = hi, lo
		}
		infractionSim = float64(lo) / float64(hi)
	}

	riskSim := 1 - math.Abs(a.MeanRiskScore-b.MeanRiskScore)
	if riskSim < 0 {
		riskSim = 0
	}

	// Cross-product count of same-theme member pairs, deliberately not
	// deduplicated by restaurant identity.
	shared := 0
	for _, ra := range a.Members {
		for _, rb := range b.Members {
			if ra.Theme == rb.Theme {
				shared++
			}
		}
	}

	return models.ZoneCorrelation{
		ZoneA:                a.Zone.ID,
		ZoneB:                b.Zone.ID,
		DistanceKm:           spatial.DistanceKm(a.Zone.Center, b.Zone.Center),
		InfractionSimilarity: infractionSim,
		RiskSimilarity:       riskSim,
		SharedThemeCount:     shared,
		Trend:                classifyTrend(infractionSim, riskSim),
	}
}

func classifyTrend(infractionSim, riskSim float64) models.Trend {
	switch {
	case infractionSim >= trendPositiveThreshold && riskSim >= trendPositiveThreshold:
		return models.TrendPositive
	case infractionSim < trendNegativeThreshold || riskSim < trendNegativeThreshold:
		return models.TrendNegative
	default:
		return models.TrendNeutral
	}
}
