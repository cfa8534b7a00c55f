package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/mthiaw/mapaq-analytics-go/internal/models"
	"github.com/mthiaw/mapaq-analytics-go/internal/stats"
)

// Report thresholds used by the summary and recommendation sections.
const (
	highRiskZoneThreshold    = 0.6
	criticalZoneThreshold    = 0.7
	highDensityZoneThreshold = 10.0
	denseZoneThreshold       = 15.0
	strongCorrelationCutoff  = 0.7
	heatmapDensityScale      = 20.0
	riskyThemeScore          = 0.7
)

// BuildHeatmap converts zone statistics into the heatmap payload. Zone
// intensity is the density normalized against a fixed 20/km² scale and
// clamped to [0,1] so colors stay comparable across runs.
func BuildHeatmap(zones []models.ZoneStats) models.Heatmap {
	heatmap := models.Heatmap{Zones: make([]models.HeatmapZone, 0, len(zones))}

	densities := make([]float64, 0, len(zones))
	for _, z := range zones {
		heatmap.Zones = append(heatmap.Zones, models.HeatmapZone{
			ID:              z.Zone.ID,
			Name:            z.Zone.Name,
			Center:          z.Zone.Center,
			RadiusKm:        z.Zone.RadiusKm,
			Density:         z.InfractionDensity,
			RestaurantCount: z.MemberCount,
			InfractionCount: z.InfractionCount,
			MeanRiskScore:   z.MeanRiskScore,
			Intensity:       stats.Clamp01(z.InfractionDensity / heatmapDensityScale),
		})
		densities = append(densities, z.InfractionDensity)
	}

	if len(densities) > 0 {
		heatmap.MaxDensity = stats.Max(densities)
		heatmap.MinDensity = stats.Min(densities)
		heatmap.MeanDensity = stats.Mean(densities)
	}

	return heatmap
}

// BuildReport assembles the full analytics report from one aggregation and
// correlation run. Pure formatting over the inputs; it never reorders or
// recomputes the underlying statistics.
func BuildReport(zones []models.ZoneStats, correlations []models.ZoneCorrelation) models.Report {
	report := models.Report{
		GeneratedAt:        time.Now().Format(time.RFC3339),
		Summary:            buildSummary(zones),
		TopZones:           topZones(zones, 5),
		StrongCorrelations: strongCorrelations(correlations, 10),
		ThemesByZone:       themesByZone(zones),
		Recommendations:    recommendations(zones, correlations),
		Heatmap:            BuildHeatmap(zones),
	}
	return report
}

func buildSummary(zones []models.ZoneStats) models.ReportSummary {
	summary := models.ReportSummary{ZoneCount: len(zones)}

	densities := make([]float64, 0, len(zones))
	for _, z := range zones {
		summary.RestaurantCount += z.MemberCount
		summary.InfractionCount += z.InfractionCount
		densities = append(densities, z.InfractionDensity)
		if z.MeanRiskScore >= highRiskZoneThreshold {
			summary.HighRiskZones++
		}
		if z.InfractionDensity >= highDensityZoneThreshold {
			summary.HighDensityZones++
		}
	}
	summary.MeanDensity = stats.Mean(densities)

	return summary
}

func topZones(zones []models.ZoneStats, n int) []models.TopZone {
	if len(zones) < n {
		n = len(zones)
	}
	top := make([]models.TopZone, 0, n)
	for _, z := range zones[:n] {
		top = append(top, models.TopZone{
			Name:              z.Zone.Name,
			MeanRiskScore:     z.MeanRiskScore,
			InfractionDensity: z.InfractionDensity,
			RestaurantCount:   z.MemberCount,
			InfractionCount:   z.InfractionCount,
		})
	}
	return top
}

func strongCorrelations(correlations []models.ZoneCorrelation, n int) []models.StrongCorrelation {
	var strong []models.StrongCorrelation
	for _, c := range correlations {
		if c.MeanSimilarity() < strongCorrelationCutoff {
			continue
		}
		strong = append(strong, models.StrongCorrelation{
			Zones:          c.ZoneA + " <-> " + c.ZoneB,
			DistanceKm:     c.DistanceKm,
			MeanSimilarity: c.MeanSimilarity(),
			Trend:          c.Trend,
		})
		if len(strong) == n {
			break
		}
	}
	return strong
}

func themesByZone(zones []models.ZoneStats) map[string]map[string]int {
	themes := make(map[string]map[string]int, len(zones))
	for _, z := range zones {
		counts := make(map[string]int)
		for _, r := range z.Members {
			counts[r.Theme]++
		}
		themes[z.Zone.Name] = counts
	}
	return themes
}

func recommendations(zones []models.ZoneStats, correlations []models.ZoneCorrelation) []string {
	var recs []string

	var critical, dense []string
	for _, z := range zones {
		if z.MeanRiskScore >= criticalZoneThreshold {
			critical = append(critical, z.Zone.Name)
		}
		if z.InfractionDensity >= denseZoneThreshold {
			dense = append(dense, z.Zone.Name)
		}
	}
	if len(critical) > 0 {
		recs = append(recs, fmt.Sprintf(
			"Reinforced surveillance recommended for %d zone(s): %s",
			len(critical), joinFirst(critical, 3)))
	}
	if len(dense) > 0 {
		recs = append(recs, fmt.Sprintf(
			"Preventive inspections in high-density zones: %s", joinFirst(dense, 3)))
	}

	for _, c := range correlations {
		if c.InfractionSimilarity >= 0.8 {
			recs = append(recs,
				"Coordinate inspections between correlated zones to optimize coverage")
			break
		}
	}

	// Theme present in the most high-risk zones, if any.
	themeZones := make(map[string]map[string]bool)
	for _, z := range zones {
		for _, r := range z.Members {
			if r.RiskScore < riskyThemeScore {
				continue
			}
			if themeZones[r.Theme] == nil {
				themeZones[r.Theme] = make(map[string]bool)
			}
			themeZones[r.Theme][z.Zone.ID] = true
		}
	}
	if len(themeZones) > 0 {
		themes := make([]string, 0, len(themeZones))
		for t := range themeZones {
			themes = append(themes, t)
		}
		sort.Slice(themes, func(i, j int) bool {
			if len(themeZones[themes[i]]) != len(themeZones[themes[j]]) {
				return len(themeZones[themes[i]]) > len(themeZones[themes[j]])
			}
			return themes[i] < themes[j]
		})
		top := themes[0]
		recs = append(recs, fmt.Sprintf(
			"Pay particular attention to %q restaurants (present in %d high-risk zone(s))",
			top, len(themeZones[top])))
	}

	return recs
}

func joinFirst(names []string, n int) string {
	if len(names) < n {
		n = len(names)
	}
	out := ""
	for i, name := range names[:n] {
		if i > 0 {
			out += ", "
		}
		out += name
	}
	return out
}
