package models

// HeatmapZone is one zone entry of the density heatmap payload.
type HeatmapZone struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Center          GeoPoint `json:"center"`
	RadiusKm        float64  `json:"radius_km"`
	Density         float64  `json:"density"`
	RestaurantCount int      `json:"restaurant_count"`
	InfractionCount int      `json:"infraction_count"`
	MeanRiskScore   float64  `json:"mean_risk_score"`
	Intensity       float64  `json:"intensity"` // normalized 0-1
}

// Heatmap is the density heatmap API payload.
type Heatmap struct {
	Zones       []HeatmapZone `json:"zones"`
	MaxDensity  float64       `json:"max_density"`
	MinDensity  float64       `json:"min_density"`
	MeanDensity float64       `json:"mean_density"`
}

// ReportSummary holds the run-level totals of an analytics report.
type ReportSummary struct {
	ZoneCount        int     `json:"zone_count"`
	RestaurantCount  int     `json:"restaurant_count"`
	InfractionCount  int     `json:"infraction_count"`
	MeanDensity      float64 `json:"mean_density"`
	HighRiskZones    int     `json:"high_risk_zones"`    // mean risk >= 0.6
	HighDensityZones int     `json:"high_density_zones"` // density >= 10/km²
}

// TopZone is a condensed ZoneStats row for report ranking sections.
type TopZone struct {
	Name              string  `json:"name"`
	MeanRiskScore     float64 `json:"mean_risk_score"`
	InfractionDensity float64 `json:"infraction_density"`
	RestaurantCount   int     `json:"restaurant_count"`
	InfractionCount   int     `json:"infraction_count"`
}

// StrongCorrelation is a condensed correlation row for the report.
type StrongCorrelation struct {
	Zones          string  `json:"zones"`
	DistanceKm     float64 `json:"distance_km"`
	MeanSimilarity float64 `json:"mean_similarity"`
	Trend          Trend   `json:"trend"`
}

// Report is the full analytics report payload.
type Report struct {
	GeneratedAt        string                    `json:"generated_at"`
	Summary            ReportSummary             `json:"summary"`
	TopZones           []TopZone                 `json:"top_zones"`
	StrongCorrelations []StrongCorrelation       `json:"strong_correlations"`
	ThemesByZone       map[string]map[string]int `json:"themes_by_zone"`
	Recommendations    []string                  `json:"recommendations"`
	Heatmap            Heatmap                   `json:"heatmap"`
}
