package models

// Zone is a fixed circular geographic region used as the unit of
// aggregation. The zone set is configuration, loaded once at startup and
// never mutated afterwards.
type Zone struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Center   GeoPoint `json:"center"`
	RadiusKm float64  `json:"radius_km"`
}

// ZoneStats holds the per-zone aggregates of one analysis run. Zones with
// no member restaurants produce no ZoneStats row.
type ZoneStats struct {
	Zone              Zone                 `json:"zone"`
	MemberCount       int                  `json:"member_count"`
	InfractionCount   int                  `json:"infraction_count"`
	MeanRiskScore     float64              `json:"mean_risk_score"`
	InfractionDensity float64              `json:"infraction_density"` // infractions per km²
	CategoryHistogram map[RiskCategory]int `json:"category_histogram"`
	Members           []Restaurant         `json:"-"`
}

// Trend classifies the similarity between two zones' risk profiles.
type Trend string

const (
	TrendPositive Trend = "positive"
	TrendNegative Trend = "negative"
	TrendNeutral  Trend = "neutral"
)

// ZoneCorrelation is the pairwise similarity of two zones. Scores are
// symmetric in the pair order.
type ZoneCorrelation struct {
	ZoneA                string  `json:"zone_a"`
	ZoneB                string  `json:"zone_b"`
	DistanceKm           float64 `json:"distance_km"`
	InfractionSimilarity float64 `json:"infraction_similarity"` // [0,1]
	RiskSimilarity       float64 `json:"risk_similarity"`       // [0,1]
	SharedThemeCount     int     `json:"shared_theme_count"`
	Trend                Trend   `json:"trend"`
}

// MeanSimilarity is the ranking score used to order correlation lists.
func (c ZoneCorrelation) MeanSimilarity() float64 {
	return (c.InfractionSimilarity + c.RiskSimilarity) / 2
}
