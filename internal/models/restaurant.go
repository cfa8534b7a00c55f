package models

// RiskCategory is the qualitative risk class of a restaurant.
type RiskCategory string

const (
	RiskCritical RiskCategory = "critical"
	RiskHigh     RiskCategory = "high"
	RiskModerate RiskCategory = "moderate"
	RiskLow      RiskCategory = "low"
)

// Risk score cutoffs. Kept in one place; every component classifies
// through ClassifyRisk instead of carrying its own thresholds.
const (
	RiskCriticalThreshold = 0.8
	RiskHighThreshold     = 0.6
	RiskModerateThreshold = 0.3
)

// ClassifyRisk maps a risk score in [0,1] to its category.
func ClassifyRisk(score float64) RiskCategory {
	switch {
	case score >= RiskCriticalThreshold:
		return RiskCritical
	case score >= RiskHighThreshold:
		return RiskHigh
	case score >= RiskModerateThreshold:
		return RiskModerate
	default:
		return RiskLow
	}
}

// Restaurant is a geolocated inspection record. The analytics layer treats
// it as read-only input.
type Restaurant struct {
	ID              string       `json:"id" db:"id"`
	Name            string       `json:"name" db:"name"`
	Address         string       `json:"address,omitempty" db:"address"`
	Position        GeoPoint     `json:"position"`
	Theme           string       `json:"theme" db:"theme"`
	RiskScore       float64      `json:"risk_score" db:"risk_score"`
	RiskCategory    RiskCategory `json:"risk_category" db:"risk_category"`
	InfractionCount int          `json:"infraction_count" db:"infraction_count"`
	LastInspection  string       `json:"last_inspection,omitempty" db:"last_inspection"`
}
