package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyRisk(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score float64
		want  RiskCategory
	}{
		{0.95, RiskCritical},
		{0.8, RiskCritical},
		{0.79, RiskHigh},
		{0.6, RiskHigh},
		{0.59, RiskModerate},
		{0.3, RiskModerate},
		{0.29, RiskLow},
		{0.0, RiskLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyRisk(tt.score), "score %v", tt.score)
	}
}

func TestMeanSimilarity(t *testing.T) {
	t.Parallel()

	c := ZoneCorrelation{InfractionSimilarity: 0.8, RiskSimilarity: 0.6}
	assert.InDelta(t, 0.7, c.MeanSimilarity(), 1e-9)
}
