package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mthiaw/mapaq-analytics-go/internal/database"
	"github.com/mthiaw/mapaq-analytics-go/internal/models"
)

const testSchema = `
CREATE TABLE restaurants (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    address TEXT,
    latitude REAL,
    longitude REAL,
    theme TEXT NOT NULL DEFAULT '',
    risk_score REAL NOT NULL DEFAULT 0,
    risk_category TEXT,
    infraction_count INTEGER NOT NULL DEFAULT 0,
    last_inspection TEXT
)`

func repoFixture(t *testing.T) *RestaurantRepository {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(testSchema)
	require.NoError(t, err)

	rows := []struct {
		id       string
		lat, lng interface{}
		score    float64
		category interface{}
		count    int
	}{
		{"in-plateau", 45.5210, -73.5790, 0.72, "high", 4},
		{"in-verdun", 45.4590, -73.5670, 0.25, nil, 0}, // category recomputed
		{"no-coords", nil, nil, 0.9, "critical", 9},    // excluded everywhere
	}
	for _, r := range rows {
		_, err = db.Exec(`INSERT INTO restaurants
			(id, name, latitude, longitude, theme, risk_score, risk_category, infraction_count)
			VALUES (?, ?, ?, ?, 'Italian', ?, ?, ?)`,
			r.id, r.id, r.lat, r.lng, r.score, r.category, r.count)
		require.NoError(t, err)
	}

	return NewRestaurantRepository(db)
}

func TestAllSkipsNullCoordinates(t *testing.T) {
	t.Parallel()

	repo := repoFixture(t)
	records, err := repo.All(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	ids := []string{records[0].ID, records[1].ID}
	assert.Contains(t, ids, "in-plateau")
	assert.Contains(t, ids, "in-verdun")
	assert.NotContains(t, ids, "no-coords")
}

func TestAllRecomputesMissingCategory(t *testing.T) {
	t.Parallel()

	repo := repoFixture(t)
	records, err := repo.All(context.Background())
	require.NoError(t, err)

	for _, r := range records {
		switch r.ID {
		case "in-plateau":
			assert.Equal(t, models.RiskHigh, r.RiskCategory)
		case "in-verdun":
			// NULL category in the store: derived from the score.
			assert.Equal(t, models.RiskLow, r.RiskCategory)
		}
	}
}

func TestRecordsInZonesBoundingBoxFilter(t *testing.T) {
	t.Parallel()

	repo := repoFixture(t)
	plateau := models.Zone{
		ID:       "plateau",
		Name:     "Plateau",
		Center:   models.GeoPoint{Lat: 45.5200, Lng: -73.5800},
		RadiusKm: 2.0,
	}

	records, err := repo.RecordsInZones(context.Background(), []models.Zone{plateau})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "in-plateau", records[0].ID)

	none, err := repo.RecordsInZones(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}
