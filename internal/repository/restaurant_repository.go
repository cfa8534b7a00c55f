package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/mthiaw/mapaq-analytics-go/internal/models"
	"github.com/mthiaw/mapaq-analytics-go/internal/spatial"
)

const restaurantColumns = `id, name, address, latitude, longitude, theme,
	risk_score, risk_category, infraction_count, last_inspection`

// RestaurantRepository reads inspection records from SQLite.
type RestaurantRepository struct {
	db *sql.DB
}

// NewRestaurantRepository creates a new restaurant repository
func NewRestaurantRepository(db *sql.DB) *RestaurantRepository {
	return &RestaurantRepository{db: db}
}

// All returns every record that carries coordinates.
func (r *RestaurantRepository) All(ctx context.Context) ([]models.Restaurant, error) {
	query := fmt.Sprintf(`SELECT %s FROM restaurants
		WHERE latitude IS NOT NULL AND longitude IS NOT NULL`, restaurantColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query restaurants: %w", err)
	}
	defer rows.Close()

	return scanRestaurants(rows)
}

// RecordsInZones returns records falling inside the approximate bounding
// box of any of the given zones. The box test over-returns near zone
// edges; callers apply the exact distance predicate themselves.
func (r *RestaurantRepository) RecordsInZones(ctx context.Context, zones []models.Zone) ([]models.Restaurant, error) {
	if len(zones) == 0 {
		return nil, nil
	}

	var conditions []string
	var args []interface{}
	for _, z := range zones {
		bbox := spatial.ZoneBoundingBox(z)
		conditions = append(conditions,
			"(latitude BETWEEN ? AND ? AND longitude BETWEEN ? AND ?)")
		args = append(args, bbox.MinLat, bbox.MaxLat, bbox.MinLng, bbox.MaxLng)
	}

	query := fmt.Sprintf(`SELECT %s FROM restaurants
		WHERE latitude IS NOT NULL AND longitude IS NOT NULL
		AND (%s)`, restaurantColumns, strings.Join(conditions, " OR "))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query restaurants in zones: %w", err)
	}
	defer rows.Close()

	return scanRestaurants(rows)
}

func scanRestaurants(rows *sql.Rows) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	for rows.Next() {
		var r models.Restaurant
		var address, category, lastInspection sql.NullString
		err := rows.Scan(
			&r.ID, &r.Name, &address, &r.Position.Lat, &r.Position.Lng,
			&r.Theme, &r.RiskScore, &category, &r.InfractionCount, &lastInspection,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan restaurant: %w", err)
		}
		r.Address = address.String
		r.LastInspection = lastInspection.String
		if category.Valid && category.String != "" {
			r.RiskCategory = models.RiskCategory(category.String)
		} else {
			r.RiskCategory = models.ClassifyRisk(r.RiskScore)
		}
		restaurants = append(restaurants, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate restaurants: %w", err)
	}

	return restaurants, nil
}
