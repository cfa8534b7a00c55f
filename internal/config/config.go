package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/mthiaw/mapaq-analytics-go/internal/models"
)

// Config holds the application configuration.
type Config struct {
	Port           string
	DBPath         string
	MigrationsPath string
	ZonesPath      string
	CacheCapacity  int
	RateLimit      int // requests per minute per client IP
	SyntheticSeed  int64
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:           envOr("PORT", ":8080"),
		DBPath:         envOr("DB_PATH", "./data/mapaq.db"),
		MigrationsPath: envOr("MIGRATIONS_PATH", "./migrations"),
		ZonesPath:      os.Getenv("ZONES_PATH"),
		CacheCapacity:  envIntOr("CACHE_CAPACITY", 1024),
		RateLimit:      envIntOr("RATE_LIMIT", 120),
		SyntheticSeed:  int64(envIntOr("SYNTHETIC_SEED", 42)),
	}
}

// LoadZones returns the zone list. With no ZONES_PATH configured the
// compiled-in Montreal boroughs are used.
func (c *Config) LoadZones() ([]models.Zone, error) {
	if c.ZonesPath == "" {
		return DefaultZones(), nil
	}

	data, err := os.ReadFile(c.ZonesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read zones file: %w", err)
	}

	var zones []models.Zone
	if err := json.Unmarshal(data, &zones); err != nil {
		return nil, fmt.Errorf("failed to parse zones file: %w", err)
	}
	if len(zones) == 0 {
		return nil, fmt.Errorf("zones file %s defines no zones", c.ZonesPath)
	}

	return zones, nil
}

// DefaultZones is the built-in Montreal borough set.
func DefaultZones() []models.Zone {
	return []models.Zone{
		{ID: "plateau", Name: "Plateau-Mont-Royal", Center: models.GeoPoint{Lat: 45.5200, Lng: -73.5800}, RadiusKm: 2.0},
		{ID: "centre_ville", Name: "Centre-Ville", Center: models.GeoPoint{Lat: 45.5017, Lng: -73.5673}, RadiusKm: 1.5},
		{ID: "vieux_montreal", Name: "Vieux-Montréal", Center: models.GeoPoint{Lat: 45.5088, Lng: -73.5540}, RadiusKm: 1.0},
		{ID: "mile_end", Name: "Mile End", Center: models.GeoPoint{Lat: 45.5230, Lng: -73.6000}, RadiusKm: 1.2},
		{ID: "verdun", Name: "Verdun", Center: models.GeoPoint{Lat: 45.4580, Lng: -73.5680}, RadiusKm: 2.5},
		{ID: "outremont", Name: "Outremont", Center: models.GeoPoint{Lat: 45.5180, Lng: -73.6100}, RadiusKm: 1.8},
		{ID: "rosemont", Name: "Rosemont-La Petite-Patrie", Center: models.GeoPoint{Lat: 45.5400, Lng: -73.5800}, RadiusKm: 2.2},
		{ID: "hochelaga", Name: "Hochelaga-Maisonneuve", Center: models.GeoPoint{Lat: 45.5300, Lng: -73.5400}, RadiusKm: 2.0},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
