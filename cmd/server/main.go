package main

import (
	"log"
	"os"

	"github.com/mthiaw/mapaq-analytics-go/internal/api"
	"github.com/mthiaw/mapaq-analytics-go/internal/config"
	"github.com/mthiaw/mapaq-analytics-go/internal/database"
	"github.com/mthiaw/mapaq-analytics-go/internal/models"
	"github.com/mthiaw/mapaq-analytics-go/internal/repository"
	"github.com/mthiaw/mapaq-analytics-go/internal/service"
)

func main() {
	cfg := config.Load()

	zones, err := cfg.LoadZones()
	if err != nil {
		log.Fatal("Failed to load zone configuration: ", err)
	}

	source, cleanup, err := buildRecordSource(cfg, zones)
	if err != nil {
		log.Fatal("Failed to initialize record source: ", err)
	}
	defer cleanup()

	svc := service.NewAnalyticsService(source, zones, cfg.CacheCapacity)
	router := api.SetupRouter(cfg, svc)

	log.Printf("Server starting on %s (%d zones)", cfg.Port, len(zones))
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}

// buildRecordSource opens the SQLite-backed source, falling back to the
// synthetic demo generator when the database file does not exist.
func buildRecordSource(cfg *config.Config, zones []models.Zone) (service.RecordSource, func(), error) {
	if _, err := os.Stat(cfg.DBPath); err != nil {
		log.Printf("Database %s not found, using synthetic demo data", cfg.DBPath)
		return repository.NewSyntheticSource(zones, cfg.SyntheticSeed), func() {}, nil
	}

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}

	if err := database.NewMigrationManager(db, cfg.MigrationsPath).Run(); err != nil {
		db.Close()
		return nil, nil, err
	}

	return repository.NewRestaurantRepository(db), func() { db.Close() }, nil
}
