package main

import (
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"paypulse/adapters/kv"
	"paypulse/adapters/report"
	"paypulse/app/ingest"
	"paypulse/app/settings"
	"paypulse/app/store"
	"paypulse/internal/config"
	"paypulse/internal/errors"
	"paypulse/ports"
	"paypulse/ui"
)

func main() {
	// Load environment variables from .env file (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	keyValue, err := newKeyValueStore(cfg)
	if err != nil {
		log.Fatalf("Storage error: %v", err)
	}

	datasetStore := store.New(keyValue)
	ingestService := ingest.NewService(datasetStore)
	settingsService := settings.NewService(keyValue)
	reportGenerator := report.NewGenerator(cfg.Report.OutputDir)

	app := ui.NewApp(ingestService, settingsService, reportGenerator)
	if err := app.Start(ui.Config{Port: cfg.Server.Port}); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// newKeyValueStore selects the persistence backend from configuration
func newKeyValueStore(cfg *config.Config) (ports.KeyValueStore, error) {
	switch cfg.Store.Driver {
	case "memory":
		log.Println("[Store] Using in-memory storage, data will not survive restarts")
		return kv.NewMemoryStore(), nil

	case "file":
		log.Printf("[Store] Using file storage at %s", cfg.Store.DataFile)
		return kv.NewFileStore(cfg.Store.DataFile), nil

	case "postgres":
		if cfg.Store.DatabaseURL == "" {
			return nil, errors.ConfigInvalid("DATABASE_URL is required for the postgres driver")
		}
		db, err := sqlx.Connect("postgres", cfg.Store.DatabaseURL)
		if err != nil {
			return nil, errors.Wrap(err, "failed to connect to database")
		}
		if err := db.Ping(); err != nil {
			return nil, errors.Wrap(err, "failed to ping database")
		}
		pgStore, err := kv.NewPostgresStore(db)
		if err != nil {
			return nil, err
		}
		log.Println("[Store] Using PostgreSQL storage")
		return pgStore, nil

	default:
		return nil, errors.ConfigInvalid("unknown store driver: " + cfg.Store.Driver)
	}
}
