package main

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"tour-route-service/internal/adapters/repositories"
	"tour-route-service/internal/config"
	"tour-route-service/internal/platform/db"
	"tour-route-service/pkg/logger"
)

// dbtool initializes the schema and seeds stop data for local development.
func main() {
	dotenvErr := godotenv.Load()

	cfg, err := config.Load(context.Background())
	if err != nil {
		lg := logger.Get()
		lg.Fatal().Err(err).Msg("configuration invalid")
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})
	if dotenvErr != nil {
		log.Info().Msg("no .env file found (using environment variables)")
	}

	database, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database open failed")
	}
	defer database.Close()

	if err := initAndSeed(database, cfg.SeedPath); err != nil {
		log.Fatal().Err(err).Msg("init and seed failed")
	}
	log.Info().Msg("schema ready, seeding complete")
}

func initAndSeed(database *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(database); err != nil {
		return err
	}

	return repositories.SeedFromJSON(database, seedPath)
}
