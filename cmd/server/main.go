package main

import (
	"context"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"tour-route-service/internal/adapters/cache"
	"tour-route-service/internal/adapters/repositories"
	"tour-route-service/internal/adapters/routing"
	"tour-route-service/internal/api"
	"tour-route-service/internal/config"
	"tour-route-service/internal/platform/db"
	"tour-route-service/internal/services"
	"tour-route-service/pkg/logger"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, OSRM) behind ports and starts the HTTP server.
func main() {
	dotenvErr := godotenv.Load()

	cfg, err := config.Load(context.Background())
	if err != nil {
		lg := logger.Get()
		lg.Fatal().Err(err).Msg("configuration invalid")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
	})
	if dotenvErr != nil {
		log.Info().Msg("no .env file found (using environment variables)")
	}

	database, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database open failed")
	}
	defer database.Close()

	// Initialize schema on startup for local runs.
	if err := repositories.InitSchema(database); err != nil {
		log.Fatal().Err(err).Msg("schema initialization failed")
	}

	// The OSRM provider sits behind the persistent route cache so that only
	// cache misses ever reach the external service.
	routeCache := cache.NewPostgresRouteCache(database)
	provider, err := routing.NewOSRMRouteProvider(
		cfg.Routing.BaseURL,
		time.Duration(cfg.Routing.CallIntervalMS)*time.Millisecond,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("routing provider setup failed")
	}

	distances := services.NewDistanceService(routeCache, provider)
	repo := repositories.NewPostgresStopRepository(database)
	router := api.NewRouter(repo, distances, cfg.Tour.GapThresholdDays)

	// Timeouts are tuned for cold-cache itinerary builds (external API latency).
	log.Info().Str("addr", ":"+cfg.Port).Msg("server listening")
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal().Err(srv.ListenAndServe()).Msg("server stopped")
}
