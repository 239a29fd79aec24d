package main

import (
	"errors"
	stdlog "log"
	"net/http"
	"os"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/username/bankrecon/backend/src/config"
	"github.com/username/bankrecon/backend/src/database"
	"github.com/username/bankrecon/backend/src/handlers"
	"github.com/username/bankrecon/backend/src/logger"
	"github.com/username/bankrecon/backend/src/model"
	"github.com/username/bankrecon/backend/src/parsers/bankcsv"
	"github.com/username/bankrecon/backend/src/processors"
	"github.com/username/bankrecon/backend/src/services"
	"golang.org/x/time/rate"
)

func main() {
	config.LoadConfig()
	logger.InitLogger(config.Cfg.LogLevel)

	logger.L.Info("Bank reconciliation backend starting...")

	logger.L.Info("Initializing database...", "path", config.Cfg.DatabasePath)
	database.InitDB(config.Cfg.DatabasePath)
	if err := database.RunMigrations(database.DB, config.Cfg.MigrationsPath); err != nil {
		logger.L.Error("Failed to apply database migrations", "error", err)
		os.Exit(1)
	}

	store := model.NewSQLStore(database.DB)
	periodCache := cache.New(config.Cfg.CacheExpiration, config.Cfg.CacheCleanupInterval)

	periodService := services.NewPeriodService(store, periodCache)
	movementService := services.NewMovementService(store, bankcsv.NewParser())
	checkpointService := services.NewCheckpointService(store)
	validationService := services.NewValidationService(store, processors.NewReconciliationProcessor())

	router := handlers.NewRouter(handlers.RouterOptions{
		Periods:        handlers.NewPeriodHandler(periodService),
		Movements:      handlers.NewMovementHandler(movementService, config.Cfg.MaxUploadSizeBytes),
		Checkpoints:    handlers.NewCheckpointHandler(checkpointService),
		Validations:    handlers.NewValidationHandler(validationService),
		AllowedOrigins: config.Cfg.AllowedOrigins,
		Limiter:        rate.NewLimiter(rate.Every(config.Cfg.RateLimitInterval), config.Cfg.RateLimitBurst),
	})

	serverAddr := ":" + config.Cfg.Port
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  config.Cfg.ReadTimeout,
		WriteTimeout: config.Cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	logger.L.Info("Server starting", "address", serverAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		stdlog.Fatalf("Failed to start server: %v", err)
	}
}
