package main

import (
	"log"
	"net/http"
	"time"

	pg "pet-weight-tracker/internal/adapters/storage/postgres"
	"pet-weight-tracker/internal/platform/config"
	"pet-weight-tracker/internal/platform/logger"
	"pet-weight-tracker/internal/router"
)

// @title Pet Weight Tracker API
// @version 1.0
// @description API para registrar mascotas y su historial de peso.
// @BasePath /
func main() {
	cfg := config.Load()

	appLog := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	opts := router.Options{Log: appLog}

	if cfg.DBDSN != "" {
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			log.Fatalf("db open: %v", err)
		}
		defer db.Close()
		opts.DB = db
	} else {
		appLog.Warn("DB_DSN not set, using in-memory repos", nil)
	}

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	appLog.Info("starting server", map[string]any{"addr": cfg.Addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
