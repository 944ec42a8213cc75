package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vax-tracker/internal/adapters/storage/memory"
	pg "vax-tracker/internal/adapters/storage/postgres"
	"vax-tracker/internal/config"
	"vax-tracker/internal/platform/logger"
	"vax-tracker/internal/router"
)

// @title VaxTracker API
// @version 1.0
// @description Registro de vacunación antirrábica de mascotas.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Options{}).Error("load config", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.App,
	})

	now, err := cfg.Clock()
	if err != nil {
		log.Error("invalid clock", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	var db *sql.DB
	if cfg.DB.DSN != "" {
		db, err = openDB(cfg, now)
		if err != nil {
			log.Error("postgres unavailable", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		defer db.Close()
		log.Info("using postgres storage", nil)
	} else {
		log.Info("using in-memory storage with demo data", nil)
	}

	r := router.NewRouter(router.Options{
		Logger:     log,
		DB:         db,
		Now:        now,
		LoginDelay: cfg.Auth.LoginDelay,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.Addr()})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown", map[string]any{"error": err.Error()})
	}
	log.Info("server stopped", nil)
}

// openDB conecta, migra y carga los datos demo si la base está vacía.
func openDB(cfg config.Config, now func() time.Time) (*sql.DB, error) {
	db, err := pg.Open(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if cfg.DB.Migrate {
		if err := pg.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		if _, err := pg.SeedIfEmpty(ctx, db, memory.SeedPets(), memory.SeedDailyRecords(now())); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	return db, nil
}
