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

	"medicare-companion/internal/adapters/auth/supabase"
	pg "medicare-companion/internal/adapters/storage/postgres"
	"medicare-companion/internal/middleware"
	"medicare-companion/internal/platform/config"
	"medicare-companion/internal/platform/logger"
	"medicare-companion/internal/ports/auth"
	"medicare-companion/internal/router"
)

// @title Medicare Companion API
// @version 1.0
// @description Seguimiento de adherencia a medicaciones para pacientes y caretakers.
// @BasePath /
func main() {
	log := logger.NewFromEnv()
	if s, ok := log.(interface{ Sync() error }); ok {
		defer func() { _ = s.Sync() }()
	}

	cfg, err := config.Load()
	if err != nil {
		log.Error("invalid config", map[string]any{"err": err})
		os.Exit(1)
	}

	var db *sql.DB
	if cfg.DBDSN != "" {
		db, err = pg.Open(cfg.DBDSN)
		if err != nil {
			log.Error("db open failed", map[string]any{"err": err})
			os.Exit(1)
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		err = pg.Migrate(ctx, db)
		cancel()
		if err != nil {
			log.Error("db migrate failed", map[string]any{"err": err})
			os.Exit(1)
		}
		log.Info("using postgres", nil)
	} else {
		log.Warn("DB_DSN not set, using in-memory storage", nil)
	}

	var verifier auth.AuthVerifier // nil = modo dev (X-Debug-User-ID)
	if cfg.AuthEnabled() {
		client, err := supabase.NewClient(supabase.Config{
			BaseURL: cfg.Auth.BaseURL,
			APIKey:  cfg.Auth.APIKey,
			Timeout: cfg.Auth.Timeout,
		})
		if err != nil {
			log.Error("auth client failed", map[string]any{"err": err})
			os.Exit(1)
		}
		verifier = supabase.NewVerifier(client)
	} else {
		log.Warn("auth disabled, accepting debug user header", map[string]any{"header": middleware.DebugUserHeader})
	}

	r := router.NewRouter(router.Options{
		AuthVerifier:   verifier,
		DB:             db,
		Logger:         log,
		Location:       cfg.Location,
		CORSOrigins:    cfg.CORSOrigins,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	})

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("starting server", map[string]any{"addr": addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", map[string]any{"err": err})
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", map[string]any{"err": err})
	}
	log.Info("server stopped", nil)
}
