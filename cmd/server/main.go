package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"absensi/internal/adapters/rest"
	"absensi/internal/application"
	"absensi/internal/config"
	"absensi/internal/infrastructure/database"
	"absensi/internal/infrastructure/i18n"
	"absensi/internal/infrastructure/metrics"
	"absensi/internal/infrastructure/token"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatalf("❌ Migration error: %v", err)
	}

	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Database initialization error: %v", err)
	}
	defer pool.Close()

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	participantRepo := database.NewParticipantRepository(pool)
	translator := i18n.NewTranslator(cfg.DefaultLocale)

	registryService := application.NewRegistryService(participantRepo, token.NewGenerator(), m)
	checkinService := application.NewCheckinService(participantRepo, m)

	handler := rest.NewHandler(registryService, checkinService, translator)
	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           rest.NewRouter(handler, cfg.APIKey, registry),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("✅ HTTP server listening on %s", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("❌ Server error: %v", err)
	}
	log.Println("✅ Server stopped.")
}
