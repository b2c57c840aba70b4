// Command api serves the activity sign-up HTTP API.
//
// @title Mergington High School Activities API
// @version 1.0
// @description List extracurricular activities and sign students up or unregister them by email.
// @BasePath /
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"activitysignup/config"
	"activitysignup/internal/adapters/email"
	deliveryhttp "activitysignup/internal/delivery/http"
	"activitysignup/internal/delivery/http/controllers"
	"activitysignup/internal/delivery/http/static"
	"activitysignup/internal/domain"
	"activitysignup/internal/repository/memory"
	"activitysignup/internal/repository/postgres"
	"activitysignup/internal/services"
	"activitysignup/internal/telemetry"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := config.NewLogger()
	if err := run(logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog, err := loadCatalog(ctx, logger, cfg)
	if err != nil {
		return err
	}
	repo, err := memory.NewActivityRepository(catalog)
	if err != nil {
		return fmt.Errorf("build registry: %w", err)
	}
	prometheus.MustRegister(telemetry.NewRosterCollector(repo))

	mailer, err := email.NewMailer(logger, email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AWSAccessKeyID,
			SecretAccessKey:    cfg.Email.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
		},
	})
	if err != nil {
		return fmt.Errorf("create mailer: %w", err)
	}
	notifications := services.NewNotificationService(logger, mailer, email.NewTemplateRenderer())
	activityService := services.NewActivityService(logger, repo, notifications)

	assets, err := static.Assets(cfg.StaticDir)
	if err != nil {
		return fmt.Errorf("static assets: %w", err)
	}

	mux := deliveryhttp.NewRouter(controllers.NewActivityController(logger, activityService), assets, nil)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           deliveryhttp.WithMiddleware(logger, cfg.AllowedOrigins, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.Environment, "activities", len(catalog))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// loadCatalog reads the startup activities from the catalog database when one is
// configured, otherwise returns the built-in catalog.
func loadCatalog(ctx context.Context, logger *slog.Logger, cfg *config.Config) (domain.Catalog, error) {
	if cfg.DBUrl == "" {
		logger.Info("using built-in activity catalog")
		return memory.DefaultCatalog(), nil
	}

	db, err := postgres.Open(ctx, cfg.DBUrl)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	catalog, err := postgres.NewActivityCatalogRepository(db).LoadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	logger.Info("loaded activity catalog from database", "activities", len(catalog))
	return catalog, nil
}
