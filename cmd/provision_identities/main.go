// Command provision_identities gives every employee that has an e-mail address
// a login identity. It is safe to run repeatedly.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/services"
	"github.com/SscSPs/backoffice_app/internal/platform/config"
	"github.com/SscSPs/backoffice_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/backoffice_app/pkg/database"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.MigrationsPath != "" {
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			logger.Error("Failed to run migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)

	repos := pgsql.NewRepositoryProvider(dbPool)
	provisioner := services.NewIdentityProvisioningService(repos.EmployeeRepo, repos.IdentityRepo, cfg.ProvisionDefaultPassword)

	report, err := provisioner.ProvisionEmployeeIdentities(ctx)
	if err != nil {
		logger.Error("Identity provisioning failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Identity provisioning finished",
		slog.Int("examined", report.Examined),
		slog.Int("created", report.Created),
		slog.Int("linked", report.Linked),
		slog.Int("skipped", report.Skipped),
	)
}
