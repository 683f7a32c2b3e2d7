package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	portsrepo "github.com/mkwapatira/minibank/internal/core/ports/repositories"
	portssvc "github.com/mkwapatira/minibank/internal/core/ports/services"
	"github.com/mkwapatira/minibank/internal/core/services"
	"github.com/mkwapatira/minibank/internal/handlers"
	"github.com/mkwapatira/minibank/internal/middleware"
	"github.com/mkwapatira/minibank/internal/platform/config"
	"github.com/mkwapatira/minibank/internal/platform/mail"
	"github.com/mkwapatira/minibank/internal/platform/report"
	"github.com/mkwapatira/minibank/internal/repositories/database/pgsql"
	"github.com/mkwapatira/minibank/pkg/database"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)

	if err := runMigrations(cfg, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)

	var mailer portssvc.ReportMailer
	if cfg.MailConfigured() {
		mailer = mail.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.ReportSender, cfg.ReportRecipient)
	} else {
		logger.Info("Report email delivery disabled: SMTP not configured")
	}

	authCfg := services.AuthConfig{
		JWTSecret:          cfg.JWTSecret,
		JWTExpiry:          cfg.JWTExpiryDuration,
		JWTIssuer:          cfg.JWTIssuer,
		RefreshTokenExpiry: cfg.RefreshTokenExpiryDuration,
	}
	container := services.NewServiceContainer(repos, authCfg, report.NewPDFRenderer("Minibank"), mailer)

	purgeCtx, cancelPurge := context.WithCancel(context.Background())
	defer cancelPurge()
	go purgeRevokedTokens(purgeCtx, repos.RevocationRepo, cfg.RevocationPurgeInterval, logger)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())
	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	loginLimiter, err := newLoginLimiter(cfg.LoginRateLimit)
	if err != nil {
		logger.Error("Failed to configure login rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterHandlers(r, container, cfg.JWTSecret, repos.RevocationRepo, loginLimiter)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newLoginLimiter(formatted string) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, err
	}
	return limiter.New(memorystore.NewStore(), rate), nil
}

// runMigrations applies all pending schema migrations using a temporary
// database/sql connection over the pgx stdlib driver.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance(cfg.MigrationsPath, "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply")
	} else {
		logger.Info("Database migrations applied")
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	return dbErr
}

// purgeRevokedTokens periodically removes revocation rows whose tokens have
// expired on their own.
func purgeRevokedTokens(ctx context.Context, repo portsrepo.TokenRevocationRepository, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := repo.PurgeExpired(ctx, time.Now().UTC())
			if err != nil {
				logger.Error("Failed to purge expired revocations", slog.String("error", err.Error()))
				continue
			}
			if removed > 0 {
				logger.Info("Purged expired token revocations", slog.Int64("count", removed))
			}
		}
	}
}
