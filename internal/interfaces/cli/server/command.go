// Package server implements the CLI command that runs the HTTP server.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"clubgate/internal/application/access/helpers"
	"clubgate/internal/application/access/usecases"
	"clubgate/internal/infrastructure/challenge"
	"clubgate/internal/infrastructure/config"
	"clubgate/internal/infrastructure/database"
	"clubgate/internal/infrastructure/email"
	"clubgate/internal/infrastructure/identity"
	"clubgate/internal/infrastructure/migration"
	"clubgate/internal/infrastructure/ratelimit"
	"clubgate/internal/infrastructure/repository"
	"clubgate/internal/infrastructure/scheduler"
	"clubgate/internal/infrastructure/token"
	httpRouter "clubgate/internal/interfaces/http"
	"clubgate/internal/interfaces/http/handlers"
	"clubgate/internal/shared/goroutine"
	"clubgate/internal/shared/logger"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the access verification HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run schema auto-migration on startup (development only)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("starting server", "environment", env)

	gin.SetMode(mapEnvToGinMode(env))
	gin.DefaultWriter = io.Discard

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer database.Close()

	if err := handleMigrations(); err != nil {
		logger.Fatal("migration handling failed", "error", err)
	}

	log := logger.NewLogger()
	db := database.Get()

	tokenRepo := repository.NewAccessTokenRepository(db, log)
	accessLogRepo := repository.NewAccessLogRepository(db)
	requestRepo := repository.NewMembershipRequestRepository(db)

	limiter, err := buildRateLimiter(cfg, log)
	if err != nil {
		logger.Fatal("failed to initialize rate limiter", "error", err)
	}

	hasher, err := identity.NewHasher(cfg.Verification.IdentitySalt)
	if err != nil {
		logger.Fatal("failed to initialize identity hasher", "error", err)
	}

	generator := token.NewGenerator()
	challenger := challenge.NewTurnstileVerifier(
		cfg.Verification.TurnstileSecret,
		cfg.Verification.TurnstileURL,
		log,
	)
	notifier := email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		BaseURL:     cfg.Server.BaseURL,
	})
	duplicates := helpers.NewDuplicateChecker(
		accessLogRepo, requestRepo,
		cfg.Verification.DuplicateWindowDays, log,
	)

	tokenTTL := time.Duration(cfg.Verification.TokenTTLHours) * time.Hour
	ipPolicy := ratelimit.Policy{
		Limit:  cfg.Verification.IPLimitAttempts,
		Window: time.Duration(cfg.Verification.IPLimitWindowMinutes) * time.Minute,
	}
	pairPolicy := ratelimit.Policy{
		Limit:  cfg.Verification.PairLimitAttempts,
		Window: time.Duration(cfg.Verification.PairLimitWindowMinutes) * time.Minute,
	}

	requestAccessUC := usecases.NewRequestAccessUseCase(
		tokenRepo, generator, limiter, challenger, duplicates, notifier, hasher,
		usecases.RequestAccessConfig{
			EmailDomain: cfg.Verification.EmailDomain,
			TokenTTL:    tokenTTL,
			IPPolicy:    ipPolicy,
			PairPolicy:  pairPolicy,
		},
		log,
	)
	requestManualUC := usecases.NewRequestManualAccessUseCase(
		requestRepo, limiter, challenger, duplicates,
		ipPolicy, cfg.Verification.DuplicateWindowDays, log,
	)
	approveUC := usecases.NewApproveManualRequestUseCase(
		requestRepo, tokenRepo, generator, notifier, tokenTTL, log,
	)
	rejectUC := usecases.NewRejectManualRequestUseCase(requestRepo, log)
	redeemUC := usecases.NewRedeemTokenUseCase(
		tokenRepo, accessLogRepo, cfg.Verification.CommunityURL, log,
	)
	cleanupUC := usecases.NewCleanupExpiredUseCase(tokenRepo, log)

	accessHandler := handlers.NewAccessHandler(requestAccessUC, requestManualUC, redeemUC, log)
	committeeHandler := handlers.NewCommitteeHandler(approveUC, rejectUC, log)

	router := httpRouter.NewRouter(cfg, accessHandler, committeeHandler, log)
	router.SetupRoutes()

	schedulerManager, err := scheduler.NewManager(log)
	if err != nil {
		logger.Fatal("failed to create scheduler", "error", err)
	}
	if err := schedulerManager.RegisterTokenCleanupJob(cleanupUC); err != nil {
		logger.Fatal("failed to register cleanup job", "error", err)
	}
	schedulerManager.Start()
	defer func() {
		if err := schedulerManager.Stop(); err != nil {
			logger.Error("failed to stop scheduler", "error", err)
		}
	}()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	goroutine.SafeGo(log, "http-server", func() {
		logger.Info("server listening", "address", cfg.Server.GetAddr())

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

// buildRateLimiter prefers Redis so fixed windows survive restarts and
// span instances. An empty Redis host selects the in-process fallback,
// suitable only for single-instance deployments.
func buildRateLimiter(cfg *config.Config, log logger.Interface) (ratelimit.RateLimiter, error) {
	if cfg.Redis.Host == "" {
		log.Warnw("redis not configured, using in-process rate limiter")
		return ratelimit.NewMemoryRateLimiter(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Infow("redis rate limiter initialized", "addr", cfg.Redis.GetAddr())
	return ratelimit.NewRedisRateLimiter(client), nil
}

func handleMigrations() error {
	if autoMigrate {
		if env == "production" {
			logger.Warn("auto-migration is enabled in production, this is not recommended")
		}
		return migration.AutoMigrate(database.Get())
	}

	scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts")
	if err != nil {
		logger.Warn("failed to resolve migration scripts path", "error", err)
		return nil
	}

	strategy := migration.NewGooseStrategy(scriptsPath)
	version, err := strategy.Version(database.Get())
	if err != nil {
		logger.Warn("failed to check migration status", "error", err)
		return nil
	}

	logger.Info("current migration version", "version", version)
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return gin.ReleaseMode
	case "test", "testing":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
