// Package cleanup implements the one-shot expired-token sweep command.
package cleanup

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"clubgate/internal/application/access/usecases"
	"clubgate/internal/infrastructure/config"
	"clubgate/internal/infrastructure/database"
	"clubgate/internal/infrastructure/repository"
	"clubgate/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Expire overdue access tokens",
		Long:  `Run one sweep that transitions overdue active tokens to expired. The server schedules this hourly; the command exists for manual runs and cron fallbacks.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	log := logger.NewLogger()
	tokenRepo := repository.NewAccessTokenRepository(database.Get(), log)
	uc := usecases.NewCleanupExpiredUseCase(tokenRepo, log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	count, err := uc.Execute(ctx)
	if err != nil {
		return fmt.Errorf("cleanup failed: %w", err)
	}

	logger.Info("cleanup completed", "expired", count)
	return nil
}
