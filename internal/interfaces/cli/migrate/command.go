// Package migrate implements the database migration CLI commands.
package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"clubgate/internal/infrastructure/config"
	"clubgate/internal/infrastructure/database"
	"clubgate/internal/infrastructure/migration"
	"clubgate/internal/shared/logger"
)

var (
	env   string
	name  string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Run, roll back and inspect database migrations, or create new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, err := setup()
			if err != nil {
				return err
			}
			defer database.Close()
			return strategy.Up(database.Get())
		},
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, err := setup()
			if err != nil {
				return err
			}
			defer database.Close()
			return strategy.Down(database.Get(), steps)
		},
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, err := setup()
			if err != nil {
				return err
			}
			defer database.Close()
			return strategy.Status(database.Get())
		},
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			scriptsPath, err := scriptsDir()
			if err != nil {
				return err
			}
			return migration.NewGooseStrategy(scriptsPath).Create(name)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	cmd.MarkFlagRequired("name")

	return cmd
}

func setup() (*migration.GooseStrategy, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	scriptsPath, err := scriptsDir()
	if err != nil {
		return nil, err
	}

	return migration.NewGooseStrategy(scriptsPath), nil
}

func scriptsDir() (string, error) {
	scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts")
	if err != nil {
		return "", fmt.Errorf("failed to resolve scripts path: %w", err)
	}
	return scriptsPath, nil
}
