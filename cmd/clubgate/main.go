package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"clubgate/internal/interfaces/cli/cleanup"
	"clubgate/internal/interfaces/cli/migrate"
	"clubgate/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "clubgate",
		Short: "Access verification service for the club community channel",
		Long: `Clubgate verifies prospective members via university email or manual
committee approval, issues single-use join links, and guards the intake
against bots and duplicate submissions.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		cleanup.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
