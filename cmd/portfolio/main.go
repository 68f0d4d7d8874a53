// Package main provides the portfolio command line client. It drives
// the same view stores a graphical frontend would: list with search
// and pagination, detail display, create/edit forms with field-level
// validation, and confirmation-gated delete.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"portfolio/internal/config"
	"portfolio/internal/remote"
	"portfolio/internal/view"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Portfolio project manager",
		Long: `Portfolio manages project records against the portfolio backend.

The backend base URL is taken from PORTFOLIO_API_URL (default
` + config.DefaultAPIBaseURL + `) and is fixed for the process lifetime.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			_ = godotenv.Load()

			level := slog.LevelInfo
			if logLevel == "debug" {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (info, debug)")

	cmd.AddCommand(listCmd())
	cmd.AddCommand(showCmd())
	cmd.AddCommand(createCmd())
	cmd.AddCommand(editCmd())
	cmd.AddCommand(deleteCmd())

	return cmd
}

// collection builds the remote client from the resolved configuration.
func collection() view.Collection {
	cfg := config.Load()
	return remote.NewClient(cfg.APIBaseURL)
}

// printNavigator reports where a successful mutation would land.
type printNavigator struct{}

func (printNavigator) Navigate(r view.Route) {
	fmt.Printf("-> %s\n", r.Path)
}
