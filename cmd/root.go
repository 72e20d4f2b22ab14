package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/skyward-analytics/flightrisk/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "flightrisk",
	Short: "Flight operations risk assessment",
	Long:  "Ingests flight-operations CSV/XLSX exports with messy headers, resolves them to canonical fields, and derives per-flight risk levels and delay projections.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
