package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/axon/config"
	"github.com/rustyeddy/axon/ledger"
	"github.com/rustyeddy/axon/logging"
)

var rootCmd = &cobra.Command{
	Use:   "axon",
	Short: "A personal trading journal and risk terminal",
	Long: `Axon is a personal trading journal and risk-management terminal.

It provides tools for:
  - Logging trades on a calendar with an emotional tag
  - Aggregated performance analytics and equity curves
  - Risk-based position sizing
  - A built-in risk-management rule library
  - Flux, an AI coach reviewing your recent trades`,
}

var cfgFile string

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(func() {
		// Optional; holds GEMINI_API_KEY on dev machines.
		_ = godotenv.Load()
	})

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./axon.yaml)")
}

// loadConfig resolves the effective configuration: the --config flag,
// then ./axon.yaml if present, then built-in defaults.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadFromFile(cfgFile)
	}
	if _, err := os.Stat("axon.yaml"); err == nil {
		return config.LoadFromFile("axon.yaml")
	}
	return config.Default(), nil
}

// openStore builds the configured persistence port, loads the ledger
// and returns a close function for backends that need one.
func openStore(cfg *config.Config, log *logging.Logger) (*ledger.Store, func(), error) {
	var (
		port    ledger.Port
		closeFn = func() {}
	)

	switch cfg.Ledger.Backend {
	case "sqlite":
		db, err := ledger.NewSQLiteStore(cfg.Ledger.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open ledger: %w", err)
		}
		port = db
		closeFn = func() { db.Close() }
	default:
		port = ledger.NewFileStore(cfg.Ledger.Path)
	}

	store := ledger.NewStore(port, log)
	if err := store.Load(); err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("load ledger: %w", err)
	}
	return store, closeFn, nil
}
