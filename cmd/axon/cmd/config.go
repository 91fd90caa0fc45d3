package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/axon/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the axon configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default config file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "axon.yaml"
		if len(args) == 1 {
			path = args[0]
		}
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
		if err := config.Default().SaveToFile(path); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		fmt.Printf("account:  %s %.2f starting balance\n", cfg.Account.Currency, cfg.Account.StartingBalance)
		fmt.Printf("ledger:   %s backend", cfg.Ledger.Backend)
		if cfg.Ledger.Backend == "sqlite" {
			fmt.Printf(" (%s)\n", cfg.Ledger.DBPath)
		} else {
			fmt.Printf(" (%s)\n", cfg.Ledger.Path)
		}
		fmt.Printf("server:   %s:%d\n", cfg.Server.Host, cfg.Server.Port)
		fmt.Printf("advisor:  model %s, key configured: %v\n", cfg.Advisor.Model, cfg.Advisor.ResolveAPIKey() != "")
		fmt.Printf("logging:  %s\n", cfg.Logging.Level)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
