package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/axon/analytics"
	"github.com/rustyeddy/axon/logging"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Export the equity curve as a PNG",
	Args:  cobra.NoArgs,
	RunE:  runChart,
}

var chartOut string

func init() {
	rootCmd.AddCommand(chartCmd)
	chartCmd.Flags().StringVarP(&chartOut, "out", "o", "equity.png", "output file")
}

func runChart(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, closeStore, err := openStore(cfg, logging.NewSilent())
	if err != nil {
		return err
	}
	defer closeStore()

	points := analytics.EquityCurve(store.Trades(), cfg.Account.StartingBalance)
	png, err := analytics.RenderEquityChart(points)
	if err != nil {
		return fmt.Errorf("render chart: %w", err)
	}

	if err := os.WriteFile(chartOut, png, 0644); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	fmt.Printf("wrote %s (%d points)\n", chartOut, len(points))
	return nil
}
