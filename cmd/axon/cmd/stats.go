package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/axon/analytics"
	"github.com/rustyeddy/axon/format"
	"github.com/rustyeddy/axon/logging"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show performance analytics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, closeStore, err := openStore(cfg, logging.NewSilent())
	if err != nil {
		return err
	}
	defer closeStore()

	trades := store.Trades()
	s := analytics.Summarize(trades, time.Now())

	fmt.Printf("net P/L:       %s\n", format.Signed(s.NetPL))
	fmt.Printf("trades:        %d (%d wins / %d losses)\n", s.TotalTrades, s.Wins, s.Losses)
	fmt.Printf("win rate:      %.1f%%\n", s.WinRate)
	fmt.Printf("weekly P/L:    %s over %d trades\n", format.Signed(s.WeeklyPL), s.WeeklyTrades)
	fmt.Printf("weekly rate:   %.0f%%\n", s.WeeklyWinRate)

	curve := analytics.EquityCurve(trades, cfg.Account.StartingBalance)
	fmt.Printf("equity:        %s (from %s)\n",
		format.Currency(curve[len(curve)-1].Equity),
		format.Currency(cfg.Account.StartingBalance))

	if store.Degraded() {
		fmt.Println("warning: persistence degraded, changes are not being saved")
	}
	return nil
}
