package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/axon/analytics"
	"github.com/rustyeddy/axon/format"
	"github.com/rustyeddy/axon/ledger"
	"github.com/rustyeddy/axon/logging"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Log and query trades",
	Long: `Log and query trade records.

Subcommands:
  add    - Log a trade
  list   - List all trades, newest first
  day    - List trades for a specific day
  today  - List trades for today
  rm     - Delete a trade by id

Examples:
  axon journal add --symbol XAUUSD --direction BUY --result 1002 --emotion confident
  axon journal day 2024-04-10
  axon journal rm 01HV3Q...`,
}

var journalAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a trade",
	Args:  cobra.NoArgs,
	RunE:  runJournalAdd,
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all trades, newest first",
	Args:  cobra.NoArgs,
	RunE:  runJournalList,
}

var journalDayCmd = &cobra.Command{
	Use:   "day <YYYY-MM-DD>",
	Short: "List trades for a specific day",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalDay,
}

var journalTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "List trades for today",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listDay(time.Now().Format("2006-01-02"))
	},
}

var journalRmCmd = &cobra.Command{
	Use:   "rm <trade-id>",
	Short: "Delete a trade by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalRm,
}

var (
	addSymbol    string
	addDirection string
	addResult    float64
	addEmotion   string
	addNotes     string
	addDate      string
)

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalAddCmd)
	journalCmd.AddCommand(journalListCmd)
	journalCmd.AddCommand(journalDayCmd)
	journalCmd.AddCommand(journalTodayCmd)
	journalCmd.AddCommand(journalRmCmd)

	journalAddCmd.Flags().StringVarP(&addSymbol, "symbol", "s", "", "instrument symbol (required)")
	journalAddCmd.Flags().StringVarP(&addDirection, "direction", "d", "BUY", "BUY or SELL")
	journalAddCmd.Flags().Float64VarP(&addResult, "result", "r", 0, "profit or loss in account currency")
	journalAddCmd.Flags().StringVarP(&addEmotion, "emotion", "e", "calm", "calm, confident, fearful, overconfident or revenge")
	journalAddCmd.Flags().StringVarP(&addNotes, "notes", "n", "", "free-text notes")
	journalAddCmd.Flags().StringVar(&addDate, "date", "", "trade date YYYY-MM-DD (default today)")
	journalAddCmd.MarkFlagRequired("symbol")
}

func runJournalAdd(cmd *cobra.Command, args []string) error {
	direction, err := ledger.ParseDirection(addDirection)
	if err != nil {
		return err
	}
	emotion, err := ledger.ParseEmotion(addEmotion)
	if err != nil {
		return err
	}

	date := time.Now()
	if addDate != "" {
		date, err = time.ParseInLocation("2006-01-02", addDate, time.Local)
		if err != nil {
			return fmt.Errorf("date: %w", err)
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, closeStore, err := openStore(cfg, logging.New(cfg.Logging.Level))
	if err != nil {
		return err
	}
	defer closeStore()

	added := store.Add(ledger.Trade{
		Date:      date,
		Symbol:    addSymbol,
		Direction: direction,
		Result:    addResult,
		Emotion:   emotion,
		Notes:     addNotes,
	})

	fmt.Printf("logged %s %s %s %s\n", added.ID, added.Symbol, added.Direction, format.Signed(added.Result))
	return nil
}

func runJournalList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, closeStore, err := openStore(cfg, logging.NewSilent())
	if err != nil {
		return err
	}
	defer closeStore()

	printTrades(analytics.SortedByDateDescending(store.Trades()))
	return nil
}

func runJournalDay(cmd *cobra.Command, args []string) error {
	return listDay(args[0])
}

func listDay(day string) error {
	ref, err := time.ParseInLocation("2006-01-02", day, time.Local)
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}

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
	var matched []ledger.Trade
	for _, t := range trades {
		if analytics.SameDay(t.Date, ref) {
			matched = append(matched, t)
		}
	}

	printTrades(matched)
	fmt.Printf("daily P/L: %s\n", format.Signed(analytics.DailyPL(trades, ref)))
	return nil
}

func runJournalRm(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, closeStore, err := openStore(cfg, logging.New(cfg.Logging.Level))
	if err != nil {
		return err
	}
	defer closeStore()

	if err := store.Remove(args[0]); err != nil {
		return fmt.Errorf("remove trade: %w", err)
	}
	fmt.Printf("removed %s\n", args[0])
	return nil
}

func printTrades(trades []ledger.Trade) {
	if len(trades) == 0 {
		fmt.Println("no records")
		return
	}
	for _, t := range trades {
		fmt.Printf("%s  %-26s  %-7s %-4s %10s  %-13s %s\n",
			t.Date.Format("2006-01-02"),
			t.ID,
			t.Symbol,
			t.Direction,
			format.Signed(t.Result),
			t.Emotion.Word(),
			t.Notes,
		)
	}
}
