package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/axon/advisor"
	"github.com/rustyeddy/axon/logging"
)

var adviseCmd = &cobra.Command{
	Use:   "advise",
	Short: "Ask Flux for a read on your recent trades",
	Long: `Ask Flux, the AI coach, for a short psychological read on your ten
most recent trades. Requires GEMINI_API_KEY (environment or .env) or
advisor.api_key in the config.`,
	Args: cobra.NoArgs,
	RunE: runAdvise,
}

func init() {
	rootCmd.AddCommand(adviseCmd)
}

func runAdvise(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := logging.New(cfg.Logging.Level)

	key := cfg.Advisor.ResolveAPIKey()
	if key == "" {
		fmt.Println(advisor.Fallback)
		return nil
	}

	store, closeStore, err := openStore(cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	// Ctrl-C abandons the call rather than killing the process.
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := advisor.NewGeminiClient(ctx, key, advisor.WithModel(cfg.Advisor.Model))
	if err != nil {
		return fmt.Errorf("advisor: %w", err)
	}

	analysis, err := advisor.NewCoach(client, log).Analyze(ctx, store.Trades())
	if err != nil {
		return err
	}
	fmt.Println(analysis)
	return nil
}
