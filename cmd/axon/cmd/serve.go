package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/axon/advisor"
	"github.com/rustyeddy/axon/logging"
	"github.com/rustyeddy/axon/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the journal REST API server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := logging.New(cfg.Logging.Level)

	store, closeStore, err := openStore(cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var coach *advisor.Coach
	if key := cfg.Advisor.ResolveAPIKey(); key != "" {
		client, err := advisor.NewGeminiClient(ctx, key, advisor.WithModel(cfg.Advisor.Model))
		if err != nil {
			log.Warn().Err(err).Msg("advisor unavailable")
		} else {
			coach = advisor.NewCoach(client, log)
		}
	} else {
		log.Info().Msg("no advisor API key, Flux runs offline")
	}

	srv := server.New(cfg, store, coach, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}
