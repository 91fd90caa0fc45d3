// Package advisor implements Flux, the AI trading coach: a thin wrapper
// over a text-generation collaborator that degrades to a fixed fallback
// line when the collaborator is unavailable.
package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rustyeddy/axon/ledger"
	"github.com/rustyeddy/axon/logging"
)

const (
	// Fallback is the literal text shown when generation fails for any
	// reason. Never propagated as an error.
	Fallback = "Flux offline."

	// MinTrades is the smallest sample worth analyzing.
	MinTrades = 3

	// SampleSize caps how many recent trades are shared with the
	// collaborator.
	SampleSize = 10
)

// ErrTooFewTrades is returned before any external call when the ledger
// holds fewer than MinTrades trades.
var ErrTooFewTrades = fmt.Errorf("need at least %d trades for an assessment", MinTrades)

// Generator produces free text from a prompt. Implemented by
// GeminiClient; tests substitute fakes.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Sample is the reduced trade view shared with the collaborator: never
// notes or ids, only symbol, outcome and emotional tag.
type Sample struct {
	Symbol  string         `json:"symbol"`
	Result  float64        `json:"result"`
	Emotion ledger.Emotion `json:"emotion"`
}

// Coach analyzes recent performance through a Generator.
type Coach struct {
	gen Generator
	log *logging.Logger
}

// NewCoach creates a coach. A nil logger is replaced with a silent one.
func NewCoach(gen Generator, log *logging.Logger) *Coach {
	if log == nil {
		log = logging.NewSilent()
	}
	return &Coach{gen: gen, log: log}
}

// Analyze samples the most recent trades and asks the collaborator for
// a short mindset summary and action item. Generation failure maps to
// Fallback; only an undersized ledger is reported as an error. The
// context cancels the call when the caller loses interest, so a stale
// result is never acted on.
func (c *Coach) Analyze(ctx context.Context, trades []ledger.Trade) (string, error) {
	if len(trades) < MinTrades {
		return "", ErrTooFewTrades
	}

	prompt, err := buildPrompt(BuildSample(trades))
	if err != nil {
		c.log.Warn().Err(err).Msg("advisor prompt build failed")
		return Fallback, nil
	}

	text, err := c.gen.GenerateContent(ctx, prompt)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return "", err
		}
		c.log.Warn().Err(err).Msg("advisor generation failed")
		return Fallback, nil
	}
	if text == "" {
		return "Analysis unavailable.", nil
	}
	return text, nil
}

// BuildSample reduces trades to the SampleSize most recent entries in
// list order.
func BuildSample(trades []ledger.Trade) []Sample {
	start := 0
	if len(trades) > SampleSize {
		start = len(trades) - SampleSize
	}

	out := make([]Sample, 0, len(trades)-start)
	for _, t := range trades[start:] {
		out = append(out, Sample{Symbol: t.Symbol, Result: t.Result, Emotion: t.Emotion})
	}
	return out
}

func buildPrompt(sample []Sample) (string, error) {
	data, err := json.Marshal(sample)
	if err != nil {
		return "", fmt.Errorf("marshal trade sample: %w", err)
	}

	return fmt.Sprintf(`Analyze my recent trading data and provide short, punchy psychological feedback.
Recent Trades: %s

Format your response with:
- Mindset summary
- Action Item.
Keep it high-energy, direct, and under 25 words.`, data), nil
}
