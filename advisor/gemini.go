package advisor

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const (
	// DefaultModel is the Gemini model Flux runs on.
	DefaultModel = "gemini-3-flash-preview"

	systemInstruction = "You are Flux, an elite trading coach. Extremely short, direct feedback only."
)

// GeminiClient implements Generator on the Google Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// GeminiOption configures the client.
type GeminiOption func(*GeminiClient)

// WithModel overrides the default model.
func WithModel(model string) GeminiOption {
	return func(c *GeminiClient) {
		if model != "" {
			c.model = model
		}
	}
}

// NewGeminiClient creates a Gemini-backed generator.
func NewGeminiClient(ctx context.Context, apiKey string, opts ...GeminiOption) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	c := &GeminiClient{client: client, model: DefaultModel}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// GenerateContent sends the prompt with the Flux system instruction and
// returns the generated text. A single attempt, no retry.
func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	return extractText(result)
}

func extractText(result *genai.GenerateContentResponse) (string, error) {
	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	text := ""
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	if text == "" {
		return "", fmt.Errorf("no text in response")
	}
	return text, nil
}
