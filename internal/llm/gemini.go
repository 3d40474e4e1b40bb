package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-1.5-flash"

// GeminiClient calls the Gemini generateContent API.
type GeminiClient struct {
	model  string
	client *genai.Client
}

// NewGeminiClient builds a client against the public Gemini API.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	return newGeminiClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}, model)
}

func newGeminiClient(ctx context.Context, cfg *genai.ClientConfig, model string) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("api key required")
	}
	if model == "" {
		model = defaultGeminiModel
	}
	cli, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{
		model:  model,
		client: cli,
	}, nil
}

// Generate sends prompt as a single user turn, with no generation config.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c == nil || c.client == nil {
		return "", fmt.Errorf("nil gemini client")
	}
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini: empty response")
	}
	return text, nil
}
