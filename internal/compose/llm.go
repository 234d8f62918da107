// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compose

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// LLMGenerator implements Generator against any OpenAI-compatible chat
// endpoint via langchaingo.
type LLMGenerator struct {
	model llms.Model
}

// NewLLMGenerator builds a generator from the compose configuration. An
// empty API key is rejected up front so the failure surfaces at startup,
// not mid-conversation.
func NewLLMGenerator(cfg types.ComposeConfig) (*LLMGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("compose: missing API key (set compose.api_key or .secrets/openai-api-key)")
	}

	opts := []openai.Option{
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}

	model, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("compose: creating LLM client: %w", err)
	}
	return &LLMGenerator{model: model}, nil
}

// Generate produces the full answer text for prompt. Errors pass through
// untouched so the caller can distinguish a failed answer from an empty
// search.
func (g *LLMGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	text, err := llms.GenerateFromSinglePrompt(ctx, g.model, prompt)
	if err != nil {
		return "", fmt.Errorf("generating answer: %w", err)
	}
	if text == "" {
		return "", fmt.Errorf("generating answer: model returned empty text")
	}
	return text, nil
}
