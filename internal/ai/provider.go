package ai

import (
	"context"
	"fmt"

	"payana/internal/config"
)

// NewFromConfig selects the Generator named by cfg.Provider. The returned close
// function releases provider resources and is never nil.
func NewFromConfig(ctx context.Context, cfg config.AIConfig) (Generator, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Provider {
	case config.ProviderGemini:
		return NewRESTClient(RESTConfig{
			APIKey:  cfg.GeminiKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		}), noop, nil
	case config.ProviderGeminiSDK:
		p, err := NewGeminiProvider(ctx, cfg.GeminiKey, cfg.Model, DefaultGenerationConfig)
		if err != nil {
			return nil, noop, err
		}
		return p, p.Close, nil
	case config.ProviderOpenAI:
		return NewOpenAIProvider(cfg.OpenAIKey, cfg.BaseURL, cfg.Model, DefaultGenerationConfig), noop, nil
	default:
		return nil, noop, fmt.Errorf("ai: unknown provider %q", cfg.Provider)
	}
}
