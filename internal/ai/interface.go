package ai

import (
	"context"
)

// Generator sends a single prompt to a text-generation backend.
// Implementations make exactly one outbound exchange per call and never retry.
// A returned error is always a *TransportError; content problems surface as an
// envelope without usable text instead.
type Generator interface {
	Generate(ctx context.Context, prompt string) (*Envelope, error)
}

// GenerationConfig carries the sampling parameters sent with every request.
type GenerationConfig struct {
	Temperature     float32 `json:"temperature"`
	TopK            int32   `json:"topK"`
	TopP            float32 `json:"topP"`
	MaxOutputTokens int32   `json:"maxOutputTokens"`
}

// DefaultGenerationConfig favours varied but bounded travel suggestions.
var DefaultGenerationConfig = GenerationConfig{
	Temperature:     0.7,
	TopK:            40,
	TopP:            0.95,
	MaxOutputTokens: 4096,
}
