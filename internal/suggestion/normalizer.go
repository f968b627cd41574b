package suggestion

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"payana/internal/ai"
)

// Normalizer turns trip constraints into a schema-conformant suggestion document.
// It keeps no state between calls and is safe for concurrent use.
type Normalizer struct {
	gen    ai.Generator
	logger *zap.Logger
}

// NewNormalizer wires a Normalizer to a generator. A nil logger disables logging.
func NewNormalizer(gen ai.Generator, logger *zap.Logger) *Normalizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Normalizer{gen: gen, logger: logger}
}

// Synthesize renders the prompt, makes one generator call and normalizes the answer.
// The only error is a transport failure from the generator; anything wrong with the
// returned content yields the fallback document tagged SourceFallback.
func (n *Normalizer) Synthesize(ctx context.Context, c Constraints) (Result, error) {
	prompt := BuildPrompt(c)

	env, err := n.gen.Generate(ctx, prompt)
	if err != nil {
		return Result{}, fmt.Errorf("synthesize suggestion: %w", err)
	}

	text, ok := env.PrimaryText()
	if !ok {
		var raw int
		if env != nil {
			raw = len(env.Raw)
		}
		n.logger.Warn("suggestion fallback", zap.String("reason", "envelope has no text"), zap.Int("raw_bytes", raw))
		return Result{Source: SourceFallback, Document: Fallback()}, nil
	}

	doc, err := Parse(text)
	if err != nil {
		n.logger.Warn("suggestion fallback", zap.String("reason", "unparsable content"), zap.Error(err), zap.Int("text_len", len(text)))
		return Result{Source: SourceFallback, Document: Fallback()}, nil
	}

	return Result{Source: SourceGenuine, Document: doc}, nil
}
