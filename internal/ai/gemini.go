package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider implements Generator through Google's Gemini SDK.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey, modelName string, gen GenerationConfig) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	if modelName == "" {
		modelName = DefaultGeminiModel
	}
	model := client.GenerativeModel(modelName)
	model.SetTemperature(gen.Temperature)
	model.SetTopK(gen.TopK)
	model.SetTopP(gen.TopP)
	model.SetMaxOutputTokens(gen.MaxOutputTokens)

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() error {
	return p.client.Close()
}

// Generate sends prompt and converts the SDK response into an Envelope.
// A blocked generation is content, not transport: it yields an empty envelope.
func (p *GeminiProvider) Generate(ctx context.Context, prompt string) (*Envelope, error) {
	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		var blocked *genai.BlockedError
		if errors.As(err, &blocked) {
			return &Envelope{}, nil
		}
		return nil, &TransportError{Provider: "gemini-sdk", Op: "generate content", Err: err}
	}
	return envelopeFromSDK(resp), nil
}

func envelopeFromSDK(resp *genai.GenerateContentResponse) *Envelope {
	env := &Envelope{}
	if resp == nil {
		return env
	}
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			env.Candidates = append(env.Candidates, Candidate{})
			continue
		}
		content := &Content{Role: cand.Content.Role}
		for _, part := range cand.Content.Parts {
			// Non-text parts keep their position so parts[0] stays parts[0].
			txt, _ := part.(genai.Text)
			content.Parts = append(content.Parts, Part{Text: string(txt)})
		}
		env.Candidates = append(env.Candidates, Candidate{Content: content})
	}
	return env
}
