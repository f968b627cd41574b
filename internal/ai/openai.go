package ai

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

const DefaultOpenAIModel = openai.GPT4oMini

// OpenAIProvider implements Generator for OpenAI-compatible chat completion APIs.
// TopK has no counterpart there and is not sent.
type OpenAIProvider struct {
	client     *openai.Client
	model      string
	generation GenerationConfig
}

// NewOpenAIProvider builds a provider; baseURL may be empty for the public API.
func NewOpenAIProvider(apiKey, baseURL, model string, gen GenerationConfig) *OpenAIProvider {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = DefaultOpenAIModel
	}
	return &OpenAIProvider{
		client:     openai.NewClientWithConfig(cfg),
		model:      model,
		generation: gen,
	}
}

// Generate sends prompt as a single user message.
func (p *OpenAIProvider) Generate(ctx context.Context, prompt string) (*Envelope, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: p.generation.Temperature,
		TopP:        p.generation.TopP,
		MaxTokens:   int(p.generation.MaxOutputTokens),
	})
	if err != nil {
		return nil, &TransportError{Provider: "openai", Op: "create chat completion", StatusCode: statusOf(err), Err: err}
	}

	env := &Envelope{}
	for _, choice := range resp.Choices {
		env.Candidates = append(env.Candidates, Candidate{Content: &Content{
			Role:  choice.Message.Role,
			Parts: []Part{{Text: choice.Message.Content}},
		}})
	}
	return env, nil
}

func statusOf(err error) int {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	return 0
}
