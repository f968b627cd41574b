package ai

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
)

func TestEnvelopeFromSDK(t *testing.T) {
	resp := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
		{Content: &genai.Content{Role: "model", Parts: []genai.Part{genai.Text(`{"a":1}`), genai.Text("more")}}},
		{},
	}}
	env := envelopeFromSDK(resp)
	text, ok := env.PrimaryText()
	assert.True(t, ok)
	assert.Equal(t, `{"a":1}`, text)
	assert.Len(t, env.Candidates, 2)
	assert.Nil(t, env.Candidates[1].Content)

	blob := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
		{Content: &genai.Content{Parts: []genai.Part{genai.Blob{MIMEType: "image/png"}}}},
	}}
	_, ok = envelopeFromSDK(blob).PrimaryText()
	assert.False(t, ok)

	_, ok = envelopeFromSDK(nil).PrimaryText()
	assert.False(t, ok)
}
