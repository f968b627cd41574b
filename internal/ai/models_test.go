package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvelope_PrimaryText(t *testing.T) {
	tests := []struct {
		name   string
		env    *Envelope
		want   string
		wantOK bool
	}{
		{name: "nil envelope", env: nil},
		{name: "no candidates", env: &Envelope{}},
		{name: "candidate without content", env: &Envelope{Candidates: []Candidate{{}}}},
		{name: "content without parts", env: &Envelope{Candidates: []Candidate{{Content: &Content{}}}}},
		{name: "empty text", env: TextEnvelope("")},
		{name: "first part of first candidate", env: &Envelope{Candidates: []Candidate{
			{Content: &Content{Parts: []Part{{Text: "a"}, {Text: "b"}}}},
			{Content: &Content{Parts: []Part{{Text: "c"}}}},
		}}, want: "a", wantOK: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.env.PrimaryText()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
