package suggestion

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoObject means the text holds no brace-delimited span.
	ErrNoObject = errors.New("suggestion: no JSON object in response")
	// ErrIncomplete means the object parsed but lacks schema fields.
	ErrIncomplete = errors.New("suggestion: document missing required fields")
)

// Parse extracts a Document from model output. It strips a leading code fence,
// takes the span from the first "{" to the last "}", decodes it and requires every
// schema field to be present.
func Parse(text string) (Document, error) {
	body := stripFence(text)

	start := strings.Index(body, "{")
	end := strings.LastIndex(body, "}")
	if start < 0 || end < start {
		return Document{}, ErrNoObject
	}

	var doc Document
	if err := json.Unmarshal([]byte(body[start:end+1]), &doc); err != nil {
		return Document{}, fmt.Errorf("suggestion: decode document: %w", err)
	}
	if err := validate.Struct(doc); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrIncomplete, err)
	}
	return doc, nil
}

// stripFence removes a ```json or ``` wrapper when the text starts with one.
func stripFence(text string) string {
	s := strings.TrimSpace(text)
	switch {
	case strings.HasPrefix(s, "```json"):
		s = strings.TrimPrefix(s, "```json")
	case strings.HasPrefix(s, "```"):
		s = strings.TrimPrefix(s, "```")
	default:
		return s
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
