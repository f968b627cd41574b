package ai

// Envelope mirrors the generateContent response body. The OpenAI and SDK transports
// convert their responses into the same shape.
type Envelope struct {
	Candidates []Candidate `json:"candidates"`

	// Raw is the undecoded body when the transport had one.
	Raw []byte `json:"-"`
}

// Candidate is one generation.
type Candidate struct {
	Content *Content `json:"content,omitempty"`
}

// Content holds the parts of a candidate.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// Part is a single text fragment.
type Part struct {
	Text string `json:"text"`
}

// PrimaryText returns the text of the first part of the first candidate.
// ok is false when any level of the envelope is missing or the text is blank.
func (e *Envelope) PrimaryText() (text string, ok bool) {
	if e == nil || len(e.Candidates) == 0 {
		return "", false
	}
	c := e.Candidates[0].Content
	if c == nil || len(c.Parts) == 0 {
		return "", false
	}
	text = c.Parts[0].Text
	if text == "" {
		return "", false
	}
	return text, true
}

// TextEnvelope wraps text in a single-candidate envelope.
func TextEnvelope(text string) *Envelope {
	return &Envelope{Candidates: []Candidate{{Content: &Content{Role: "model", Parts: []Part{{Text: text}}}}}}
}
