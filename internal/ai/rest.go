// README: Gemini generateContent over plain HTTPS with the API key in the query string.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultGeminiModel   = "gemini-1.5-flash-latest"

	// maxErrorBody bounds how much of a failed response is kept in the error.
	maxErrorBody = 2048
)

// RESTConfig configures a RESTClient. Zero values fall back to the Gemini defaults.
type RESTConfig struct {
	APIKey     string
	Model      string
	BaseURL    string
	Generation *GenerationConfig
	HTTPClient *http.Client
}

// RESTClient implements Generator against the generateContent endpoint.
type RESTClient struct {
	apiKey     string
	model      string
	baseURL    string
	generation GenerationConfig
	httpClient *http.Client
}

// NewRESTClient builds a RESTClient. The default HTTP client has no timeout;
// callers bound a request through its context.
func NewRESTClient(cfg RESTConfig) *RESTClient {
	c := &RESTClient{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		generation: DefaultGenerationConfig,
		httpClient: cfg.HTTPClient,
	}
	if c.model == "" {
		c.model = DefaultGeminiModel
	}
	if c.baseURL == "" {
		c.baseURL = DefaultGeminiBaseURL
	}
	if cfg.Generation != nil {
		c.generation = *cfg.Generation
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}
	return c
}

type generateRequest struct {
	Contents         []Content        `json:"contents"`
	GenerationConfig GenerationConfig `json:"generationConfig"`
}

// Generate posts prompt and decodes the envelope. A success response whose body is
// not a valid envelope is returned as an empty envelope, not as an error.
func (c *RESTClient) Generate(ctx context.Context, prompt string) (*Envelope, error) {
	body, err := json.Marshal(generateRequest{
		Contents:         []Content{{Parts: []Part{{Text: prompt}}}},
		GenerationConfig: c.generation,
	})
	if err != nil {
		return nil, c.fail("marshal request", 0, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(body))
	if err != nil {
		return nil, c.fail("build request", 0, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.fail("do request", 0, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.fail("read response", resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet := raw
		if len(snippet) > maxErrorBody {
			snippet = snippet[:maxErrorBody]
		}
		return nil, c.fail("generate content", resp.StatusCode, fmt.Errorf("%s: %s", resp.Status, bytes.TrimSpace(snippet)))
	}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return &Envelope{Raw: raw}, nil
	}
	env.Raw = raw
	return &env, nil
}

func (c *RESTClient) endpoint() string {
	q := url.Values{}
	q.Set("key", c.apiKey)
	return fmt.Sprintf("%s/models/%s:generateContent?%s", c.baseURL, url.PathEscape(c.model), q.Encode())
}

func (c *RESTClient) fail(op string, status int, err error) error {
	return &TransportError{Provider: "gemini", Op: op, StatusCode: status, Err: err}
}
