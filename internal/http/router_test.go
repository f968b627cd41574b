package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payana/internal/ai"
	"payana/internal/suggestion"
)

type fixedGenerator struct{ text string }

func (g fixedGenerator) Generate(context.Context, string) (*ai.Envelope, error) {
	return ai.TextEnvelope(g.text), nil
}

type fixedVerifier struct{}

func (fixedVerifier) VerifyIDToken(context.Context, string) (string, error) { return "uid-7", nil }

func serve(r *gin.Engine, method, path, body, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_Health(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(Deps{})
	w := serve(r, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))
}

func TestRouter_SuggestionFallsBack(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(Deps{
		Suggestions: suggestion.NewNormalizer(fixedGenerator{text: "I cannot help with that."}, nil),
	})
	w := serve(r, http.MethodPost, "/api/trips/suggestions",
		`{"startingPoint":"Mumbai","destinations":["Goa"],"duration":"3 days"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"source":"fallback"`)
	assert.Contains(t, w.Body.String(), `"suggestion":{`)
}

func TestRouter_HistoryScopedByIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(Deps{Verifier: fixedVerifier{}})

	w := serve(r, http.MethodPost, "/api/intents/extract",
		`{"text":"trip from Pune to Goa","save":true}`, "Bearer token")
	require.Equal(t, http.StatusOK, w.Code)

	w = serve(r, http.MethodGet, "/api/history", "", "Bearer token")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"owner":"uid-7"`)

	w = serve(r, http.MethodGet, "/api/history", "", "")
	assert.JSONEq(t, `{"entries":[]}`, w.Body.String())
}
