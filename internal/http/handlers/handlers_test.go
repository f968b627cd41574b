package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payana/internal/ai"
	"payana/internal/history"
	"payana/internal/http/handlers"
	"payana/internal/http/middleware"
	"payana/internal/maps"
	"payana/internal/quota"
	"payana/internal/suggestion"
)

type stubSynth struct {
	res   suggestion.Result
	err   error
	calls int
	got   suggestion.Constraints
}

func (s *stubSynth) Synthesize(_ context.Context, c suggestion.Constraints) (suggestion.Result, error) {
	s.calls++
	s.got = c
	return s.res, s.err
}

type stubQuota struct {
	err      error
	used     int
	refunded int
}

func (s *stubQuota) Use(context.Context, string) error {
	if s.err != nil {
		return s.err
	}
	s.used++
	return nil
}

func (s *stubQuota) Refund(context.Context, string) error {
	s.refunded++
	return nil
}

// charged is the number of requests still counted against the owner.
func (s *stubQuota) charged() int { return s.used - s.refunded }

type stubRoutes struct {
	est maps.Estimate
	err error
}

func (s stubRoutes) Estimate(context.Context, string, string) (maps.Estimate, error) {
	return s.est, s.err
}

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.TraceIDMiddleware(), middleware.Identity(nil, nil))
	return r
}

func doRequest(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validConstraints() map[string]any {
	return map[string]any{
		"startingPoint": "Mumbai",
		"destinations":  []string{"Goa"},
		"duration":      "3 days",
	}
}

func TestSuggestionCreate(t *testing.T) {
	synth := &stubSynth{res: suggestion.Result{Source: suggestion.SourceFallback, Document: suggestion.Fallback()}}
	r := newEngine()
	r.POST("/s", handlers.NewSuggestionHandler(synth, nil, 0, nil).Create)

	w := doRequest(r, http.MethodPost, "/s", validConstraints())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, synth.calls)
	assert.Equal(t, "Mumbai", synth.got.StartingPoint)

	var got suggestion.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, suggestion.SourceFallback, got.Source)
	assert.Equal(t, suggestion.Fallback(), got.Document)
}

func TestSuggestionCreate_BadRequest(t *testing.T) {
	synth := &stubSynth{}
	r := newEngine()
	r.POST("/s", handlers.NewSuggestionHandler(synth, nil, 0, nil).Create)

	w := doRequest(r, http.MethodPost, "/s", map[string]any{"destinations": []string{"Goa"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/s", bytes.NewBufferString("{"))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, synth.calls)
}

func TestSuggestionCreate_TransportFailure(t *testing.T) {
	terr := &ai.TransportError{Provider: "gemini", Op: "generate", StatusCode: 503, Err: errors.New("unavailable")}
	synth := &stubSynth{err: fmt.Errorf("synthesize suggestion: %w", terr)}
	r := newEngine()
	r.POST("/s", handlers.NewSuggestionHandler(synth, nil, 0, nil).Create)

	w := doRequest(r, http.MethodPost, "/s", validConstraints())
	require.Equal(t, http.StatusBadGateway, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["retryable"])
	assert.NotContains(t, body, "suggestion")
}

func TestSuggestionCreate_Quota(t *testing.T) {
	synth := &stubSynth{}
	r := newEngine()
	r.POST("/s", handlers.NewSuggestionHandler(synth, &stubQuota{err: quota.ErrExhausted}, 0, nil).Create)

	w := doRequest(r, http.MethodPost, "/s", validConstraints())
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Zero(t, synth.calls)
}

func TestSuggestionCreate_TransportFailureRefundsQuota(t *testing.T) {
	terr := &ai.TransportError{Provider: "gemini", Op: "generate", StatusCode: 500, Err: errors.New("boom")}
	synth := &stubSynth{err: fmt.Errorf("synthesize suggestion: %w", terr)}
	guard := &stubQuota{}
	r := newEngine()
	r.POST("/s", handlers.NewSuggestionHandler(synth, guard, 0, nil).Create)

	for i := 0; i < 3; i++ {
		w := doRequest(r, http.MethodPost, "/s", validConstraints())
		require.Equal(t, http.StatusBadGateway, w.Code)
	}
	assert.Equal(t, 3, guard.used)
	assert.Zero(t, guard.charged())
}

func TestSuggestionCreate_FallbackStillCharged(t *testing.T) {
	synth := &stubSynth{res: suggestion.Result{Source: suggestion.SourceFallback, Document: suggestion.Fallback()}}
	guard := &stubQuota{}
	r := newEngine()
	r.POST("/s", handlers.NewSuggestionHandler(synth, guard, 0, nil).Create)

	w := doRequest(r, http.MethodPost, "/s", validConstraints())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, guard.charged())
}

func TestIntentExtract(t *testing.T) {
	store := history.NewMemoryStore(0)
	r := newEngine()
	h := handlers.NewIntentHandler(nil, store, nil, nil)
	r.POST("/x", h.Extract)

	w := doRequest(r, http.MethodPost, "/x", map[string]any{"text": "Plan a trip to Goa from Mumbai", "save": true})
	require.Equal(t, http.StatusOK, w.Code)

	var got struct {
		Found  bool           `json:"found"`
		Intent map[string]any `json:"intent"`
		Entry  *history.Entry `json:"entry"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.True(t, got.Found)
	assert.Equal(t, "Mumbai", got.Intent["origin"])
	assert.Equal(t, "Goa", got.Intent["destination"])
	require.NotNil(t, got.Entry)
	assert.Equal(t, history.Anonymous, got.Entry.Owner)

	saved, err := store.List(context.Background(), history.Anonymous)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, got.Entry.ID, saved[0].ID)
}

func TestIntentExtract_NoMatch(t *testing.T) {
	store := history.NewMemoryStore(0)
	r := newEngine()
	r.POST("/x", handlers.NewIntentHandler(nil, store, nil, nil).Extract)

	w := doRequest(r, http.MethodPost, "/x", map[string]any{"text": "hello there", "save": true})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"found":false}`, w.Body.String())

	saved, _ := store.List(context.Background(), history.Anonymous)
	assert.Empty(t, saved)
}

func TestIntentRoute(t *testing.T) {
	est := maps.Estimate{Minutes: 45, Distance: "30 km", Meters: 30000}
	cases := []struct {
		name   string
		routes handlers.RouteEstimator
		text   string
		want   int
	}{
		{"disabled", nil, "route from a to b", http.StatusServiceUnavailable},
		{"no intent", stubRoutes{est: est}, "hello", http.StatusNotFound},
		{"no route", stubRoutes{err: maps.ErrNoRoute}, "route from a to b", http.StatusNotFound},
		{"upstream", stubRoutes{err: errors.New("denied")}, "route from a to b", http.StatusBadGateway},
		{"ok", stubRoutes{est: est}, "route from Pune to Nashik", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newEngine()
			r.POST("/r", handlers.NewIntentHandler(nil, nil, tc.routes, nil).Route)
			w := doRequest(r, http.MethodPost, "/r", map[string]any{"text": tc.text})
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestHistoryListDelete(t *testing.T) {
	store := history.NewMemoryStore(0)
	entry := history.Entry{ID: "e1", Owner: history.Anonymous, Origin: "A", Destination: "B"}
	require.NoError(t, store.Add(context.Background(), history.Anonymous, entry))

	h := handlers.NewHistoryHandler(store, nil)
	r := newEngine()
	r.GET("/h", h.List)
	r.DELETE("/h/:id", h.Delete)

	w := doRequest(r, http.MethodGet, "/h", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"e1"`)

	w = doRequest(r, http.MethodDelete, "/h/e1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(r, http.MethodDelete, "/h/e1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(r, http.MethodGet, "/h", nil)
	assert.JSONEq(t, `{"entries":[]}`, w.Body.String())
}
