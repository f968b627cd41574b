// README: Trip intent handlers (extraction, optional save, route estimate).
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"payana/internal/history"
	"payana/internal/http/middleware"
	"payana/internal/intent"
	"payana/internal/maps"
)

type IntentHandler struct {
	extractor *intent.Extractor
	history   history.Store
	routes    RouteEstimator
	logger    *zap.Logger
	now       func() time.Time
}

// NewIntentHandler wires the extractor to its optional collaborators.
// A nil store disables saving; a nil estimator makes Route answer 503.
func NewIntentHandler(ex *intent.Extractor, store history.Store, routes RouteEstimator, logger *zap.Logger) *IntentHandler {
	if ex == nil {
		ex = intent.NewExtractor()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IntentHandler{extractor: ex, history: store, routes: routes, logger: logger, now: time.Now}
}

type extractReq struct {
	Text string `json:"text"`
	Save bool   `json:"save"`
}

type extractResp struct {
	Found  bool               `json:"found"`
	Intent *intent.TripIntent `json:"intent,omitempty"`
	Entry  *history.Entry     `json:"entry,omitempty"`
}

// Extract handles POST /api/intents/extract.
func (h *IntentHandler) Extract(c *gin.Context) {
	var req extractReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	ti, ok := h.extractor.Extract(req.Text)
	if !ok {
		writeJSON(c, http.StatusOK, extractResp{Found: false})
		return
	}

	resp := extractResp{Found: true, Intent: &ti}
	if req.Save && h.history != nil {
		owner := middleware.Owner(c)
		entry := history.NewEntry(owner, ti, req.Text, h.now())
		if err := h.history.Add(c.Request.Context(), owner, entry); err != nil {
			h.logger.Error("save history", zap.Error(err), zap.String("owner", owner))
			writeError(c, http.StatusInternalServerError, "internal error")
			return
		}
		resp.Entry = &entry
	}
	writeJSON(c, http.StatusOK, resp)
}

type routeReq struct {
	Text string `json:"text"`
}

type routeResp struct {
	Intent   intent.TripIntent `json:"intent"`
	Estimate maps.Estimate     `json:"estimate"`
}

// Route handles POST /api/intents/route.
func (h *IntentHandler) Route(c *gin.Context) {
	if h.routes == nil {
		writeError(c, http.StatusServiceUnavailable, "route estimates disabled")
		return
	}
	var req routeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	ti, ok := h.extractor.Extract(req.Text)
	if !ok {
		writeError(c, http.StatusNotFound, "no trip intent found")
		return
	}

	est, err := h.routes.Estimate(c.Request.Context(), ti.Origin, ti.Destination)
	if err != nil {
		if errors.Is(err, maps.ErrNoRoute) {
			writeError(c, http.StatusNotFound, err.Error())
			return
		}
		h.logger.Warn("route estimate", zap.Error(err))
		writeError(c, http.StatusBadGateway, "route service unavailable")
		return
	}
	writeJSON(c, http.StatusOK, routeResp{Intent: ti, Estimate: est})
}
