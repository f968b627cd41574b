// README: Trip suggestion handler (quota-guarded, normalized AI output).
package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"payana/internal/ai"
	"payana/internal/http/middleware"
	"payana/internal/quota"
	"payana/internal/suggestion"
)

const refundTimeout = 5 * time.Second

type SuggestionHandler struct {
	synth   Synthesizer
	quota   QuotaGuard
	timeout time.Duration
	logger  *zap.Logger
}

// NewSuggestionHandler creates the handler. guard may be nil; timeout zero means
// the request context is passed through unchanged.
func NewSuggestionHandler(synth Synthesizer, guard QuotaGuard, timeout time.Duration, logger *zap.Logger) *SuggestionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SuggestionHandler{synth: synth, quota: guard, timeout: timeout, logger: logger}
}

// Create handles POST /api/trips/suggestions.
func (h *SuggestionHandler) Create(c *gin.Context) {
	var req suggestion.Constraints
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx := c.Request.Context()
	owner := middleware.Owner(c)
	if h.quota != nil {
		if err := h.quota.Use(ctx, owner); err != nil {
			if errors.Is(err, quota.ErrExhausted) {
				writeError(c, http.StatusTooManyRequests, err.Error())
				return
			}
			h.logger.Error("quota", zap.Error(err), zap.String("owner", owner))
			writeError(c, http.StatusInternalServerError, "internal error")
			return
		}
	}

	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	res, err := h.synth.Synthesize(ctx, req)
	if err != nil {
		h.refund(c, owner)
		if errors.Is(err, ai.ErrTransport) {
			h.logger.Warn("suggestion transport failure", zap.Error(err), zap.String("trace_id", middleware.TraceID(c)))
			writeJSON(c, http.StatusBadGateway, errorResponse{Error: "suggestion service unavailable", Retryable: true})
			return
		}
		h.logger.Error("synthesize", zap.Error(err))
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, res)
}

// refund hands back the request charged for a call that produced no document.
// The request context may already be done, so a detached one is used.
func (h *SuggestionHandler) refund(c *gin.Context, owner string) {
	if h.quota == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), refundTimeout)
	defer cancel()
	if err := h.quota.Refund(ctx, owner); err != nil {
		h.logger.Error("quota refund", zap.Error(err), zap.String("owner", owner))
	}
}
