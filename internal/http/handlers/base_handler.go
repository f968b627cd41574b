// README: Base handler utilities (JSON helpers, collaborator interfaces).
package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"payana/internal/maps"
	"payana/internal/suggestion"
)

type errorResponse struct {
	Error     string `json:"error"`
	Retryable bool   `json:"retryable,omitempty"`
}

// Synthesizer produces a suggestion document for a set of constraints.
type Synthesizer interface {
	Synthesize(ctx context.Context, c suggestion.Constraints) (suggestion.Result, error)
}

// QuotaGuard charges one suggestion request to owner and can hand it back.
type QuotaGuard interface {
	Use(ctx context.Context, owner string) error
	Refund(ctx context.Context, owner string) error
}

// RouteEstimator estimates driving time between two places.
type RouteEstimator interface {
	Estimate(ctx context.Context, origin, destination string) (maps.Estimate, error)
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}
