package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"payana/internal/history"
	"payana/internal/http/middleware"
)

type HistoryHandler struct {
	store  history.Store
	logger *zap.Logger
}

func NewHistoryHandler(store history.Store, logger *zap.Logger) *HistoryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HistoryHandler{store: store, logger: logger}
}

// List handles GET /api/history.
func (h *HistoryHandler) List(c *gin.Context) {
	owner := middleware.Owner(c)
	entries, err := h.store.List(c.Request.Context(), owner)
	if err != nil {
		h.logger.Error("list history", zap.Error(err), zap.String("owner", owner))
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	if entries == nil {
		entries = []history.Entry{}
	}
	writeJSON(c, http.StatusOK, gin.H{"entries": entries})
}

// Delete handles DELETE /api/history/:id.
func (h *HistoryHandler) Delete(c *gin.Context) {
	owner := middleware.Owner(c)
	err := h.store.Delete(c.Request.Context(), owner, c.Param("id"))
	switch {
	case err == nil:
		c.Status(http.StatusNoContent)
	case errors.Is(err, history.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		h.logger.Error("delete history", zap.Error(err), zap.String("owner", owner))
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
