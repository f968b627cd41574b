// README: Emergency contacts and SOS handlers. Both need a resolved identity.
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"payana/internal/contacts"
	"payana/internal/history"
	"payana/internal/http/middleware"
)

type ContactsHandler struct {
	store      contacts.Store
	dispatcher contacts.Dispatcher
	logger     *zap.Logger
	now        func() time.Time
}

// NewContactsHandler wires the store and dispatcher. A nil dispatcher logs alerts.
func NewContactsHandler(store contacts.Store, d contacts.Dispatcher, logger *zap.Logger) *ContactsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if d == nil {
		d = contacts.NewLogDispatcher(logger)
	}
	return &ContactsHandler{store: store, dispatcher: d, logger: logger, now: time.Now}
}

// owner returns the caller's identity. Anonymous callers share one bucket, so
// contact lists and alerts are refused for them.
func (h *ContactsHandler) owner(c *gin.Context) (string, bool) {
	owner := middleware.Owner(c)
	if owner == history.Anonymous {
		writeError(c, http.StatusUnauthorized, "sign in to manage emergency contacts")
		return "", false
	}
	return owner, true
}

// List handles GET /api/contacts.
func (h *ContactsHandler) List(c *gin.Context) {
	owner, ok := h.owner(c)
	if !ok {
		return
	}
	list, err := h.store.List(c.Request.Context(), owner)
	if err != nil {
		h.logger.Error("list contacts", zap.Error(err), zap.String("owner", owner))
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	if list == nil {
		list = []contacts.Contact{}
	}
	writeJSON(c, http.StatusOK, gin.H{"contacts": list})
}

type addContactReq struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Add handles POST /api/contacts.
func (h *ContactsHandler) Add(c *gin.Context) {
	owner, ok := h.owner(c)
	if !ok {
		return
	}
	var req addContactReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	contact := contacts.NewContact(owner, req.Name, req.Email, req.Phone, h.now())
	if err := contact.Validate(); err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.store.Add(c.Request.Context(), owner, contact); err != nil {
		h.logger.Error("add contact", zap.Error(err), zap.String("owner", owner))
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusCreated, contact)
}

// Delete handles DELETE /api/contacts/:id.
func (h *ContactsHandler) Delete(c *gin.Context) {
	owner, ok := h.owner(c)
	if !ok {
		return
	}
	err := h.store.Delete(c.Request.Context(), owner, c.Param("id"))
	switch {
	case err == nil:
		c.Status(http.StatusNoContent)
	case errors.Is(err, contacts.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		h.logger.Error("delete contact", zap.Error(err), zap.String("owner", owner))
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

type sosReq struct {
	Message  string             `json:"message"`
	Location *contacts.Location `json:"location"`
}

// SOS handles POST /api/sos.
func (h *ContactsHandler) SOS(c *gin.Context) {
	owner, ok := h.owner(c)
	if !ok {
		return
	}
	var req sosReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	res, err := contacts.SendAlert(c.Request.Context(), h.store, h.dispatcher, owner, req.Message, req.Location, h.now())
	switch {
	case err == nil:
	case errors.Is(err, contacts.ErrNoContacts):
		writeError(c, http.StatusUnprocessableEntity, "add emergency contacts before sending an SOS alert")
		return
	case errors.Is(err, contacts.ErrBadLocation):
		writeError(c, http.StatusBadRequest, err.Error())
		return
	default:
		h.logger.Error("sos", zap.Error(err), zap.String("owner", owner))
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}

	if res.Failed > 0 {
		h.logger.Warn("sos partially delivered", zap.String("owner", owner), zap.Int("sent", res.Sent), zap.Int("failed", res.Failed))
	}
	writeJSON(c, http.StatusOK, res)
}
