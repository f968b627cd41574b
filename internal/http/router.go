// README: HTTP router registration.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"payana/internal/contacts"
	"payana/internal/history"
	"payana/internal/http/handlers"
	"payana/internal/http/middleware"
	"payana/internal/infra"
	"payana/internal/intent"
)

// Deps carries the collaborators behind the API. Quota, Routes, Verifier and
// Dispatcher are optional; History and Contacts default to in-memory stores.
type Deps struct {
	Suggestions       handlers.Synthesizer
	Quota             handlers.QuotaGuard
	History           history.Store
	Contacts          contacts.Store
	Dispatcher        contacts.Dispatcher
	Routes            handlers.RouteEstimator
	Verifier          infra.TokenVerifier
	Logger            *zap.Logger
	SuggestionTimeout time.Duration
}

func NewRouter(d Deps) *gin.Engine {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	store := d.History
	if store == nil {
		store = history.NewMemoryStore(history.DefaultLimit)
	}
	contactStore := d.Contacts
	if contactStore == nil {
		contactStore = contacts.NewMemoryStore()
	}

	r := gin.New()
	r.Use(
		middleware.TraceIDMiddleware(),
		middleware.Recovery(logger),
		middleware.Identity(d.Verifier, logger),
		middleware.Logging(logger),
	)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api")

	intentHandler := handlers.NewIntentHandler(intent.NewExtractor(), store, d.Routes, logger)
	api.POST("/intents/extract", intentHandler.Extract)
	api.POST("/intents/route", intentHandler.Route)

	suggestionHandler := handlers.NewSuggestionHandler(d.Suggestions, d.Quota, d.SuggestionTimeout, logger)
	api.POST("/trips/suggestions", suggestionHandler.Create)

	historyHandler := handlers.NewHistoryHandler(store, logger)
	api.GET("/history", historyHandler.List)
	api.DELETE("/history/:id", historyHandler.Delete)

	contactsHandler := handlers.NewContactsHandler(contactStore, d.Dispatcher, logger)
	api.GET("/contacts", contactsHandler.List)
	api.POST("/contacts", contactsHandler.Add)
	api.DELETE("/contacts/:id", contactsHandler.Delete)
	api.POST("/sos", contactsHandler.SOS)

	return r
}
