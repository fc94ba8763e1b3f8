package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// TokenVerifier resolves a bearer token to the actor it was issued to.
type TokenVerifier interface {
	Verify(token string) (domain.ActorID, error)
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the campaign use case, a token verifier that attributes calls to
// actors, and a logger for structured logging. Routes are registered on a
// chi.Router for convenient method handling.
type Handler struct {
	svc    port.CampaignUseCase
	tokens TokenVerifier
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. Read-only
// endpoints are public; operations that move funds require a bearer token.
func NewHandler(svc port.CampaignUseCase, tokens TokenVerifier, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, tokens: tokens, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	r.Route("/api/v1/campaign", func(r chi.Router) {
		r.Get("/", h.handleCampaign)
		r.Get("/balances/{actor}", h.handleBalance)

		r.Group(func(r chi.Router) {
			r.Use(h.authenticate)
			r.Post("/donations", h.handleDonate)
			r.Post("/refund", h.handleRefund)
			r.Post("/withdraw", h.handleWithdraw)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
