package httpadapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"crowdfund/internal/core/domain"
)

type campaignResponse struct {
	ID          string    `json:"id"`
	Owner       string    `json:"owner"`
	Goal        string    `json:"goal"`
	Raised      string    `json:"raised"`
	Withdrawn   string    `json:"withdrawn"`
	Donors      int       `json:"donors"`
	CreatedAt   time.Time `json:"created_at"`
	Deadline    time.Time `json:"deadline"`
	Status      string    `json:"status"`
	Finished    bool      `json:"finished"`
	GoalReached bool      `json:"goal_reached"`
}

type balanceResponse struct {
	Actor   string `json:"actor"`
	Balance string `json:"balance"`
}

// handleCampaign returns the campaign state. Amounts are encoded as
// decimal strings so clients do not lose precision.
func (h *Handler) handleCampaign(w http.ResponseWriter, _ *http.Request) {
	s := h.svc.Snapshot()
	h.writeJSON(w, http.StatusOK, campaignResponse{
		ID:          s.ID.String(),
		Owner:       string(s.Owner),
		Goal:        s.Goal.String(),
		Raised:      s.Raised.String(),
		Withdrawn:   s.Withdrawn.String(),
		Donors:      s.Donors,
		CreatedAt:   s.CreatedAt,
		Deadline:    s.Deadline,
		Status:      string(s.Status),
		Finished:    s.Finished,
		GoalReached: s.GoalReached,
	})
}

// handleBalance returns the recorded contribution of the {actor} path
// parameter. Unknown actors have a zero balance.
func (h *Handler) handleBalance(w http.ResponseWriter, r *http.Request) {
	actor := domain.ActorID(chi.URLParam(r, "actor"))
	if actor == "" {
		http.Error(w, "missing actor", http.StatusBadRequest)
		return
	}
	h.writeJSON(w, http.StatusOK, balanceResponse{
		Actor:   string(actor),
		Balance: h.svc.BalanceOf(actor).String(),
	})
}

func requestID(r *http.Request) string {
	return middleware.GetReqID(r.Context())
}
