package httpadapter

import (
	"encoding/json"
	"errors"
	"math"
	"math/big"
	"net/http"

	"github.com/shopspring/decimal"

	"crowdfund/internal/auth"
	"crowdfund/internal/core/domain"
)

var maxAmount = decimal.NewFromBigInt(new(big.Int).SetUint64(math.MaxUint64), 0)

var errInvalidAmount = errors.New("amount must be a non-negative integer in the smallest unit")

type donateRequest struct {
	// Amount accepts a JSON number or a decimal string.
	Amount decimal.Decimal `json:"amount"`
}

type donateResponse struct {
	Actor   string `json:"actor"`
	Amount  string `json:"amount"`
	Balance string `json:"balance"`
}

type releaseResponse struct {
	Actor  string `json:"actor"`
	Amount string `json:"amount"`
}

// parseAmount converts a decoded decimal into an Amount. Fractions,
// negative values and values beyond uint64 are rejected.
func parseAmount(d decimal.Decimal) (domain.Amount, error) {
	if d.Sign() < 0 || !d.Equal(d.Truncate(0)) || d.GreaterThan(maxAmount) {
		return 0, errInvalidAmount
	}
	return domain.Amount(d.BigInt().Uint64()), nil
}

// handleDonate credits the authenticated caller with the posted amount.
func (h *Handler) handleDonate(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.ActorFrom(r.Context())

	var req donateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	balance, err := h.svc.Donate(r.Context(), actor, amount)
	if err != nil {
		h.writeError(w, r, "donate", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, donateResponse{
		Actor:   string(actor),
		Amount:  amount.String(),
		Balance: balance.String(),
	})
}

// handleRefund returns the caller's balance after an unsuccessful campaign.
func (h *Handler) handleRefund(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.ActorFrom(r.Context())
	amount, err := h.svc.Refund(r.Context(), actor)
	if err != nil {
		h.writeError(w, r, "refund", err)
		return
	}
	h.writeJSON(w, http.StatusOK, releaseResponse{Actor: string(actor), Amount: amount.String()})
}

// handleWithdraw releases the raised funds to the owner.
func (h *Handler) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.ActorFrom(r.Context())
	amount, err := h.svc.Withdraw(r.Context(), actor)
	if err != nil {
		h.writeError(w, r, "withdraw", err)
		return
	}
	h.writeJSON(w, http.StatusOK, releaseResponse{Actor: string(actor), Amount: amount.String()})
}
