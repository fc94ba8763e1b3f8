package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps use case errors to HTTP statuses. Rejections carry their
// message; anything unexpected is logged and reported as HTTP 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.Error(op+" error",
			slog.String("request_id", requestID(r)),
			slog.Any("error", err))
		http.Error(w, "internal error", status)
		return
	}
	h.logger.Debug(op+" rejected", slog.String("request_id", requestID(r)), slog.Any("error", err))
	http.Error(w, err.Error(), status)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInsufficientInput),
		errors.Is(err, domain.ErrAmountOverflow):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, port.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, domain.ErrCampaignClosed),
		errors.Is(err, domain.ErrCampaignStillOpen),
		errors.Is(err, domain.ErrGoalReached),
		errors.Is(err, domain.ErrGoalNotReached),
		errors.Is(err, domain.ErrNoBalance),
		errors.Is(err, domain.ErrNothingToWithdraw):
		return http.StatusConflict
	case errors.Is(err, port.ErrTransferFailed):
		return http.StatusBadGateway
	case errors.Is(err, port.ErrJournalBehind):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
