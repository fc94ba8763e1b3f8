package httpadapter

import (
	"errors"
	"net/http"
	"strings"

	"crowdfund/internal/auth"
)

// authenticate attributes the request to the actor named by its bearer
// token. Requests without a valid token are rejected with HTTP 401.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			http.Error(w, "access token required", http.StatusUnauthorized)
			return
		}
		actor, err := h.tokens.Verify(strings.TrimSpace(token))
		if err != nil {
			msg := "invalid access token"
			if errors.Is(err, auth.ErrTokenExpired) {
				msg = "access token expired"
			}
			http.Error(w, msg, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(auth.WithActor(r.Context(), actor)))
	})
}
