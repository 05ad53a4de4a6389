package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/hackhub/internal/middlewares"
)

//go:generate mockgen -source=logout.go -destination=logout_mock_test.go -package=handlers

// Logouter revokes the current token.
type Logouter interface {
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
}

// NewLogoutHandler returns an HTTP handler that revokes the caller's token and clears the cookie.
// @Summary Logout
// @Description Revokes the current token until it expires and clears the auth cookie.
// @Tags auth
// @Success 204 "Logged out"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /logout [post]
// @Security BearerAuth
func NewLogoutHandler(svc Logouter, cookies CookieConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.ClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		var expiresAt time.Time
		if claims.ExpiresAt != nil {
			expiresAt = claims.ExpiresAt.Time
		}
		if err := svc.Logout(r.Context(), claims.ID, expiresAt); err != nil {
			internalError(w, "logout failed", err)
			return
		}

		clearAuthCookie(w, cookies)
		w.WriteHeader(http.StatusNoContent)
	}
}
