package middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/hackhub/internal/jwt"
	"github.com/sbilibin2017/hackhub/internal/logger"
)

//go:generate mockgen -source=auth.go -destination=auth_mock_test.go -package=middlewares

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// RevocationChecker reports whether a token was revoked by logout.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type claimsKey struct{}

// WithClaims stores the authenticated claims in the context.
func WithClaims(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// ClaimsFromContext returns the claims set by AuthMiddleware, or nil.
func ClaimsFromContext(ctx context.Context) *jwt.Claims {
	claims, _ := ctx.Value(claimsKey{}).(*jwt.Claims)
	return claims
}

// AuthMiddleware returns a middleware that validates the JWT and rejects revoked tokens.
// A nil revocation checker disables the revocation lookup.
func AuthMiddleware(tokener Tokener, revocations RevocationChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Debugw("authorization failed", "err", err)
				unauthorized(w)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Debugw("authorization failed", "err", err)
				unauthorized(w)
				return
			}

			if revocations != nil {
				revoked, err := revocations.IsRevoked(ctx, claims.ID)
				if err != nil {
					logger.Log.Errorw("revocation lookup failed", "token_id", claims.ID, "err", err)
					writeJSONError(w, http.StatusInternalServerError, "Internal server error")
					return
				}
				if revoked {
					logger.Log.Debugw("authorization failed", "err", "token revoked", "token_id", claims.ID)
					unauthorized(w)
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(ctx, claims)))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	writeJSONError(w, http.StatusUnauthorized, "Unauthorized")
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + msg + `"}`))
}
