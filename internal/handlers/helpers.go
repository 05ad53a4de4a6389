package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/hackhub/internal/jwt"
	"github.com/sbilibin2017/hackhub/internal/logger"
	"github.com/sbilibin2017/hackhub/internal/middlewares"
	"github.com/sbilibin2017/hackhub/internal/models"
	"github.com/sbilibin2017/hackhub/internal/services"
	"github.com/sbilibin2017/hackhub/internal/validation"
)

// Error messages shared by several handlers.
const (
	msgInvalidBody       = "invalid request body"
	msgInvalidPagination = "Invalid pagination"
	msgUnauthorized      = "Unauthorized"
	msgInternal          = "Internal server error"
)

var errInvalidPagination = errors.New("invalid pagination")

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// CookieConfig controls the auth cookie attributes.
type CookieConfig struct {
	Secure bool
	MaxAge time.Duration
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

func internalError(w http.ResponseWriter, msg string, err error) {
	logger.Log.Errorw(msg, "error", err)
	writeError(w, http.StatusInternalServerError, msgInternal)
}

// viewerGone answers 401 when the token's user no longer exists.
func viewerGone(w http.ResponseWriter, err error) bool {
	if errors.Is(err, services.ErrViewerNotFound) {
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return true
	}
	return false
}

// writeValidation answers 400 with the field map when err carries one.
func writeValidation(w http.ResponseWriter, err error) bool {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		writeJSON(w, http.StatusBadRequest, verrs)
		return true
	}
	return false
}

// currentUser returns the id of the authenticated user, answering 401 when absent.
func currentUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	claims := middlewares.ClaimsFromContext(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return uuid.Nil, false
	}
	return claims.UserID, true
}

// parsePagination reads offset and limit from the query string.
// Missing values fall back to defaults; non-integers are rejected.
func parsePagination(r *http.Request) (models.Page, error) {
	offset, limit := 0, models.DefaultLimit
	q := r.URL.Query()
	if raw := q.Get("offset"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return models.Page{}, errInvalidPagination
		}
		offset = v
	}
	if raw := q.Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return models.Page{}, errInvalidPagination
		}
		limit = v
	}
	return models.NewPage(offset, limit), nil
}

func setAuthCookie(w http.ResponseWriter, token string, cfg CookieConfig) {
	http.SetCookie(w, &http.Cookie{
		Name:     jwt.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(cfg.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearAuthCookie(w http.ResponseWriter, cfg CookieConfig) {
	http.SetCookie(w, &http.Cookie{
		Name:     jwt.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
