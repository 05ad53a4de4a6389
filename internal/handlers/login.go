package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/hackhub/internal/models"
	"github.com/sbilibin2017/hackhub/internal/services"
)

//go:generate mockgen -source=login.go -destination=login_mock_test.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (*models.UserDB, string, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// default: ada@mit.edu
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticates by email and password, sets the auth cookie and returns the bootstrap payload.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} payloads.Bootstrap "Bootstrap payload"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid credentials"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /login [post]
func NewLoginHandler(svc Loginer, bootstrap BootstrapBuilder, cookies CookieConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}
		if req.Email == "" || req.Password == "" {
			writeError(w, http.StatusBadRequest, "email and password are required")
			return
		}

		user, token, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				writeError(w, http.StatusUnauthorized, "Invalid credentials")
				return
			}
			internalError(w, "login failed", err)
			return
		}

		payload, err := bootstrap.Build(r.Context(), user.UserID)
		if err != nil {
			internalError(w, "failed to build bootstrap payload", err)
			return
		}

		setAuthCookie(w, token, cookies)
		writeJSON(w, http.StatusOK, payload)
	}
}
