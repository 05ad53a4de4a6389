package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/hackhub/internal/models"
	"github.com/sbilibin2017/hackhub/internal/payloads"
	"github.com/sbilibin2017/hackhub/internal/services"
)

//go:generate mockgen -source=signup.go -destination=signup_mock_test.go -package=handlers

// Signuper defines the interface that the signup service must implement.
type Signuper interface {
	Signup(ctx context.Context, email, password, username string) (*models.UserDB, string, error)
}

// BootstrapBuilder assembles the session bootstrap payload.
type BootstrapBuilder interface {
	Build(ctx context.Context, userID uuid.UUID) (*payloads.Bootstrap, error)
}

// SignupRequest represents the JSON body for user registration
// swagger:model SignupRequest
type SignupRequest struct {
	// Email, must be a .edu address
	// required: true
	// default: ada@mit.edu
	Email string `json:"email"`

	// Password, at least 6 characters
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Username, defaults to the local part of the email
	// default: ada
	Username string `json:"username"`
}

// NewSignupHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates an account, sets the auth cookie and returns the bootstrap payload.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "User registration request"
// @Success 201 {object} payloads.Bootstrap "User registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid body, field errors or email already registered"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /signup [post]
func NewSignupHandler(svc Signuper, bootstrap BootstrapBuilder, cookies CookieConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		user, token, err := svc.Signup(r.Context(), req.Email, req.Password, req.Username)
		if err != nil {
			switch {
			case writeValidation(w, err):
			case errors.Is(err, services.ErrEmailTaken):
				writeError(w, http.StatusBadRequest, "Email already registered")
			default:
				internalError(w, "signup failed", err)
			}
			return
		}

		payload, err := bootstrap.Build(r.Context(), user.UserID)
		if err != nil {
			internalError(w, "failed to build bootstrap payload", err)
			return
		}

		setAuthCookie(w, token, cookies)
		writeJSON(w, http.StatusCreated, payload)
	}
}
