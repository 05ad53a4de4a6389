package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/hackhub/internal/payloads"
)

//go:generate mockgen -source=account.go -destination=account_mock_test.go -package=handlers

// AccountReader returns the caller's own account.
type AccountReader interface {
	Get(ctx context.Context, userID uuid.UUID) (*payloads.Account, error)
}

// AccountUpdater applies a partial account update.
type AccountUpdater interface {
	Update(ctx context.Context, userID uuid.UUID, raw map[string]json.RawMessage) (*payloads.Account, error)
}

// NewGetAccountHandler returns an HTTP handler for the caller's account.
// @Summary Get own account
// @Tags accounts
// @Produce json
// @Success 200 {object} payloads.Account
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /accounts/me [get]
// @Security BearerAuth
func NewGetAccountHandler(svc AccountReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		account, err := svc.Get(r.Context(), userID)
		if err != nil {
			if viewerGone(w, err) {
				return
			}
			internalError(w, "failed to get account", err)
			return
		}
		writeJSON(w, http.StatusOK, account)
	}
}

// NewUpdateAccountHandler returns an HTTP handler for partial account updates.
// On validation failure the body is a map of field name to message.
// @Summary Update own account
// @Tags accounts
// @Accept json
// @Produce json
// @Param account body object true "Fields to change"
// @Success 200 {object} payloads.Account
// @Failure 400 {object} map[string]string "Field errors"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /accounts/me [patch]
// @Security BearerAuth
func NewUpdateAccountHandler(svc AccountUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		var raw map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		account, err := svc.Update(r.Context(), userID, raw)
		if err != nil {
			switch {
			case writeValidation(w, err):
			case viewerGone(w, err):
			default:
				internalError(w, "failed to update account", err)
			}
			return
		}
		writeJSON(w, http.StatusOK, account)
	}
}
