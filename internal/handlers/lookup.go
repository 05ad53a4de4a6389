package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/hackhub/internal/models"
	"github.com/sbilibin2017/hackhub/internal/payloads"
	"github.com/sbilibin2017/hackhub/internal/services"
)

//go:generate mockgen -source=lookup.go -destination=lookup_mock_test.go -package=handlers

const (
	msgUUIDRequired = "uuid is required"
	msgUserNotFound = "User not found"
	msgTeamNotFound = "Team not found"
)

// UserLooker returns another user's profile from the viewer's perspective.
type UserLooker interface {
	User(ctx context.Context, viewerID, targetID uuid.UUID) (*payloads.UserProfile, error)
}

// UserHistoryReader pages a user's placed past hackathons.
type UserHistoryReader interface {
	UserHistory(ctx context.Context, userID uuid.UUID, page models.Page) ([]payloads.HackathonResult, error)
}

// TeamLooker returns a team profile from the viewer's perspective.
type TeamLooker interface {
	Team(ctx context.Context, viewerID, teamID uuid.UUID) (*payloads.TeamProfile, error)
}

// TeamHistoryReader pages a team's placed past hackathons.
type TeamHistoryReader interface {
	TeamHistory(ctx context.Context, teamID uuid.UUID, page models.Page) ([]payloads.HackathonResult, error)
}

// UserLookupResponse wraps a user profile
// swagger:model UserLookupResponse
type UserLookupResponse struct {
	User *payloads.UserProfile `json:"user"`
}

// TeamLookupResponse wraps a team profile
// swagger:model TeamLookupResponse
type TeamLookupResponse struct {
	Team *payloads.TeamProfile `json:"team"`
}

// HistoryResponse wraps a page of hackathon results
// swagger:model HistoryResponse
type HistoryResponse struct {
	Hackathons []payloads.HackathonResult `json:"hackathons"`
}

// NewUserLookupHandler returns an HTTP handler for another user's profile.
// @Summary Look up a user
// @Description Core profile with viewer-relative fields, best placement and five most recent placed hackathons.
// @Tags lookup
// @Produce json
// @Param uuid query string true "User UUID"
// @Success 200 {object} handlers.UserLookupResponse
// @Failure 400 {object} handlers.ErrorResponse "uuid is required"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /user/lookup [get]
// @Security BearerAuth
func NewUserLookupHandler(svc UserLooker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewerID, ok := currentUser(w, r)
		if !ok {
			return
		}
		raw := r.URL.Query().Get("uuid")
		if raw == "" {
			writeError(w, http.StatusBadRequest, msgUUIDRequired)
			return
		}
		targetID, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusNotFound, msgUserNotFound)
			return
		}

		profile, err := svc.User(r.Context(), viewerID, targetID)
		if err != nil {
			switch {
			case viewerGone(w, err):
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, msgUserNotFound)
			default:
				internalError(w, "failed to look up user", err)
			}
			return
		}
		writeJSON(w, http.StatusOK, UserLookupResponse{User: profile})
	}
}

// NewUserHistoryHandler returns an HTTP handler paging a user's placed past hackathons.
// @Summary User history
// @Tags lookup
// @Produce json
// @Param id path string true "User UUID"
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Limit (1-50)" default(10)
// @Success 200 {object} handlers.HistoryResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid pagination"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /user/lookup/{id}/history [get]
// @Security BearerAuth
func NewUserHistoryHandler(svc UserHistoryReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := currentUser(w, r); !ok {
			return
		}
		page, err := parsePagination(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidPagination)
			return
		}
		userID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusNotFound, msgUserNotFound)
			return
		}

		history, err := svc.UserHistory(r.Context(), userID, page)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, msgUserNotFound)
				return
			}
			internalError(w, "failed to get user history", err)
			return
		}
		writeJSON(w, http.StatusOK, HistoryResponse{Hackathons: orEmpty(history)})
	}
}

// NewTeamLookupHandler returns an HTTP handler for a team profile.
// @Summary Look up a team
// @Description Team with members, best placement and five most recent placed hackathons.
// @Tags lookup
// @Produce json
// @Param uuid query string true "Team UUID"
// @Success 200 {object} handlers.TeamLookupResponse
// @Failure 400 {object} handlers.ErrorResponse "uuid is required"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Team not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /team/lookup [get]
// @Security BearerAuth
func NewTeamLookupHandler(svc TeamLooker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewerID, ok := currentUser(w, r)
		if !ok {
			return
		}
		raw := r.URL.Query().Get("uuid")
		if raw == "" {
			writeError(w, http.StatusBadRequest, msgUUIDRequired)
			return
		}
		teamID, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusNotFound, msgTeamNotFound)
			return
		}

		profile, err := svc.Team(r.Context(), viewerID, teamID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrTeamNotFound):
				writeError(w, http.StatusNotFound, msgTeamNotFound)
			case viewerGone(w, err):
			default:
				internalError(w, "failed to look up team", err)
			}
			return
		}
		writeJSON(w, http.StatusOK, TeamLookupResponse{Team: profile})
	}
}

// NewTeamHistoryHandler returns an HTTP handler paging a team's placed past hackathons.
// @Summary Team history
// @Tags lookup
// @Produce json
// @Param id path string true "Team UUID"
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Limit (1-50)" default(10)
// @Success 200 {object} handlers.HistoryResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid pagination"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Team not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /team/{id}/history [get]
// @Security BearerAuth
func NewTeamHistoryHandler(svc TeamHistoryReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := currentUser(w, r); !ok {
			return
		}
		page, err := parsePagination(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidPagination)
			return
		}
		teamID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusNotFound, msgTeamNotFound)
			return
		}

		history, err := svc.TeamHistory(r.Context(), teamID, page)
		if err != nil {
			if errors.Is(err, services.ErrTeamNotFound) {
				writeError(w, http.StatusNotFound, msgTeamNotFound)
				return
			}
			internalError(w, "failed to get team history", err)
			return
		}
		writeJSON(w, http.StatusOK, HistoryResponse{Hackathons: orEmpty(history)})
	}
}
