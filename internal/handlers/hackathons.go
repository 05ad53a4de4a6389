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

//go:generate mockgen -source=hackathons.go -destination=hackathons_mock_test.go -package=handlers

// UpcomingLister lists hackathons the user is entered in that have not ended.
type UpcomingLister interface {
	Upcoming(ctx context.Context, userID uuid.UUID, page models.Page) ([]payloads.Hackathon, error)
}

// PastLister lists hackathons the user took part in that have ended.
type PastLister interface {
	Past(ctx context.Context, userID uuid.UUID, page models.Page) ([]payloads.Hackathon, error)
}

// HackathonSearcher searches hackathons by name.
type HackathonSearcher interface {
	Search(ctx context.Context, userID uuid.UUID, query string, page models.Page) ([]payloads.SearchResult, error)
}

// LeaderboardReader returns the placed entries of one hackathon.
type LeaderboardReader interface {
	Leaderboard(ctx context.Context, userID, hackathonID uuid.UUID, page models.Page) ([]payloads.LeaderboardEntry, error)
}

// HackathonsResponse wraps a list of hackathon cards
// swagger:model HackathonsResponse
type HackathonsResponse struct {
	Hackathons []payloads.Hackathon `json:"hackathons"`
}

// SearchResponse wraps hackathon search results
// swagger:model SearchResponse
type SearchResponse struct {
	Hackathons []payloads.SearchResult `json:"hackathons"`
}

// LeaderboardResponse wraps a leaderboard page
// swagger:model LeaderboardResponse
type LeaderboardResponse struct {
	Leaderboard []payloads.LeaderboardEntry `json:"leaderboard"`
}

// NewUpcomingHackathonsHandler returns an HTTP handler listing the caller's upcoming hackathons.
// @Summary Upcoming hackathons
// @Description Hackathons the caller's teams are entered in that have not ended, by start date.
// @Tags hackathons
// @Produce json
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Limit (1-50)" default(10)
// @Success 200 {object} handlers.HackathonsResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid pagination"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /user/hackathons [get]
// @Security BearerAuth
func NewUpcomingHackathonsHandler(svc UpcomingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		page, err := parsePagination(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidPagination)
			return
		}

		hackathons, err := svc.Upcoming(r.Context(), userID, page)
		if err != nil {
			if viewerGone(w, err) {
				return
			}
			internalError(w, "failed to list upcoming hackathons", err)
			return
		}
		writeJSON(w, http.StatusOK, HackathonsResponse{Hackathons: orEmpty(hackathons)})
	}
}

// NewPastHackathonsHandler returns an HTTP handler listing the caller's finished hackathons.
// @Summary Past hackathons
// @Description Hackathons the caller took part in that have ended, most recent first, with placement.
// @Tags hackathons
// @Produce json
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Limit (1-50)" default(10)
// @Success 200 {object} handlers.HackathonsResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid pagination"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /user/past-hackathons [get]
// @Security BearerAuth
func NewPastHackathonsHandler(svc PastLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		page, err := parsePagination(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidPagination)
			return
		}

		hackathons, err := svc.Past(r.Context(), userID, page)
		if err != nil {
			if viewerGone(w, err) {
				return
			}
			internalError(w, "failed to list past hackathons", err)
			return
		}
		writeJSON(w, http.StatusOK, HackathonsResponse{Hackathons: orEmpty(hackathons)})
	}
}

// NewHackathonSearchHandler returns an HTTP handler searching hackathons by name.
// @Summary Search hackathons
// @Description Case-insensitive name search ranked by participant count, each result with a top-10 leaderboard.
// @Tags hackathons
// @Produce json
// @Param query query string false "Name substring"
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Limit (1-50)" default(10)
// @Success 200 {object} handlers.SearchResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid pagination"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /hackathons [get]
// @Security BearerAuth
func NewHackathonSearchHandler(svc HackathonSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		page, err := parsePagination(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidPagination)
			return
		}
		query := r.URL.Query().Get("query")

		results, err := svc.Search(r.Context(), userID, query, page)
		if err != nil {
			if viewerGone(w, err) {
				return
			}
			internalError(w, "failed to search hackathons", err)
			return
		}
		writeJSON(w, http.StatusOK, SearchResponse{Hackathons: orEmpty(results)})
	}
}

// NewLeaderboardHandler returns an HTTP handler for one hackathon's leaderboard.
// @Summary Hackathon leaderboard
// @Description Placed teams ordered by placement.
// @Tags hackathons
// @Produce json
// @Param id path string true "Hackathon UUID"
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Limit (1-50)" default(10)
// @Success 200 {object} handlers.LeaderboardResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid pagination"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Hackathon not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /hackathon/{id}/leaderboard [get]
// @Security BearerAuth
func NewLeaderboardHandler(svc LeaderboardReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		page, err := parsePagination(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidPagination)
			return
		}
		hackathonID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusNotFound, "Hackathon not found")
			return
		}

		board, err := svc.Leaderboard(r.Context(), userID, hackathonID, page)
		if err != nil {
			switch {
			case viewerGone(w, err):
			case errors.Is(err, services.ErrHackathonNotFound):
				writeError(w, http.StatusNotFound, "Hackathon not found")
			default:
				internalError(w, "failed to get leaderboard", err)
			}
			return
		}
		writeJSON(w, http.StatusOK, LeaderboardResponse{Leaderboard: orEmpty(board)})
	}
}
