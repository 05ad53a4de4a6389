package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/hackhub/internal/models"
	"github.com/sbilibin2017/hackhub/internal/payloads"
)

//go:generate mockgen -source=friends.go -destination=friends_mock_test.go -package=handlers

// FriendLister pages through the user's friendships.
type FriendLister interface {
	List(ctx context.Context, userID uuid.UUID, page models.Page) ([]payloads.Friend, error)
}

// FriendsResponse wraps a page of friends
// swagger:model FriendsResponse
type FriendsResponse struct {
	Friends []payloads.Friend `json:"friends"`
}

// NewFriendsHandler returns an HTTP handler listing the caller's friends, oldest first.
// @Summary Friends
// @Tags social
// @Produce json
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Limit (1-50)" default(10)
// @Success 200 {object} handlers.FriendsResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid pagination"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /user/friends [get]
// @Security BearerAuth
func NewFriendsHandler(svc FriendLister) http.HandlerFunc {
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

		friends, err := svc.List(r.Context(), userID, page)
		if err != nil {
			if viewerGone(w, err) {
				return
			}
			internalError(w, "failed to list friends", err)
			return
		}
		writeJSON(w, http.StatusOK, FriendsResponse{Friends: orEmpty(friends)})
	}
}
