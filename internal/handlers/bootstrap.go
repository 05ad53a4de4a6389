package handlers

import "net/http"

// NewInitHandler returns an HTTP handler that rebuilds the bootstrap payload for a live session.
// @Summary Session bootstrap
// @Description Returns the caller's profile, up to five upcoming hackathons and five recent friends.
// @Tags session
// @Produce json
// @Success 200 {object} payloads.Bootstrap "Bootstrap payload"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /init [get]
// @Security BearerAuth
func NewInitHandler(bootstrap BootstrapBuilder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		payload, err := bootstrap.Build(r.Context(), userID)
		if err != nil {
			if viewerGone(w, err) {
				return
			}
			internalError(w, "failed to build bootstrap payload", err)
			return
		}

		writeJSON(w, http.StatusOK, payload)
	}
}
