package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/hackhub/internal/logger"
)

//go:generate mockgen -source=health.go -destination=health_mock_test.go -package=handlers

// Pinger checks that a backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse reports service liveness
// swagger:model HealthResponse
type HealthResponse struct {
	// default: ok
	Status string `json:"status"`
}

// NewHealthHandler returns an HTTP handler reporting whether the database answers.
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Failure 503 {object} handlers.HealthResponse
// @Router /health [get]
func NewHealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			logger.Log.Errorw("health check failed", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
