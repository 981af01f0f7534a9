package httpserver

import (
	"context"
	"net/http"
	"time"
)

type healthPayload struct {
	Healthy   bool      `json:"healthy"`
	Service   string    `json:"service"`
	CheckedAt time.Time `json:"checked_at"`
	Error     string    `json:"error,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	payload := healthPayload{
		Healthy:   true,
		Service:   s.serviceName,
		CheckedAt: time.Now().UTC(),
	}
	if s.health != nil {
		if err := s.health.Ping(ctx); err != nil {
			s.logger.Error("health check failed",
				"event", "health_check_failed",
				"module", "internal/platform/httpserver",
				"layer", "platform",
				"error", err.Error(),
			)
			payload.Healthy = false
			payload.Error = err.Error()
			writeJSON(w, http.StatusServiceUnavailable, payload)
			return
		}
	}
	writeJSON(w, http.StatusOK, payload)
}
