package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// HeartbeatService expõe o último estado conhecido do warehouse
type HeartbeatService interface {
	GetStatus() map[string]any
	TriggerManualCheck(ctx context.Context)
}

func HealthcheckHandler(heartbeat HeartbeatService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := map[string]any{
			"status": "ok",
			"time":   time.Now(),
		}
		if heartbeat != nil {
			response["warehouse"] = heartbeat.GetStatus()
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}

// TriggerHeartbeat dispara um ping manual no warehouse
func TriggerHeartbeat(heartbeat HeartbeatService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if heartbeat == nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		heartbeat.TriggerManualCheck(r.Context())
		w.WriteHeader(http.StatusAccepted)
	})
}
