package server

import (
	"encoding/json"
	"net/http"
	"time"
)

// HealthController reports liveness plus process uptime and environment.
type HealthController struct {
	started     time.Time
	environment string
}

func NewHealthController(environment string) *HealthController {
	return &HealthController{
		started:     time.Now(),
		environment: environment,
	}
}

func (h *HealthController) Handle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"uptime":      time.Since(h.started).Seconds(),
		"environment": h.environment,
	})
}
