package rest

import (
	"net/http"
	"time"
)

// breakerStater reports the state of the dictionary collaborator's circuit
// breaker.
type breakerStater interface {
	BreakerState() string
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	dict    breakerStater
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(dict breakerStater, version string) *HealthHandler {
	return &HealthHandler{dict: dict, version: version}
}

// HealthResponse is the JSON response for the health endpoints.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. The service is ready as long as it is up:
// the dictionary collaborator is optional, so its breaker state never blocks
// readiness.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check. Includes version and the dictionary
// breaker state; an open breaker degrades the status but keeps HTTP 200,
// since the service still answers in analysis-only mode.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components := make(map[string]CompStatus)
	status := "ok"

	state := h.dict.BreakerState()
	if state == "open" {
		components["dictionary"] = CompStatus{Status: "degraded", Detail: "circuit breaker open"}
		status = "degraded"
	} else {
		components["dictionary"] = CompStatus{Status: "ok", Detail: "breaker " + state}
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}
