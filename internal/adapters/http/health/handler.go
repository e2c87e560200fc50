package health

import (
	"encoding/json"
	"net/http"

	apphealth "github.com/pulselabs/pulse-api/internal/application/health"
)

// Handler bridges HTTP traffic with the health application service.
type Handler struct {
	service *apphealth.Service
}

func NewHandler(service *apphealth.Service) *Handler {
	return &Handler{service: service}
}

// Status serves GET /health. While the service is starting it answers 503 so
// the load balancer keeps it out of rotation; once ready it answers 200 even
// when degraded, since probe failures are folded into the report body.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	report := h.service.Report(r.Context())

	status := http.StatusOK
	if !report.Ready() {
		status = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(report)
}
