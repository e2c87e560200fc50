package health

import "time"

// Service availability as reported to the load balancer.
const (
	StatusStarting = "starting"
	StatusHealthy  = "healthy"
	StatusDegraded = "degraded"
)

// Database probe outcomes.
const (
	DatabaseConnected   = "connected"
	DatabaseUnreachable = "unreachable"
)

// Report captures the state of the service at a moment in time. It is built
// fresh per request and never persisted.
type Report struct {
	Service     string    `json:"service"`
	Version     string    `json:"version"`
	Environment string    `json:"environment"`
	Status      string    `json:"status"`
	StartedAt   time.Time `json:"startedAt"`
	UptimeSecs  int64     `json:"uptimeSeconds"`
	Database    string    `json:"database,omitempty"`
}

// Ready reports whether the service has left the startup window. Both healthy
// and degraded count as ready; only starting does not.
func (r Report) Ready() bool {
	return r.Status != StatusStarting
}
