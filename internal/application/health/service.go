package health

import (
	"context"
	"log/slog"
	"time"

	corehealth "github.com/pulselabs/pulse-api/internal/core/health"
)

// Pinger is the slice of the database client the health check depends on.
// *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Metadata contains immutable metadata about the running service.
type Metadata struct {
	Service     string
	Version     string
	Environment string
}

// Service computes point-in-time health snapshots by combining the readiness
// gate with a live database probe.
type Service struct {
	meta         Metadata
	gate         *Gate
	pinger       Pinger
	probeTimeout time.Duration
	log          *slog.Logger
	onProbe      func(reachable bool)
}

func NewService(meta Metadata, gate *Gate, pinger Pinger, probeTimeout time.Duration, log *slog.Logger) *Service {
	return &Service{
		meta:         meta,
		gate:         gate,
		pinger:       pinger,
		probeTimeout: probeTimeout,
		log:          log,
	}
}

// OnProbe registers a hook invoked with the outcome of every database probe.
// Used to feed the metrics gauge; must be set before the server starts.
func (s *Service) OnProbe(fn func(reachable bool)) {
	s.onProbe = fn
}

// Report returns the current availability snapshot. It never returns an
// error: probe failures are folded into a degraded report.
//
// While the gate is still starting the database is not probed at all, so a
// transient connection error cannot mask the startup-delay semantics.
func (s *Service) Report(ctx context.Context) corehealth.Report {
	startedAt := s.gate.StartedAt()
	uptime := int64(time.Since(startedAt).Seconds())
	if uptime < 0 {
		uptime = 0
	}

	report := corehealth.Report{
		Service:     s.meta.Service,
		Version:     s.meta.Version,
		Environment: s.meta.Environment,
		StartedAt:   startedAt,
		UptimeSecs:  uptime,
	}

	if !s.gate.Ready() {
		report.Status = corehealth.StatusStarting
		return report
	}

	probeCtx, cancel := context.WithTimeout(ctx, s.probeTimeout)
	defer cancel()

	if err := s.pinger.Ping(probeCtx); err != nil {
		s.log.Warn("database probe failed", "error", err)
		if s.onProbe != nil {
			s.onProbe(false)
		}
		report.Status = corehealth.StatusDegraded
		report.Database = corehealth.DatabaseUnreachable
		return report
	}

	if s.onProbe != nil {
		s.onProbe(true)
	}
	report.Status = corehealth.StatusHealthy
	report.Database = corehealth.DatabaseConnected
	return report
}
