package health

import (
	"context"
	"log/slog"
	"time"
)

// Bootstrap waits out the startup delay, runs the one-time initialization
// step, and flips the gate to ready. The step's failure is logged but does
// not hold readiness back: a persistently broken dependency shows up as
// degraded health instead of a service that never joins rotation.
//
// A canceled context aborts the wait and leaves the gate in starting; the
// process is shutting down and must not advertise readiness.
func Bootstrap(ctx context.Context, delay time.Duration, gate *Gate, step func(context.Context) error, log *slog.Logger, onReady func()) {
	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}
	} else if ctx.Err() != nil {
		return
	}

	if step != nil {
		if err := step(ctx); err != nil {
			log.Error("bootstrap failed, serving degraded until the database recovers", "error", err)
		}
	}

	gate.MarkReady()
	if onReady != nil {
		onReady()
	}
	log.Info("service ready", "startup_delay", delay)
}
