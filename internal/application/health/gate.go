package health

import (
	"sync/atomic"
	"time"
)

const (
	gateStarting int32 = iota
	gateReady
)

// Gate is the single source of truth for whether the service may claim
// readiness. It is a one-directional state machine: starting → ready, no
// reverse transition. The state lives in an atomic cell owned by the Gate
// value; the bootstrap goroutine is the only writer, handlers only read.
type Gate struct {
	state     atomic.Int32
	startedAt time.Time
}

// NewGate constructs a gate in the starting state and captures the process
// start timestamp. Called exactly once at process start.
func NewGate() *Gate {
	return &Gate{startedAt: time.Now().UTC()}
}

// MarkReady transitions the gate to ready. Idempotent: repeated calls have no
// additional effect.
func (g *Gate) MarkReady() {
	g.state.Store(gateReady)
}

// Ready reports the current readiness. Side-effect free and safe to call from
// any number of in-flight requests.
func (g *Gate) Ready() bool {
	return g.state.Load() == gateReady
}

// StartedAt returns the immutable process start timestamp.
func (g *Gate) StartedAt() time.Time {
	return g.startedAt
}
