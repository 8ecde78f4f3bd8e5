package engine

import (
	"context"
	"log/slog"
	"time"
)

// State is the lifecycle of the background worker.
type State int

const (
	Stopped State = iota
	Running
	Stopping
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopping:
		return "stopping"
	default:
		return "stopped"
	}
}

// State returns the current worker state.
func (e *Engine) State() State {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()
	return e.state
}

// Start launches the background poll worker. Starting a running engine
// is a no-op.
func (e *Engine) Start() {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()
	if e.state != Stopped {
		return
	}

	e.stopc = make(chan struct{})
	e.donec = make(chan struct{})
	e.state = Running
	go e.run(e.stopc, e.donec)
	slog.Info("clipboard monitoring started", "interval", e.interval)
}

// Stop requests cooperative cancellation and waits up to the join bound
// for the worker to exit, proceeding regardless afterwards. In-flight
// I/O is never interrupted.
func (e *Engine) Stop() {
	e.stateMu.Lock()
	if e.state != Running {
		e.stateMu.Unlock()
		return
	}
	e.state = Stopping
	close(e.stopc)
	done := e.donec
	e.stateMu.Unlock()

	select {
	case <-done:
	case <-time.After(e.joinTimeout):
		slog.Warn("poll worker did not stop within the join bound")
	}

	e.stateMu.Lock()
	e.state = Stopped
	e.stateMu.Unlock()
	slog.Info("clipboard monitoring stopped")
}

// run is the poll loop. The cancellation signal is checked once per
// interval, never mid-I/O.
func (e *Engine) run(stopc <-chan struct{}, donec chan<- struct{}) {
	defer close(donec)

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopc:
			return
		case <-ticker.C:
			e.tick(context.Background())
		}
	}
}

// tick processes the clipboard when its sequence moved since the last
// observation. The last-seen value is updated unconditionally, even on
// failure or veto, so unhandled content is never reprocessed until the
// clipboard changes again.
func (e *Engine) tick(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("poll tick panicked", "panic", r)
		}
	}()

	seq, err := e.backend.Sequence()
	if err != nil {
		slog.Debug("failed to read clipboard sequence", "error", err)
		return
	}

	if seq != e.lastSeq {
		e.ProcessOnce(ctx)
		e.lastSeq = seq
	}
}
