package gateway

import "sync/atomic"

// entryGuard is a single in-flight flag for one transfer entry point. It is
// set on entry and cleared on every exit path; a nested entry while the flag
// is set is rejected rather than queued.
type entryGuard struct {
	inFlight atomic.Bool
}

func (g *entryGuard) acquire() bool {
	return g.inFlight.CompareAndSwap(false, true)
}

func (g *entryGuard) release() {
	g.inFlight.Store(false)
}
