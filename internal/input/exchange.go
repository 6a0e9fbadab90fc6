// Package input turns global keyboard and mouse activity into hits.
package input

import "sync/atomic"

// Exchange hands hits from the hook goroutine to the game loop. It is
// written by exactly one producer and read by exactly one consumer.
type Exchange struct {
	hits    atomic.Uint64
	pending atomic.Bool
}

// Snapshot is what the consumer sees on one tick.
type Snapshot struct {
	Hits    uint64
	Pending bool
}

// Record counts one input event and raises the pending flag.
func (e *Exchange) Record() {
	e.hits.Add(1)
	e.pending.Store(true)
}

// Take reads the counter and clears the pending flag in one swap, so a
// hit recorded after the swap is seen on the next tick.
func (e *Exchange) Take() Snapshot {
	pending := e.pending.Swap(false)
	return Snapshot{Hits: e.hits.Load(), Pending: pending}
}

// Hits returns the counter without touching the flag.
func (e *Exchange) Hits() uint64 {
	return e.hits.Load()
}
