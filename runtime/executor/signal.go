package executor

import "sync/atomic"

// signal is the wake handle handed to every resumed computation.  Pending
// computations are always retried on the next pass, so waking only counts.
type signal struct {
	wakes atomic.Int64
}

func (s *signal) Wake() { s.wakes.Add(1) }

func (s *signal) count() int { return int(s.wakes.Load()) }
