// Package executor drives suspendable computations on the calling goroutine.
//
// Background tasks are submitted to a FIFO ready queue.  Drive resumes a root
// computation and, every time the root reports Pending, gives each task that
// is queued at that instant exactly one resume attempt before retrying the
// root.  Drive returns as soon as the root completes; tasks still queued at
// that point are abandoned and never resumed.
//
// Nothing runs in parallel: a task that blocks inside Resume blocks the whole
// executor.  There is no cancellation, no timeout and no starvation
// detection, so a root that never completes keeps Drive spinning.
package executor
