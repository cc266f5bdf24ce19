// Package task defines suspendable computations driven by the minirt
// executor.
//
// A computation is any value implementing Future.  Every call to Resume makes
// as much progress as it can and reports either Ready with a result, which is
// terminal, or Pending, which asks the caller to try again later.  Before
// returning Pending a computation invokes the Waker it was handed; the wakers
// used in this module fire immediately, so Pending means "retry soon" rather
// than "wait for an external event".
//
// Computations have no error channel: one that fails must either complete
// with a degenerate result or never return.  Blocking work done inside a
// single Resume call stalls whoever is driving it.
package task
