// Package progress keeps counters describing how far an executor got with
// the work submitted to it.  A tracker travels in the context handed to
// Submit and Drive so callers can observe progress without a global
// registry.
package progress
