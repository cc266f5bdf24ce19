// Package idgen issues identifiers for submitted tasks.  Callers treat the
// values as opaque strings; the generator can be swapped in tests.
package idgen
