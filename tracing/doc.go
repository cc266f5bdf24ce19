// Package tracing integrates OpenTelemetry with the executor.  Every drive
// call can be recorded as a span; applications that do not need tracing
// never have to initialise a provider.
package tracing
