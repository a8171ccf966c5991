// Package middleware provides HTTP middleware for Datastar servers.
//
// Two families are included:
//
//   - Prometheus: request counters and latency histograms, plus helpers
//     for recording stream-level metrics (events sent, active streams)
//     from handler code.
//   - OpenTelemetry: a span per request using the global tracer provider.
//
// Both are standard func(http.Handler) http.Handler middleware and
// compose with chi's Use chain.
package middleware
