// Package demo implements the Datastar example application served by the
// demo binary: an HTML page whose interactions round-trip through
// server-sent events, plus a live feed stream.
package demo
