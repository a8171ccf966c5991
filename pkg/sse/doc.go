// Package sse implements the Datastar Server-Sent Events wire format.
//
// The Datastar browser library listens for two event types on an SSE
// stream and applies them to the live page:
//
//   - datastar-fragment: an HTML fragment plus instructions for how to
//     merge it into the DOM (morph, inner, prepend, ...)
//   - datastar-signal: a JSON object patching named reactive values in
//     the client-side store
//
// # Wire Format
//
// A fragment event is a standard SSE event whose data lines carry one
// directive each, fragment last:
//
//	event: datastar-fragment
//	data: merge prepend_element
//	data: selector #feeds
//	data: fragment <div id="feed">1</div>
//
// A signal event carries a single JSON data line:
//
//	event: datastar-signal
//	data: {"send":true}
//
// Optional directives (merge, selector, settle, vt, redirect, error) are
// omitted when unset; the client falls back to its defaults (morph merge,
// fragment id as target).
//
// # Usage
//
//	w, err := sse.NewWriter(rw)
//	if err != nil { ... }
//	w.SendFragment(`<div id="t">hi</div>`, sse.WithMerge(sse.MergeInner))
//	w.SendSignal(map[string]any{"send": true})
//
// Long-lived streams use Streamer, which ticks at a fixed interval and
// respects a gate condition and context cancellation.
package sse
