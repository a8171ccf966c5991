// Package datastar provides the public API for building Datastar
// server-sent event responses.
//
// This is the recommended import for most applications:
//
//	import "github.com/datastar-go/datastar"
//
// Usage:
//
//	w, err := datastar.NewWriter(rw)
//	w.SendFragment(`<div id="hello">Hello</div>`)
//	w.SendSignal(map[string]any{"count": 1})
package datastar

import (
	"net/http"

	"github.com/datastar-go/datastar/pkg/el"
	"github.com/datastar-go/datastar/pkg/sse"
)

// =============================================================================
// Events (re-export from pkg/sse)
// =============================================================================

// Event is a single Datastar server-sent event.
type Event = sse.Event

// EventType discriminates fragment and signal events.
type EventType = sse.EventType

// Event type constants
const (
	EventFragment = sse.EventFragment
	EventSignal   = sse.EventSignal
)

// Fragment builds a fragment event carrying an HTML snippet.
var Fragment = sse.Fragment

// Signal builds a signal event carrying a store patch.
var Signal = sse.Signal

// Option configures an Event.
type Option = sse.Option

// Event options
var (
	WithMerge           = sse.WithMerge
	WithSelector        = sse.WithSelector
	WithSettle          = sse.WithSettle
	WithViewTransitions = sse.WithViewTransitions
	WithRedirect        = sse.WithRedirect
	WithError           = sse.WithError
)

// MergeMode controls how a fragment is applied to the DOM.
type MergeMode = sse.MergeMode

// Merge mode constants
const (
	MergeMorph            = sse.MergeMorph
	MergeInner            = sse.MergeInner
	MergeOuter            = sse.MergeOuter
	MergePrepend          = sse.MergePrepend
	MergeAppend           = sse.MergeAppend
	MergeBefore           = sse.MergeBefore
	MergeAfter            = sse.MergeAfter
	MergeDelete           = sse.MergeDelete
	MergeUpsertAttributes = sse.MergeUpsertAttributes
)

// =============================================================================
// Transport (re-export from pkg/sse)
// =============================================================================

// Writer streams events over an HTTP response.
type Writer = sse.Writer

// NewWriter wraps an http.ResponseWriter for SSE streaming.
func NewWriter(w http.ResponseWriter) (*Writer, error) {
	return sse.NewWriter(w)
}

// ErrStreamingUnsupported is returned when the ResponseWriter cannot flush.
var ErrStreamingUnsupported = sse.ErrStreamingUnsupported

// Streamer drives a periodic event stream.
type Streamer = sse.Streamer

// Sender is the destination side of a stream.
type Sender = sse.Sender

// NextFunc produces the next event for a stream tick.
type NextFunc = sse.NextFunc

// Conn streams events over a WebSocket.
type Conn = sse.Conn

// NewConn wraps a websocket connection for event delivery.
var NewConn = sse.NewConn

// =============================================================================
// HTML (re-export from pkg/el)
// =============================================================================

// VNode is an HTML document tree node.
type VNode = el.VNode

// Attr is a single HTML attribute.
type Attr = el.Attr

// Render serializes a node tree to HTML.
var Render = el.Render

// RenderPage serializes a node tree with a doctype prefix.
var RenderPage = el.RenderPage
