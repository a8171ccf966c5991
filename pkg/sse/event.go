package sse

import "time"

// EventType identifies the SSE event name the Datastar client listens for.
type EventType string

// Event type constants.
const (
	// EventFragment carries an HTML fragment and merge directives.
	EventFragment EventType = "datastar-fragment"

	// EventSignal carries a JSON patch for the client-side store.
	EventSignal EventType = "datastar-signal"
)

// MergeMode controls how the client merges a fragment into the DOM.
type MergeMode string

// Merge mode constants. The values are the exact wire strings.
const (
	// MergeMorph morphs the target element in place, preserving state
	// such as focus and input values. This is the client default.
	MergeMorph MergeMode = "morph_element"

	// MergeInner replaces the target's inner HTML.
	MergeInner MergeMode = "inner_element"

	// MergeOuter replaces the target element entirely.
	MergeOuter MergeMode = "outer_element"

	// MergePrepend inserts the fragment as the target's first child.
	MergePrepend MergeMode = "prepend_element"

	// MergeAppend inserts the fragment as the target's last child.
	MergeAppend MergeMode = "append_element"

	// MergeBefore inserts the fragment before the target.
	MergeBefore MergeMode = "before_element"

	// MergeAfter inserts the fragment after the target.
	MergeAfter MergeMode = "after_element"

	// MergeDelete removes the target element.
	MergeDelete MergeMode = "delete_element"

	// MergeUpsertAttributes copies the fragment's attributes onto the
	// target without touching its children.
	MergeUpsertAttributes MergeMode = "upsert_attributes"
)

// Event is a single outgoing Datastar event.
//
// Construct events with Fragment or Signal rather than filling the struct
// directly; the constructors keep Type consistent with the payload.
type Event struct {
	// Type discriminates fragment and signal events.
	Type EventType

	// Fragment is the HTML payload for fragment events.
	Fragment string

	// Store is the signal payload for signal events. It is JSON-encoded
	// on the wire with map keys sorted, so output is deterministic.
	Store map[string]any

	// Merge selects the client-side merge strategy. Empty means the
	// client default (morph).
	Merge MergeMode

	// Selector targets a CSS selector instead of the fragment's own id.
	Selector string

	// Settle is how long the client lets the fragment settle before
	// final class swaps. Zero means the client default.
	Settle time.Duration

	// ViewTransitions controls the View Transitions API. Nil omits the
	// directive entirely (client default applies).
	ViewTransitions *bool

	// Redirect asks the client to navigate to the given URL.
	Redirect string

	// Error surfaces an error message to the client.
	Error string
}

// Option configures an Event at construction time.
type Option func(*Event)

// WithMerge sets the merge mode.
func WithMerge(mode MergeMode) Option {
	return func(e *Event) {
		e.Merge = mode
	}
}

// WithSelector sets the target CSS selector.
func WithSelector(selector string) Option {
	return func(e *Event) {
		e.Selector = selector
	}
}

// WithSettle sets the settle duration. It is emitted in milliseconds.
func WithSettle(d time.Duration) Option {
	return func(e *Event) {
		e.Settle = d
	}
}

// WithViewTransitions enables or disables view transitions. Unlike the
// other options this is tri-state: not calling it leaves the directive
// off the wire.
func WithViewTransitions(enabled bool) Option {
	return func(e *Event) {
		e.ViewTransitions = &enabled
	}
}

// WithRedirect asks the client to navigate to url.
func WithRedirect(url string) Option {
	return func(e *Event) {
		e.Redirect = url
	}
}

// WithError attaches an error message directive.
func WithError(msg string) Option {
	return func(e *Event) {
		e.Error = msg
	}
}

// Fragment creates a fragment event for the given HTML.
func Fragment(html string, opts ...Option) *Event {
	e := &Event{
		Type:     EventFragment,
		Fragment: html,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Signal creates a signal event patching the client store.
func Signal(store map[string]any) *Event {
	return &Event{
		Type:  EventSignal,
		Store: store,
	}
}
