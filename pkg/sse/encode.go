package sse

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// String returns the full wire representation of the event, including the
// trailing blank line that terminates an SSE event.
func (e *Event) String() string {
	var b strings.Builder
	e.encode(&b)
	return b.String()
}

// WriteTo writes the wire representation of the event to w.
func (e *Event) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, e.String())
	return int64(n), err
}

// encode appends the event to b in wire order.
func (e *Event) encode(b *strings.Builder) {
	b.WriteString("event: ")
	b.WriteString(string(e.Type))
	b.WriteByte('\n')

	if e.Type == EventSignal {
		b.WriteString("data: ")
		b.WriteString(marshalStore(e.Store))
		b.WriteString("\n\n")
		return
	}

	for _, line := range e.dataLines() {
		b.WriteString("data: ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
}

// dataLines returns the directive lines for a fragment event, in wire
// order: merge, selector, settle, vt, redirect, error, then the fragment
// itself (one line per line of HTML).
func (e *Event) dataLines() []string {
	lines := make([]string, 0, 8)

	if e.Merge != "" {
		lines = append(lines, "merge "+string(e.Merge))
	}
	if e.Selector != "" {
		lines = append(lines, "selector "+e.Selector)
	}
	if e.Settle > 0 {
		lines = append(lines, "settle "+strconv.FormatInt(e.Settle.Milliseconds(), 10))
	}
	if e.ViewTransitions != nil {
		lines = append(lines, "vt "+strconv.FormatBool(*e.ViewTransitions))
	}
	if e.Redirect != "" {
		lines = append(lines, "redirect "+e.Redirect)
	}
	if e.Error != "" {
		lines = append(lines, "error "+e.Error)
	}

	// A literal newline would terminate the data line early and corrupt
	// the stream, so multi-line HTML becomes one fragment line each.
	for _, frag := range strings.Split(e.Fragment, "\n") {
		lines = append(lines, "fragment "+frag)
	}
	return lines
}

// marshalStore encodes a signal store as JSON. Map keys are sorted by
// encoding/json, so the output is deterministic.
func marshalStore(store map[string]any) string {
	if store == nil {
		return "{}"
	}
	data, err := json.Marshal(store)
	if err != nil {
		// Only non-encodable values (channels, funcs) end up here.
		return fmt.Sprintf(`{"error":%q}`, err.Error())
	}
	return string(data)
}
