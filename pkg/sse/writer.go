package sse

import (
	"errors"
	"net/http"
	"sync"

	"github.com/google/uuid"
)

// ErrStreamingUnsupported is returned by NewWriter when the underlying
// http.ResponseWriter cannot flush (no http.Flusher support).
var ErrStreamingUnsupported = errors.New("sse: response writer does not support streaming")

// Writer sends Datastar events over an HTTP response.
//
// The SSE headers are written once, before the first event. Every event is
// flushed immediately so the client sees it without buffering delays.
// Writer is safe for concurrent use.
type Writer struct {
	rw      http.ResponseWriter
	flusher http.Flusher
	id      string

	mu          sync.Mutex
	wroteHeader bool
}

// NewWriter wraps w for event streaming. It fails if w cannot flush,
// which surfaces misconfigured middleware (e.g. buffering wrappers)
// before any payload is written.
func NewWriter(w http.ResponseWriter) (*Writer, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, ErrStreamingUnsupported
	}
	return &Writer{
		rw:      w,
		flusher: flusher,
		id:      uuid.NewString(),
	}, nil
}

// ID returns the connection id assigned to this stream. It exists for
// log correlation across the lifetime of a long-lived stream.
func (w *Writer) ID() string {
	return w.id
}

// Send writes a single event and flushes it.
func (w *Writer) Send(e *Event) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.writeHeader()
	if _, err := e.WriteTo(w.rw); err != nil {
		return err
	}
	w.flusher.Flush()
	return nil
}

// Flush commits the SSE headers and flushes the response. Long-lived
// streams call this once on open so the client sees the stream start
// even when the first event is some time away.
func (w *Writer) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.writeHeader()
	w.flusher.Flush()
}

func (w *Writer) writeHeader() {
	if w.wroteHeader {
		return
	}
	h := w.rw.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	w.rw.WriteHeader(http.StatusOK)
	w.wroteHeader = true
}

// SendFragment builds a fragment event and sends it.
func (w *Writer) SendFragment(html string, opts ...Option) error {
	return w.Send(Fragment(html, opts...))
}

// SendSignal builds a signal event and sends it.
func (w *Writer) SendSignal(store map[string]any) error {
	return w.Send(Signal(store))
}
