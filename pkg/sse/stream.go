package sse

import (
	"context"
	"time"
)

// DefaultInterval is the tick interval used when a Streamer does not set
// its own.
const DefaultInterval = time.Second

// Sender delivers events to a client. Both Writer (SSE) and Conn
// (WebSocket) implement it.
type Sender interface {
	Send(e *Event) error
}

// NextFunc produces the next event for a stream. Returning a nil event
// skips the tick; returning an error ends the stream.
type NextFunc func(ctx context.Context) (*Event, error)

// Streamer repeatedly sends events at a fixed interval while an optional
// gate condition holds.
//
// The zero value streams every DefaultInterval with no gate.
type Streamer struct {
	// Interval is the time between ticks. Zero means DefaultInterval.
	Interval time.Duration

	// Condition gates each tick. When it returns false the tick is
	// skipped without calling next. Nil means always send.
	Condition func() bool
}

// Stream runs the send loop until ctx is cancelled, next fails, or the
// client goes away (send error). Context cancellation is the normal way
// a stream ends and is not reported as an error.
func (s *Streamer) Stream(ctx context.Context, dst Sender, next NextFunc) error {
	interval := s.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if s.Condition != nil && !s.Condition() {
				continue
			}
			e, err := next(ctx)
			if err != nil {
				return err
			}
			if e == nil {
				continue
			}
			if err := dst.Send(e); err != nil {
				return err
			}
		}
	}
}
