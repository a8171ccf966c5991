package sse

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// captureSender records sent events.
type captureSender struct {
	mu     sync.Mutex
	events []*Event
	fail   error
}

func (c *captureSender) Send(e *Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail != nil {
		return c.fail
	}
	c.events = append(c.events, e)
	return nil
}

func (c *captureSender) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.events)
}

func TestStreamerStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	dst := &captureSender{}

	s := &Streamer{Interval: time.Millisecond}
	done := make(chan error, 1)
	go func() {
		done <- s.Stream(ctx, dst, func(context.Context) (*Event, error) {
			return Signal(map[string]any{"tick": true}), nil
		})
	}()

	// Let a few ticks through, then cancel.
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Stream returned error on cancel: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Stream did not stop after context cancel")
	}

	if dst.count() == 0 {
		t.Errorf("expected at least one event before cancel")
	}
}

func TestStreamerConditionGatesSends(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	dst := &captureSender{}

	calls := 0
	s := &Streamer{
		Interval:  time.Millisecond,
		Condition: func() bool { return false },
	}
	err := s.Stream(ctx, dst, func(context.Context) (*Event, error) {
		calls++
		return Signal(nil), nil
	})
	if err != nil {
		t.Fatalf("Stream failed: %v", err)
	}

	if calls != 0 {
		t.Errorf("next called %d times despite closed gate", calls)
	}
	if dst.count() != 0 {
		t.Errorf("sent %d events despite closed gate", dst.count())
	}
}

func TestStreamerNilEventSkipsTick(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	dst := &captureSender{}

	s := &Streamer{Interval: time.Millisecond}
	err := s.Stream(ctx, dst, func(context.Context) (*Event, error) {
		return nil, nil
	})
	if err != nil {
		t.Fatalf("Stream failed: %v", err)
	}
	if dst.count() != 0 {
		t.Errorf("sent %d events, want 0", dst.count())
	}
}

func TestStreamerPropagatesNextError(t *testing.T) {
	wantErr := errors.New("feed source gone")
	s := &Streamer{Interval: time.Millisecond}

	err := s.Stream(context.Background(), &captureSender{}, func(context.Context) (*Event, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("Stream error = %v, want %v", err, wantErr)
	}
}

func TestStreamerPropagatesSendError(t *testing.T) {
	wantErr := errors.New("client disconnected")
	dst := &captureSender{fail: wantErr}

	s := &Streamer{Interval: time.Millisecond}
	err := s.Stream(context.Background(), dst, func(context.Context) (*Event, error) {
		return Signal(nil), nil
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("Stream error = %v, want %v", err, wantErr)
	}
}
