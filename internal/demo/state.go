package demo

import "sync"

// FeedState tracks whether the feed is broadcasting and numbers the
// events it emits. The zero value is an inactive feed.
type FeedState struct {
	mu   sync.Mutex
	send bool
	n    int
}

// Toggle flips the broadcast flag and returns the new value.
func (s *FeedState) Toggle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.send = !s.send
	return s.send
}

// Active reports whether the feed is currently broadcasting.
func (s *FeedState) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.send
}

// Next increments and returns the event counter.
func (s *FeedState) Next() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return s.n
}
