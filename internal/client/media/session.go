package media

import (
	"context"
	"sync"
)

// Session holds at most one open stream. Start acquires it, Stop releases
// every track; the owner calls Stop on every exit path.
type Session struct {
	dev Device

	mu     sync.Mutex
	stream Stream
}

func NewSession(dev Device) *Session {
	return &Session{dev: dev}
}

// Start opens the device unless a stream is already held.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stream != nil {
		return nil
	}
	stream, err := s.dev.Open(ctx)
	if err != nil {
		return err
	}
	s.stream = stream
	return nil
}

// Stop releases the held stream. Without one it does nothing.
func (s *Session) Stop() error {
	s.mu.Lock()
	stream := s.stream
	s.stream = nil
	s.mu.Unlock()
	return StopAll(stream)
}

func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stream != nil
}

// Stream returns the held stream, or nil.
func (s *Session) Stream() Stream {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stream
}
