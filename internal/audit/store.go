package audit

import (
	"context"
	"sync"
)

// Store is a sink for audit events. Implementations must be safe for
// concurrent use by the worker.
type Store interface {
	Append(ctx context.Context, event Event) error
}

// MemoryStore keeps events in memory for tests and local development.
type MemoryStore struct {
	mu     sync.RWMutex
	events []Event
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// Events returns a copy of everything appended so far.
func (s *MemoryStore) Events() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}
