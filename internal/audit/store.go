package audit

import (
	"context"
	"sync"
)

type Store interface {
	Append(ctx context.Context, event Event) error
	ListRecent(ctx context.Context, limit int) ([]Event, error)
	ListByDocument(ctx context.Context, documentID string) ([]Event, error)
}

// DefaultCapacity bounds the in-memory trail kept by the server.
const DefaultCapacity = 10000

type InMemoryStore struct {
	mu       sync.RWMutex
	events   []Event
	capacity int
}

// NewInMemoryStore keeps every event.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

// NewBoundedStore keeps at most capacity events, evicting the oldest first.
func NewBoundedStore(capacity int) *InMemoryStore {
	return &InMemoryStore{capacity: capacity}
}

func (s *InMemoryStore) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	if s.capacity > 0 && len(s.events) > s.capacity {
		s.events = append(s.events[:0:0], s.events[len(s.events)-s.capacity:]...)
	}
	return nil
}

// ListByDocument returns every event recorded for a document, oldest first.
func (s *InMemoryStore) ListByDocument(_ context.Context, documentID string) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []Event{}
	for _, e := range s.events {
		if e.DocumentID == documentID {
			out = append(out, e)
		}
	}
	return out, nil
}

// ListRecent returns up to limit of the newest events, oldest first. A
// non-positive limit returns everything.
func (s *InMemoryStore) ListRecent(_ context.Context, limit int) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	start := 0
	if limit > 0 && len(s.events) > limit {
		start = len(s.events) - limit
	}
	return append([]Event{}, s.events[start:]...), nil
}
