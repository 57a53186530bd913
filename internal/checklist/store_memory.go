package checklist

import "sync"

// InMemoryStore owns the live checklist for the process. The mutex keeps the
// slice consistent under concurrent HTTP requests; it does not serialise
// pipeline runs, so overlapping Update calls still resolve as last-write-wins.
type InMemoryStore struct {
	mu    sync.RWMutex
	items []Item
}

// NewInMemoryStore creates a store initialised from the template.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{items: Template()}
}

// Checklist returns a snapshot of the current checklist.
func (s *InMemoryStore) Checklist() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Clone(s.items)
}

// Reset discards all progress and restores the template.
func (s *InMemoryStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = Template()
}

// Update replaces the whole checklist. No merge happens: callers pass a
// complete checklist derived from the current one.
func (s *InMemoryStore) Update(items []Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = Clone(items)
}

// UpdateItem merges patch into the item with the given id. Unknown ids are a
// no-op.
func (s *InMemoryStore) UpdateItem(id string, patch ItemPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			patch.apply(&s.items[i])
			return
		}
	}
}

// PendingItems returns the names of required items that are still pending,
// computed from the current state on every call.
func (s *InMemoryStore) PendingItems() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return PendingNames(s.items)
}
