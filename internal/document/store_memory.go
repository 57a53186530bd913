package document

import (
	"sync"

	"kycagent/pkg/platform/sentinel"
)

// InMemoryStore keeps documents for the process lifetime in upload order.
// Returned pointers are the stored instances so the text cache sticks.
type InMemoryStore struct {
	mu   sync.RWMutex
	docs []*Document
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

// Add appends doc without validation or uniqueness checks.
func (s *InMemoryStore) Add(doc *Document) *Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = append(s.docs, doc)
	return doc
}

// FindByID returns sentinel.ErrNotFound when no document has the id.
func (s *InMemoryStore) FindByID(id string) (*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, doc := range s.docs {
		if doc.ID == id {
			return doc, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

// List returns a snapshot of the stored documents in insertion order.
func (s *InMemoryStore) List() []*Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Document, len(s.docs))
	copy(out, s.docs)
	return out
}

// Delete removes the first document with the id and reports whether one
// was found.
func (s *InMemoryStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, doc := range s.docs {
		if doc.ID == id {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			return true
		}
	}
	return false
}
