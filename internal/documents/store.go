package documents

import (
	"context"
	"sync"
)

// Store is a concurrency-safe in-memory registry of documents. Records keep
// insertion order for listing and are never mutated in place.
type Store struct {
	mu   sync.RWMutex
	docs []Document
	ids  map[string]struct{}
}

// NewStore constructs an empty Store.
func NewStore() *Store {
	return &Store{
		ids: make(map[string]struct{}),
	}
}

// Insert appends doc to the registry. It fails with ErrDuplicateID if the
// identifier is already present.
func (s *Store) Insert(ctx context.Context, doc Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.ids[doc.ID]; exists {
		return ErrDuplicateID
	}
	s.ids[doc.ID] = struct{}{}
	s.docs = append(s.docs, doc)
	return nil
}

// Get returns the document with the given id, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, exists := s.ids[id]; !exists {
		return Document{}, ErrNotFound
	}
	for i := range s.docs {
		if s.docs[i].ID == id {
			return s.docs[i], nil
		}
	}
	return Document{}, ErrNotFound
}

// List returns a snapshot of all documents in insertion order. The returned
// slice is a copy and safe to use without further locking.
func (s *Store) List(ctx context.Context) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Document, len(s.docs))
	copy(out, s.docs)
	return out, nil
}

// Remove atomically removes and returns the document with the given id, or
// ErrNotFound.
func (s *Store) Remove(ctx context.Context, id string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.ids[id]; !exists {
		return Document{}, ErrNotFound
	}
	for i := range s.docs {
		if s.docs[i].ID == id {
			doc := s.docs[i]
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			delete(s.ids, id)
			return doc, nil
		}
	}
	return Document{}, ErrNotFound
}

// Len reports the number of stored documents.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}
