package bookmark

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// MemoryStore keeps bookmarks for the lifetime of the process.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]Bookmark
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]Bookmark)}
}

func (s *MemoryStore) Set(_ context.Context, b *Bookmark) error {
	if err := ValidateName(b.Name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[b.Name] = *b
	return nil
}

func (s *MemoryStore) Get(_ context.Context, name string) (*Bookmark, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.items[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return &b, nil
}

func (s *MemoryStore) Delete(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[name]; !ok {
		return fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	delete(s.items, name)
	return nil
}

// List returns bookmarks sorted by name.
func (s *MemoryStore) List(_ context.Context) ([]*Bookmark, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Bookmark, 0, len(s.items))
	for _, b := range s.items {
		b := b
		out = append(out, &b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
