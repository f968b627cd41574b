package history

import (
	"context"
	"sync"
)

// MemoryStore keeps history in process memory. Used when no Redis address is configured.
type MemoryStore struct {
	mu      sync.Mutex
	limit   int
	entries map[string][]Entry
}

func NewMemoryStore(limit int) *MemoryStore {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &MemoryStore{limit: limit, entries: make(map[string][]Entry)}
}

func (s *MemoryStore) Add(_ context.Context, owner string, e Entry) error {
	if owner == "" {
		return ErrBadOwner
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	list := append([]Entry{e}, s.entries[owner]...)
	if len(list) > s.limit {
		list = list[:s.limit]
	}
	s.entries[owner] = list
	return nil
}

func (s *MemoryStore) List(_ context.Context, owner string) ([]Entry, error) {
	if owner == "" {
		return nil, ErrBadOwner
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Entry, len(s.entries[owner]))
	copy(out, s.entries[owner])
	return out, nil
}

func (s *MemoryStore) Delete(_ context.Context, owner, id string) error {
	if owner == "" {
		return ErrBadOwner
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.entries[owner]
	for i, e := range list {
		if e.ID == id {
			s.entries[owner] = append(list[:i:i], list[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
