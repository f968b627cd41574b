package contacts

import (
	"context"
	"sync"
)

// MemoryStore keeps contacts in process memory. Used when no Redis address is configured.
type MemoryStore struct {
	mu       sync.Mutex
	contacts map[string][]Contact
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{contacts: make(map[string][]Contact)}
}

func (s *MemoryStore) Add(_ context.Context, owner string, c Contact) error {
	if owner == "" {
		return ErrBadOwner
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts[owner] = append(s.contacts[owner], c)
	return nil
}

func (s *MemoryStore) List(_ context.Context, owner string) ([]Contact, error) {
	if owner == "" {
		return nil, ErrBadOwner
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Contact, len(s.contacts[owner]))
	copy(out, s.contacts[owner])
	return out, nil
}

func (s *MemoryStore) Delete(_ context.Context, owner, id string) error {
	if owner == "" {
		return ErrBadOwner
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.contacts[owner]
	for i, c := range list {
		if c.ID == id {
			s.contacts[owner] = append(list[:i:i], list[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
