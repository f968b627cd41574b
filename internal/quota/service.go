package quota

import (
	"context"
	"fmt"
)

// Service guards suggestion requests with a monthly allowance per owner.
// A request is charged up front with Use and handed back with Refund when the
// upstream call never produced an answer.
type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Use charges one request to owner. First-time owners start with the full allowance.
func (s *Service) Use(ctx context.Context, owner string) error {
	if err := s.store.Use(ctx, owner); err != nil {
		return err
	}
	return nil
}

// Refund returns one request charged by Use in the current month.
func (s *Service) Refund(ctx context.Context, owner string) error {
	if err := s.store.Refund(ctx, owner); err != nil {
		return fmt.Errorf("quota: refund %s: %w", owner, err)
	}
	return nil
}
