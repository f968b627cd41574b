package contacts

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each owner's contacts in a Redis list at contacts:{owner}, oldest first.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func contactsKey(owner string) string {
	return "contacts:" + owner
}

func (s *RedisStore) Add(ctx context.Context, owner string, c Contact) error {
	if owner == "" {
		return ErrBadOwner
	}
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("contacts: marshal: %w", err)
	}
	if err := s.rdb.RPush(ctx, contactsKey(owner), data).Err(); err != nil {
		return fmt.Errorf("contacts: add: %w", err)
	}
	return nil
}

func (s *RedisStore) List(ctx context.Context, owner string) ([]Contact, error) {
	if owner == "" {
		return nil, ErrBadOwner
	}
	raw, err := s.rdb.LRange(ctx, contactsKey(owner), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("contacts: list: %w", err)
	}

	out := make([]Contact, 0, len(raw))
	for _, item := range raw {
		var c Contact
		if err := json.Unmarshal([]byte(item), &c); err != nil {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

// Delete removes the contact with id; the stored value is looked up first for LREM.
func (s *RedisStore) Delete(ctx context.Context, owner, id string) error {
	if owner == "" {
		return ErrBadOwner
	}
	key := contactsKey(owner)
	raw, err := s.rdb.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return fmt.Errorf("contacts: delete: %w", err)
	}
	for _, item := range raw {
		var c Contact
		if err := json.Unmarshal([]byte(item), &c); err != nil || c.ID != id {
			continue
		}
		n, err := s.rdb.LRem(ctx, key, 1, item).Result()
		if err != nil {
			return fmt.Errorf("contacts: delete: %w", err)
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	}
	return ErrNotFound
}
