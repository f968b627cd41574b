package history

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each owner's history in a capped Redis list at history:{owner}.
type RedisStore struct {
	rdb   *redis.Client
	limit int
}

func NewRedisStore(rdb *redis.Client, limit int) *RedisStore {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &RedisStore{rdb: rdb, limit: limit}
}

func historyKey(owner string) string {
	return "history:" + owner
}

// Add pushes e to the head of the owner's list and trims it to the limit.
func (s *RedisStore) Add(ctx context.Context, owner string, e Entry) error {
	if owner == "" {
		return ErrBadOwner
	}
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("history: marshal entry: %w", err)
	}

	key := historyKey(owner)
	pipe := s.rdb.TxPipeline()
	pipe.LPush(ctx, key, data)
	pipe.LTrim(ctx, key, 0, int64(s.limit-1))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("history: add: %w", err)
	}
	return nil
}

func (s *RedisStore) List(ctx context.Context, owner string) ([]Entry, error) {
	if owner == "" {
		return nil, ErrBadOwner
	}
	raw, err := s.rdb.LRange(ctx, historyKey(owner), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("history: list: %w", err)
	}

	out := make([]Entry, 0, len(raw))
	for _, item := range raw {
		var e Entry
		if err := json.Unmarshal([]byte(item), &e); err != nil {
			// Skip entries written by an incompatible version.
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// Delete removes the entry with id. LREM needs the exact stored value, so the list
// is scanned for it first.
func (s *RedisStore) Delete(ctx context.Context, owner, id string) error {
	if owner == "" {
		return ErrBadOwner
	}
	key := historyKey(owner)
	raw, err := s.rdb.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return fmt.Errorf("history: delete: %w", err)
	}
	for _, item := range raw {
		var e Entry
		if err := json.Unmarshal([]byte(item), &e); err != nil || e.ID != id {
			continue
		}
		n, err := s.rdb.LRem(ctx, key, 1, item).Result()
		if err != nil {
			return fmt.Errorf("history: delete: %w", err)
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	}
	return ErrNotFound
}
