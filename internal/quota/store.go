package quota

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles suggestion_usage persistence.
type Store struct {
	db      *pgxpool.Pool
	monthly int
	now     func() time.Time
}

// NewStore returns a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool, monthly int) *Store {
	if monthly <= 0 {
		monthly = DefaultMonthly
	}
	return &Store{db: db, monthly: monthly, now: time.Now}
}

func (s *Store) month() string {
	return s.now().UTC().Format("2006-01")
}

// Use deducts one request in a single upsert. A missing row is created with the
// allowance minus one; a row from an earlier month is reset before deducting.
// Returns ErrExhausted when the current month's allowance is already spent.
func (s *Store) Use(ctx context.Context, owner string) error {
	tag, err := s.db.Exec(ctx, `
		INSERT INTO suggestion_usage AS u (owner, requests_remaining, last_reset_month)
		VALUES ($3, $2 - 1, $1)
		ON CONFLICT (owner) DO UPDATE SET
			requests_remaining = CASE WHEN u.last_reset_month != $1 THEN $2 - 1 ELSE u.requests_remaining - 1 END,
			last_reset_month = $1
		WHERE u.last_reset_month != $1 OR u.requests_remaining > 0
	`, s.month(), s.monthly, owner)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExhausted
	}
	return nil
}

// Refund adds one request back, capped at the monthly allowance. Rows already
// rolled over to another month are left alone.
func (s *Store) Refund(ctx context.Context, owner string) error {
	_, err := s.db.Exec(ctx, `
		UPDATE suggestion_usage
		SET requests_remaining = LEAST(requests_remaining + 1, $2)
		WHERE owner = $3 AND last_reset_month = $1
	`, s.month(), s.monthly, owner)
	return err
}

// Remaining reports the requests left for owner in the stored month.
func (s *Store) Remaining(ctx context.Context, owner string) (int, error) {
	var n int
	err := s.db.QueryRow(ctx, `SELECT requests_remaining FROM suggestion_usage WHERE owner = $1`, owner).Scan(&n)
	return n, err
}
