// README: Trip history collaborator; keeps extracted intents per owner, newest first.
package history

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"payana/internal/intent"
)

// Anonymous owns entries recorded without a resolved identity.
const Anonymous = "anonymous"

// DefaultLimit caps how many entries are kept per owner.
const DefaultLimit = 20

var (
	ErrNotFound = errors.New("history: entry not found")
	ErrBadOwner = errors.New("history: owner required")
)

// Entry is one saved trip.
type Entry struct {
	ID          string    `json:"id"`
	Owner       string    `json:"owner"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	Utterance   string    `json:"utterance,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewEntry builds an entry for an extracted intent.
func NewEntry(owner string, ti intent.TripIntent, utterance string, now time.Time) Entry {
	return Entry{
		ID:          uuid.NewString(),
		Owner:       owner,
		Origin:      ti.Origin,
		Destination: ti.Destination,
		Utterance:   utterance,
		CreatedAt:   now.UTC(),
	}
}

// Store persists entries. Identity is always passed in explicitly.
type Store interface {
	Add(ctx context.Context, owner string, e Entry) error
	List(ctx context.Context, owner string) ([]Entry, error)
	Delete(ctx context.Context, owner, id string) error
}
