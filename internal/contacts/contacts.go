// README: Emergency contacts collaborator; per-owner contact lists and SOS alert composition.
package contacts

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	ErrNotFound   = errors.New("contacts: contact not found")
	ErrBadOwner   = errors.New("contacts: owner required")
	ErrNoContacts = errors.New("contacts: no emergency contacts")

	ErrBadLocation = errors.New("contacts: invalid location")
)

var validate = validator.New()

// Contact is one emergency contact. Email is required because alerts go out by mail;
// the phone number is informational.
type Contact struct {
	ID        string    `json:"id"`
	Owner     string    `json:"owner"`
	Name      string    `json:"name" validate:"required,max=120"`
	Email     string    `json:"email" validate:"required,email"`
	Phone     string    `json:"phone,omitempty" validate:"omitempty,max=32"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewContact trims the inputs and stamps an id. Call Validate before storing.
func NewContact(owner, name, email, phone string, now time.Time) Contact {
	return Contact{
		ID:        uuid.NewString(),
		Owner:     owner,
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		Phone:     strings.TrimSpace(phone),
		CreatedAt: now.UTC(),
	}
}

func (c Contact) Validate() error {
	return validate.Struct(c)
}

// Store persists contacts in insertion order. Identity is always passed in explicitly.
type Store interface {
	Add(ctx context.Context, owner string, c Contact) error
	List(ctx context.Context, owner string) ([]Contact, error)
	Delete(ctx context.Context, owner, id string) error
}
