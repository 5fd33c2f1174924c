package pet

import (
	"context"
	"errors"
	"time"
)

// Pet is the canonical catalog record. SecretNotes is only ever exposed
// through the admin projection.
type Pet struct {
	ID          int64
	Name        string
	Type        string
	Breed       string
	Color       string
	Age         float64
	SecretNotes *string
	IsAvailable bool
	Price       *float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Filter describes search constraints. Zero-valued/nil fields impose no
// constraint; all present conditions combine with AND.
type Filter struct {
	Name        string
	Type        string
	Breed       string
	Color       string
	MinAge      *float64
	MaxAge      *float64
	IsAvailable *bool
}

// Update carries a sparse set of changes; nil pointer fields are left
// untouched. For the nullable columns the Set flag distinguishes "absent"
// from an explicit null that clears the value.
type Update struct {
	Name        *string
	Type        *string
	Breed       *string
	Color       *string
	Age         *float64
	IsAvailable *bool

	Price    *float64
	PriceSet bool

	SecretNotes    *string
	SecretNotesSet bool
}

// Empty reports whether the update carries no changes at all.
func (u Update) Empty() bool {
	return u.Name == nil && u.Type == nil && u.Breed == nil && u.Color == nil &&
		u.Age == nil && u.IsAvailable == nil && !u.PriceSet && !u.SecretNotesSet
}

var (
	ErrNotFound      = errors.New("pet not found")
	ErrInvalidFilter = errors.New("invalid search filter")
)

// ErrValidation is a simple validation error.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

// Repository is the persistence port for the pet record store.
type Repository interface {
	Create(ctx context.Context, p Pet) (Pet, error)
	GetByID(ctx context.Context, id int64) (Pet, error)
	Update(ctx context.Context, id int64, upd Update) (Pet, error)
	Delete(ctx context.Context, id int64) (Pet, error)
	Search(ctx context.Context, f Filter, skip, limit int) ([]Pet, error)
	// GetByUniqueAttributes is used by the idempotent seeder only.
	GetByUniqueAttributes(ctx context.Context, name, petType, breed string) (Pet, error)
}
