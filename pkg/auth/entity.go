package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is a domain entity representing an account.
type User struct {
	ID             uuid.UUID
	Email          string
	HashedPassword string
	IsActive       bool
	IsSuperuser    bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// UserUpdate carries a sparse set of account changes; nil fields are left untouched.
// A non-nil Password is re-hashed before it is stored.
type UserUpdate struct {
	Email       *string
	Password    *string
	IsActive    *bool
	IsSuperuser *bool
}
