package domain

import (
	"context"
	"time"
)

// User represents a registered account. The password hash is an opaque
// bcrypt digest; the plaintext never leaves the service layer.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// UserRepository defines persistence operations for users.
//
// Create inserts the user row and its empty profile row in a single
// transaction, so a user can never exist without a profile. A duplicate
// email maps to ErrDuplicateEmail regardless of which statement trips
// the unique constraint.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}
