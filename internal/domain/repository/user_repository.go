package repository

import (
	"context"

	"kidsactivity/internal/domain/entity"
	"kidsactivity/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the interface for user-account database operations.
type UserRepository interface {
	// CreateUser persists a new account.
	CreateUser(ctx context.Context, user *entity.User) error

	// FindUserByID retrieves a user by its unique ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindUserByEmail retrieves a user by email (case-insensitive).
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// UpdateUser persists profile changes.
	UpdateUser(ctx context.Context, user *entity.User) error
}
