package ports

import (
	"context"

	"github.com/upturn/portfolio-api/internal/core/domain"
)

// RegisterResult reports the outcome of an idempotent registration.
type RegisterResult struct {
	InsertedID    string
	AlreadyExists bool
}

// UserService defines use-case operations on user records.
type UserService interface {
	// Register inserts the profile with role "user" unless a user with the
	// same email already exists, in which case nothing is written.
	Register(ctx context.Context, profile domain.Document) (*RegisterResult, error)
	// IsAdmin reports whether the stored user holds the admin role. An
	// unknown email is simply not an admin, not an error.
	IsAdmin(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]domain.Document, error)
	GetByID(ctx context.Context, id string) (domain.Document, error)
	// SetRole mutates the stored role; zero modified documents surfaces as
	// domain.ErrNotFound.
	SetRole(ctx context.Context, id, role string) error
}
