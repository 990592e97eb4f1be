package ports

import (
	"context"

	"github.com/upturn/portfolio-api/internal/core/domain"
)

// UserRepository defines persistence operations for user documents.
type UserRepository interface {
	// FindByEmail returns the typed view used for authorization decisions.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByID returns the full user document.
	FindByID(ctx context.Context, id string) (domain.Document, error)
	List(ctx context.Context) ([]domain.Document, error)
	// Insert stores a new user document and returns its hex id.
	Insert(ctx context.Context, doc domain.Document) (string, error)
	// UpdateRole sets the user's role and returns the modified count.
	UpdateRole(ctx context.Context, id, role string) (int64, error)
}
