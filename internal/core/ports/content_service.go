package ports

import (
	"context"

	"github.com/upturn/portfolio-api/internal/core/domain"
)

// ContentService exposes the generic CRUD use cases shared by every content
// collection. Zero-effect mutations surface as domain.ErrNotFound rather than
// silent success.
type ContentService interface {
	List(ctx context.Context, collection string) ([]domain.Document, error)
	Get(ctx context.Context, collection, id string) (domain.Document, error)
	Create(ctx context.Context, collection string, doc domain.Document) (string, error)
	Update(ctx context.Context, collection, id string, fields domain.Document) error
	Delete(ctx context.Context, collection, id string) error
}
