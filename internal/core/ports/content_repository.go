package ports

import (
	"context"

	"github.com/upturn/portfolio-api/internal/core/domain"
)

// ContentRepository is the generic per-collection accessor over the document
// store. All methods take the collection name; identifiers are hex strings and
// a malformed one yields domain.ErrInvalidID, distinct from not-found.
type ContentRepository interface {
	// List returns all documents in the store's natural order.
	List(ctx context.Context, collection string) ([]domain.Document, error)
	FindByID(ctx context.Context, collection, id string) (domain.Document, error)
	// Insert stores the document and returns its hex id.
	Insert(ctx context.Context, collection string, doc domain.Document) (string, error)
	// UpdateByID applies a partial update and returns the modified count.
	UpdateByID(ctx context.Context, collection, id string, fields domain.Document) (int64, error)
	// DeleteByID removes the document and returns the deleted count.
	DeleteByID(ctx context.Context, collection, id string) (int64, error)
}
