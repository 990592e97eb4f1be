package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/upturn/portfolio-api/internal/api/metrics"
	"github.com/upturn/portfolio-api/internal/core/domain"
	"github.com/upturn/portfolio-api/internal/core/ports"
)

// ContentService implements the generic CRUD use cases over a named content
// collection. One instance serves every collection; handlers pass the
// collection name per call.
type ContentService struct {
	repo   ports.ContentRepository
	logger zerolog.Logger
}

func NewContentService(repo ports.ContentRepository, logger zerolog.Logger) *ContentService {
	return &ContentService{repo: repo, logger: logger}
}

func (s *ContentService) List(ctx context.Context, collection string) ([]domain.Document, error) {
	return s.repo.List(ctx, collection)
}

func (s *ContentService) Get(ctx context.Context, collection, id string) (domain.Document, error) {
	return s.repo.FindByID(ctx, collection, id)
}

func (s *ContentService) Create(ctx context.Context, collection string, doc domain.Document) (string, error) {
	id, err := s.repo.Insert(ctx, collection, doc)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("collection", collection).Str("id", id).Msg("document created")
	metrics.ContentWritesTotal.WithLabelValues(collection, "insert").Inc()
	return id, nil
}

// Update applies a partial update. Zero modified documents means the id does
// not exist or the update changed nothing; either way the caller sees
// ErrNotFound, never silent success.
func (s *ContentService) Update(ctx context.Context, collection, id string, fields domain.Document) error {
	// _id is immutable; strip it so a client echoing the document back
	// cannot trip an invalid $set.
	delete(fields, "_id")

	modified, err := s.repo.UpdateByID(ctx, collection, id, fields)
	if err != nil {
		return err
	}
	if modified == 0 {
		return domain.ErrNotFound
	}

	metrics.ContentWritesTotal.WithLabelValues(collection, "update").Inc()
	return nil
}

func (s *ContentService) Delete(ctx context.Context, collection, id string) error {
	deleted, err := s.repo.DeleteByID(ctx, collection, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.ErrNotFound
	}

	s.logger.Info().Str("collection", collection).Str("id", id).Msg("document deleted")
	metrics.ContentWritesTotal.WithLabelValues(collection, "delete").Inc()
	return nil
}
