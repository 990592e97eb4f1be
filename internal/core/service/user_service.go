package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/upturn/portfolio-api/internal/api/metrics"
	"github.com/upturn/portfolio-api/internal/core/domain"
	"github.com/upturn/portfolio-api/internal/core/ports"
)

// UserService implements registration and role management.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Register inserts the profile with role "user". Idempotent on email: when a
// user with the same email already exists, no write happens and the result
// reports AlreadyExists.
func (s *UserService) Register(ctx context.Context, profile domain.Document) (*ports.RegisterResult, error) {
	email, _ := profile["email"].(string)

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		metrics.UsersRegisteredTotal.WithLabelValues("exists").Inc()
		return &ports.RegisterResult{AlreadyExists: true}, nil
	}

	doc := domain.Document{}
	for k, v := range profile {
		doc[k] = v
	}
	doc["role"] = domain.RoleUser

	id, err := s.repo.Insert(ctx, doc)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", email).Str("user_id", id).Msg("user registered")
	metrics.UsersRegisteredTotal.WithLabelValues("created").Inc()
	return &ports.RegisterResult{InsertedID: id}, nil
}

// IsAdmin reports whether the stored role for email is "admin". An unknown
// email is not an admin rather than an error, so the same predicate serves
// both the guard middleware and the public status endpoint.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return user.IsAdmin(), nil
}

func (s *UserService) List(ctx context.Context) ([]domain.Document, error) {
	return s.repo.List(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id string) (domain.Document, error) {
	return s.repo.FindByID(ctx, id)
}

// SetRole mutates the stored role. A zero modified count means the user does
// not exist (or already held the role) and surfaces as ErrNotFound.
func (s *UserService) SetRole(ctx context.Context, id, role string) error {
	if role != domain.RoleAdmin && role != domain.RoleUser {
		return domain.ErrInvalidRole
	}

	modified, err := s.repo.UpdateRole(ctx, id, role)
	if err != nil {
		return err
	}
	if modified == 0 {
		return domain.ErrNotFound
	}

	s.logger.Info().Str("user_id", id).Str("role", role).Msg("user role updated")
	return nil
}
