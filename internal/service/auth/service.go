// Package auth provides the thin identity collaborator: email/password
// sign-up and sign-in producing a stable user identifier. No refresh
// tokens, no OAuth — the journal only needs currentUserId.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dreamlog/backend/internal/config"
	"github.com/dreamlog/backend/internal/domain"
)

type userRepo interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, error)
}

// Service provides registration, login, and token validation.
type Service struct {
	users userRepo
	jwt   jwtManager
	cfg   config.AuthConfig
	log   *slog.Logger
}

// NewService creates a new auth service.
func NewService(logger *slog.Logger, users userRepo, jwt jwtManager, cfg config.AuthConfig) *Service {
	return &Service{
		users: users,
		jwt:   jwt,
		cfg:   cfg,
		log:   logger.With("service", "auth"),
	}
}

// ValidateToken resolves a bearer token to a user ID.
func (s *Service) ValidateToken(_ context.Context, token string) (uuid.UUID, error) {
	return s.jwt.ValidateAccessToken(token)
}
