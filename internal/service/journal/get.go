package journal

import (
	"context"

	"github.com/google/uuid"

	"github.com/dreamlog/backend/internal/domain"
	"github.com/dreamlog/backend/pkg/ctxutil"
)

// Get returns one dream by ID. A record owned by another user is
// domain.ErrNotFound, never a leak.
func (s *Service) Get(ctx context.Context, dreamID uuid.UUID) (*domain.Dream, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	return s.dreams.GetByID(ctx, userID, dreamID)
}
