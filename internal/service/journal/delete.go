package journal

import (
	"context"

	"github.com/google/uuid"

	"github.com/dreamlog/backend/internal/domain"
	"github.com/dreamlog/backend/pkg/ctxutil"
)

// Delete removes a dream. Deleting a missing or already-deleted record
// is domain.ErrNotFound.
func (s *Service) Delete(ctx context.Context, dreamID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.dreams.Delete(ctx, userID, dreamID); err != nil {
		return err
	}

	if _, err := s.refresh(ctx, userID); err != nil {
		s.invalidate(userID)
		s.log.Warn("snapshot refresh failed after delete", "user_id", userID, "error", err)
	}

	s.log.Info("dream deleted", "user_id", userID, "dream_id", dreamID)
	return nil
}
