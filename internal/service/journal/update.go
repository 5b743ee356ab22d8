package journal

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dreamlog/backend/internal/domain"
	"github.com/dreamlog/backend/pkg/ctxutil"
)

// Update applies a partial update to a dream and returns the fresh
// record. The stored analysis is immutable; re-interpretation means
// submitting a new dream.
func (s *Service) Update(ctx context.Context, dreamID uuid.UUID, in UpdateInput) (*domain.Dream, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if in.empty() {
		return nil, domain.NewValidationError("body", "no fields to update")
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var fields domain.DreamUpdate
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		fields.Title = &title
	}
	if in.Content != nil {
		content := strings.TrimSpace(*in.Content)
		fields.Content = &content
	}
	if in.Category != nil {
		category, _ := domain.ParseCategory(*in.Category)
		fields.Category = &category
	}

	updated, err := s.dreams.Update(ctx, userID, dreamID, fields)
	if err != nil {
		return nil, fmt.Errorf("update dream: %w", err)
	}

	if _, err := s.refresh(ctx, userID); err != nil {
		s.invalidate(userID)
		s.log.Warn("snapshot refresh failed after update", "user_id", userID, "error", err)
	}

	return updated, nil
}
