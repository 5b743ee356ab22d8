package journal

import (
	"context"

	"github.com/dreamlog/backend/internal/domain"
	"github.com/dreamlog/backend/internal/service/journal/view"
	"github.com/dreamlog/backend/pkg/ctxutil"
)

// Stats summarizes a user's collection. TopCategory is empty when the
// collection is.
type Stats struct {
	Total       int
	Counts      map[domain.Category]int
	TopCategory domain.Category
}

// Stats aggregates the user's full collection: total, per-category
// counts, and the dominant category.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	dreams, err := s.collection(ctx, userID)
	if err != nil {
		return nil, err
	}

	top, _ := view.TopCategory(dreams)

	return &Stats{
		Total:       len(dreams),
		Counts:      view.CategoryCounts(dreams),
		TopCategory: top,
	}, nil
}
