package journal

import (
	"context"

	"github.com/dreamlog/backend/internal/domain"
	"github.com/dreamlog/backend/internal/service/journal/view"
	"github.com/dreamlog/backend/pkg/ctxutil"
)

// List returns the user's dreams matching the options, newest first.
func (s *Service) List(ctx context.Context, in ListInput) ([]*domain.Dream, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := in.Validate(); err != nil {
		return nil, err
	}

	var (
		dreams []*domain.Dream
		err    error
	)
	if in.Fresh {
		dreams, err = s.refresh(ctx, userID)
	} else {
		dreams, err = s.collection(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	return view.Filter(dreams, view.Options{
		Category: domain.Category(in.Category),
		Search:   in.Search,
	}), nil
}
