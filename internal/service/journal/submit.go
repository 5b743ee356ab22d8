package journal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dreamlog/backend/internal/adapter/gemini"
	"github.com/dreamlog/backend/internal/config"
	"github.com/dreamlog/backend/internal/domain"
	"github.com/dreamlog/backend/pkg/ctxutil"
)

// SubmitResult carries the persisted record plus an optional non-fatal
// warning. Warning is set when the interpreter was unreachable and the
// record was stored with the localized placeholder analysis instead.
type SubmitResult struct {
	Dream   *domain.Dream
	Warning error
}

// Submit runs the full pipeline for a new dream: validate, interpret
// and categorize in parallel, persist, refresh the owner's snapshot.
//
// A semantic interpretation failure (the model declared the content
// meaningless) blocks the submission. A transport failure does not: the
// record is stored with the locale's fallback analysis and the error is
// threaded out through SubmitResult.Warning.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (*SubmitResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := in.Validate(); err != nil {
		return nil, err
	}

	count, err := s.dreams.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count dreams: %w", err)
	}
	if count >= s.cfg.MaxDreamsPerUser {
		return nil, domain.NewValidationError("content", "dream limit reached")
	}

	locale := domain.ParseLocale(in.Language)
	if in.Language == "" {
		locale = domain.ParseLocale(s.cfg.DefaultLanguage)
	}
	content := strings.TrimSpace(in.Content)

	var (
		analysis string
		category = domain.CategoryOther
		warning  error
	)

	if s.cfg.CategorySource == config.CategorySourceUser {
		category, _ = domain.ParseCategory(in.Category)
	}

	// The two calls are independent: a failed interpretation must not
	// cancel an in-flight categorization, so both run on the parent ctx.
	var g errgroup.Group
	g.Go(func() error {
		text, err := s.interpreter.Interpret(ctx, content, locale)
		if err != nil {
			return err
		}
		analysis = text
		return nil
	})
	if s.cfg.CategorySource == config.CategorySourceAI {
		g.Go(func() error {
			// Categorize never fails the pipeline: a transport error
			// leaves the record in "other", which is the same coercion
			// an off-enumeration answer gets.
			cat, err := s.interpreter.Categorize(ctx, content)
			if err != nil {
				s.log.Warn("categorization degraded", "user_id", userID, "error", err)
			}
			category = cat
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if errors.Is(err, domain.ErrContentUnanalyzable) {
			return nil, err
		}
		if !errors.Is(err, domain.ErrInterpreterUnavailable) {
			return nil, fmt.Errorf("interpret dream: %w", err)
		}

		// Endpoint unreachable or malformed. The entry is still worth
		// keeping, so store the placeholder and surface the failure as
		// a warning instead of dropping the submission.
		analysis = gemini.FallbackAnalysis(locale)
		warning = err
		s.log.Warn("interpreter degraded, storing fallback analysis",
			"user_id", userID, "error", err)
	}

	d := &domain.Dream{
		ID:       uuid.New(),
		UserID:   userID,
		Title:    strings.TrimSpace(in.Title),
		Content:  content,
		Analysis: analysis,
		Category: category,
	}
	if in.DreamDate != nil && s.cfg.AllowClientDate {
		d.CreatedAt = in.DreamDate.UTC()
	}

	created, err := s.dreams.Create(ctx, userID, d)
	if err != nil {
		return nil, fmt.Errorf("create dream: %w", err)
	}

	if _, err := s.refresh(ctx, userID); err != nil {
		s.invalidate(userID)
		s.log.Warn("snapshot refresh failed after submit", "user_id", userID, "error", err)
	}

	s.log.Info("dream submitted",
		"user_id", userID, "dream_id", created.ID, "category", created.Category,
		"degraded", warning != nil)

	return &SubmitResult{Dream: created, Warning: warning}, nil
}
