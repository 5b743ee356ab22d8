// Package journal orchestrates the dream pipeline: validate the raw
// submission, run it through the external interpreter, assign a
// category, persist the record, and serve filtered views over a
// per-user in-memory snapshot of the collection.
package journal

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dreamlog/backend/internal/config"
	"github.com/dreamlog/backend/internal/domain"
)

type dreamRepo interface {
	Create(ctx context.Context, userID uuid.UUID, d *domain.Dream) (*domain.Dream, error)
	GetByID(ctx context.Context, userID, dreamID uuid.UUID) (*domain.Dream, error)
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Dream, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	Update(ctx context.Context, userID, dreamID uuid.UUID, fields domain.DreamUpdate) (*domain.Dream, error)
	Delete(ctx context.Context, userID, dreamID uuid.UUID) error
}

type interpreter interface {
	Interpret(ctx context.Context, content string, locale domain.Locale) (string, error)
	Categorize(ctx context.Context, content string) (domain.Category, error)
}

// Service is the dream journal orchestrator. It owns the only error
// translation point of the pipeline: repositories and the interpreter
// report failures, the service decides whether a submission blocks,
// degrades, or proceeds.
type Service struct {
	dreams      dreamRepo
	interpreter interpreter
	cfg         config.JournalConfig
	log         *slog.Logger

	// snapshot caches each user's full collection, newest first, so
	// filtered and aggregated reads do not hit the database. Mutations
	// refresh the owner's snapshot wholesale.
	mu       sync.RWMutex
	snapshot map[uuid.UUID][]*domain.Dream
}

// NewService creates a new journal service.
func NewService(logger *slog.Logger, dreams dreamRepo, interp interpreter, cfg config.JournalConfig) *Service {
	return &Service{
		dreams:      dreams,
		interpreter: interp,
		cfg:         cfg,
		log:         logger.With("service", "journal"),
		snapshot:    make(map[uuid.UUID][]*domain.Dream),
	}
}

// collection returns the user's full collection, newest first, serving
// from the snapshot when present and reading through otherwise.
func (s *Service) collection(ctx context.Context, userID uuid.UUID) ([]*domain.Dream, error) {
	s.mu.RLock()
	cached, ok := s.snapshot[userID]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	return s.refresh(ctx, userID)
}

// refresh replaces the user's snapshot with the repository's current
// state and returns it.
func (s *Service) refresh(ctx context.Context, userID uuid.UUID) ([]*domain.Dream, error) {
	dreams, err := s.dreams.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.snapshot[userID] = dreams
	s.mu.Unlock()

	return dreams, nil
}

// invalidate drops the user's snapshot so the next read hits the
// repository. Used when a refresh after a mutation fails; the mutation
// itself already succeeded.
func (s *Service) invalidate(userID uuid.UUID) {
	s.mu.Lock()
	delete(s.snapshot, userID)
	s.mu.Unlock()
}
