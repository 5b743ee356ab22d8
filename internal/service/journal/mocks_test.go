package journal

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dreamlog/backend/internal/domain"
)

var _ dreamRepo = &dreamRepoMock{}

type dreamRepoMock struct {
	CreateFunc      func(ctx context.Context, userID uuid.UUID, d *domain.Dream) (*domain.Dream, error)
	GetByIDFunc     func(ctx context.Context, userID, dreamID uuid.UUID) (*domain.Dream, error)
	ListFunc        func(ctx context.Context, userID uuid.UUID) ([]*domain.Dream, error)
	CountByUserFunc func(ctx context.Context, userID uuid.UUID) (int, error)
	UpdateFunc      func(ctx context.Context, userID, dreamID uuid.UUID, fields domain.DreamUpdate) (*domain.Dream, error)
	DeleteFunc      func(ctx context.Context, userID, dreamID uuid.UUID) error

	calls struct {
		Create []*domain.Dream
		List   []uuid.UUID
		Update []domain.DreamUpdate
		Delete []uuid.UUID
	}
	mu sync.Mutex
}

func (m *dreamRepoMock) Create(ctx context.Context, userID uuid.UUID, d *domain.Dream) (*domain.Dream, error) {
	if m.CreateFunc == nil {
		panic("dreamRepoMock.CreateFunc: method is nil but dreamRepo.Create was just called")
	}
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, d)
	m.mu.Unlock()
	return m.CreateFunc(ctx, userID, d)
}

func (m *dreamRepoMock) GetByID(ctx context.Context, userID, dreamID uuid.UUID) (*domain.Dream, error) {
	if m.GetByIDFunc == nil {
		panic("dreamRepoMock.GetByIDFunc: method is nil but dreamRepo.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, userID, dreamID)
}

func (m *dreamRepoMock) List(ctx context.Context, userID uuid.UUID) ([]*domain.Dream, error) {
	if m.ListFunc == nil {
		panic("dreamRepoMock.ListFunc: method is nil but dreamRepo.List was just called")
	}
	m.mu.Lock()
	m.calls.List = append(m.calls.List, userID)
	m.mu.Unlock()
	return m.ListFunc(ctx, userID)
}

func (m *dreamRepoMock) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if m.CountByUserFunc == nil {
		panic("dreamRepoMock.CountByUserFunc: method is nil but dreamRepo.CountByUser was just called")
	}
	return m.CountByUserFunc(ctx, userID)
}

func (m *dreamRepoMock) Update(ctx context.Context, userID, dreamID uuid.UUID, fields domain.DreamUpdate) (*domain.Dream, error) {
	if m.UpdateFunc == nil {
		panic("dreamRepoMock.UpdateFunc: method is nil but dreamRepo.Update was just called")
	}
	m.mu.Lock()
	m.calls.Update = append(m.calls.Update, fields)
	m.mu.Unlock()
	return m.UpdateFunc(ctx, userID, dreamID, fields)
}

func (m *dreamRepoMock) Delete(ctx context.Context, userID, dreamID uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("dreamRepoMock.DeleteFunc: method is nil but dreamRepo.Delete was just called")
	}
	m.mu.Lock()
	m.calls.Delete = append(m.calls.Delete, dreamID)
	m.mu.Unlock()
	return m.DeleteFunc(ctx, userID, dreamID)
}

func (m *dreamRepoMock) CreateCalls() []*domain.Dream {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *dreamRepoMock) ListCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.List
}

func (m *dreamRepoMock) UpdateCalls() []domain.DreamUpdate {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Update
}

var _ interpreter = &interpreterMock{}

type interpreterMock struct {
	InterpretFunc  func(ctx context.Context, content string, locale domain.Locale) (string, error)
	CategorizeFunc func(ctx context.Context, content string) (domain.Category, error)

	calls struct {
		Interpret  []string
		Categorize []string
	}
	mu sync.Mutex
}

func (m *interpreterMock) Interpret(ctx context.Context, content string, locale domain.Locale) (string, error) {
	if m.InterpretFunc == nil {
		panic("interpreterMock.InterpretFunc: method is nil but interpreter.Interpret was just called")
	}
	m.mu.Lock()
	m.calls.Interpret = append(m.calls.Interpret, content)
	m.mu.Unlock()
	return m.InterpretFunc(ctx, content, locale)
}

func (m *interpreterMock) Categorize(ctx context.Context, content string) (domain.Category, error) {
	if m.CategorizeFunc == nil {
		panic("interpreterMock.CategorizeFunc: method is nil but interpreter.Categorize was just called")
	}
	m.mu.Lock()
	m.calls.Categorize = append(m.calls.Categorize, content)
	m.mu.Unlock()
	return m.CategorizeFunc(ctx, content)
}

func (m *interpreterMock) InterpretCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Interpret
}

func (m *interpreterMock) CategorizeCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Categorize
}
