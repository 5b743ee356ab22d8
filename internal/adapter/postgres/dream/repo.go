// Package dream implements the dream record repository using PostgreSQL.
// Every operation is scoped to a single owner; a record belonging to
// another user is indistinguishable from a missing one.
package dream

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dreamlog/backend/internal/adapter/postgres"
	"github.com/dreamlog/backend/internal/domain"
)

const table = "dreams"

var columns = []string{"id", "user_id", "title", "content", "analysis", "category", "created_at", "updated_at"}

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides dream record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new dream repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// row mirrors the dreams table for scany. seq is repository-internal
// (the insertion-order tie-break) and never leaves this package.
type row struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	Analysis  string    `db:"analysis"`
	Category  string    `db:"category"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r row) toDomain() *domain.Dream {
	return &domain.Dream{
		ID:        r.ID,
		UserID:    r.UserID,
		Title:     r.Title,
		Content:   r.Content,
		Analysis:  r.Analysis,
		Category:  domain.Category(r.Category),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Create inserts a new dream and returns the persisted record.
// When d.CreatedAt is non-zero it is stored as the creation moment
// (caller-supplied dream date); otherwise the database clock wins.
// updated_at is always the database clock.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, d *domain.Dream) (*domain.Dream, error) {
	createdAt := any(sq.Expr("now()"))
	if !d.CreatedAt.IsZero() {
		createdAt = d.CreatedAt
	}

	query := qb.Insert(table).
		Columns(columns...).
		Values(d.ID, userID, d.Title, d.Content, d.Analysis, string(d.Category), createdAt, sq.Expr("now()")).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, r.pool, &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "dream", d.ID)
	}

	return out.toDomain(), nil
}

// GetByID returns one dream by primary key. Returns domain.ErrNotFound if
// it does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, dreamID uuid.UUID) (*domain.Dream, error) {
	sql, args, err := r.selectForUser(userID).Where(sq.Eq{"id": dreamID}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, r.pool, &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "dream", dreamID)
	}

	return out.toDomain(), nil
}

// List returns every dream owned by the user, newest first. Ties on
// created_at fall back to insertion order, latest insert first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]*domain.Dream, error) {
	return r.list(ctx, r.selectForUser(userID))
}

// ListByCategory returns the user's dreams in one category, same ordering
// as List. The category must be persistable; the "all" filter sentinel is
// resolved by the caller before reaching the repository.
func (r *Repo) ListByCategory(ctx context.Context, userID uuid.UUID, category domain.Category) ([]*domain.Dream, error) {
	return r.list(ctx, r.selectForUser(userID).Where(sq.Eq{"category": string(category)}))
}

// CountByUser returns the number of dreams the user owns.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	sql, args, err := qb.Select("count(*)").From(table).Where(sq.Eq{"user_id": userID}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}

	var count int
	if err := pgxscan.Get(ctx, r.pool, &count, sql, args...); err != nil {
		return 0, fmt.Errorf("count dreams: %w", err)
	}

	return count, nil
}

// Update applies a partial update and returns the fresh record.
// updated_at is refreshed on every call, even an empty one.
func (r *Repo) Update(ctx context.Context, userID, dreamID uuid.UUID, fields domain.DreamUpdate) (*domain.Dream, error) {
	query := qb.Update(table).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": dreamID, "user_id": userID}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	if fields.Title != nil {
		query = query.Set("title", *fields.Title)
	}
	if fields.Content != nil {
		query = query.Set("content", *fields.Content)
	}
	if fields.Analysis != nil {
		query = query.Set("analysis", *fields.Analysis)
	}
	if fields.Category != nil {
		query = query.Set("category", string(*fields.Category))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, r.pool, &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "dream", dreamID)
	}

	return out.toDomain(), nil
}

// Delete removes a dream. Returns domain.ErrNotFound if it does not exist
// or belongs to another user, so a double delete is a clean 404, never a
// crash.
func (r *Repo) Delete(ctx context.Context, userID, dreamID uuid.UUID) error {
	sql, args, err := qb.Delete(table).Where(sq.Eq{"id": dreamID, "user_id": userID}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "dream", dreamID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("dream %s: %w", dreamID, domain.ErrNotFound)
	}

	return nil
}

func (r *Repo) selectForUser(userID uuid.UUID) sq.SelectBuilder {
	return qb.Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "seq DESC")
}

func (r *Repo) list(ctx context.Context, query sq.SelectBuilder) ([]*domain.Dream, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, r.pool, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list dreams: %w", err)
	}

	dreams := make([]*domain.Dream, len(rows))
	for i, out := range rows {
		dreams[i] = out.toDomain()
	}

	return dreams, nil
}
