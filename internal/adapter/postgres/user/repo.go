// Package user implements user persistence for the identity collaborator.
package user

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

const table = "users"

var columns = []string{"id", "email", "username", "password_hash", "created_at", "updated_at"}

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type row struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r row) toDomain() *domain.User {
	return &domain.User{
		ID:           r.ID,
		Email:        r.Email,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// Create inserts a new user. Returns domain.ErrAlreadyExists when the
// email is taken (unique constraint).
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	query := qb.Insert(table).
		Columns(columns...).
		Values(u.ID, u.Email, u.Username, u.PasswordHash, sq.Expr("now()"), sq.Expr("now()")).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, r.pool, &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", u.Email)
	}

	return out.toDomain(), nil
}

// GetByEmail returns the user with the given email, or domain.ErrNotFound.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	sql, args, err := qb.Select(columns...).From(table).Where(sq.Eq{"email": email}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, r.pool, &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", email)
	}

	return out.toDomain(), nil
}

// GetByID returns the user with the given ID, or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	sql, args, err := qb.Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, r.pool, &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return out.toDomain(), nil
}
