package testhelper

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dreamlog/backend/internal/domain"
)

// SeedUser inserts a user with a unique email and returns it.
func SeedUser(t *testing.T, pool *pgxpool.Pool) *domain.User {
	t.Helper()

	u := &domain.User{
		ID:           uuid.New(),
		Email:        fmt.Sprintf("dreamer-%s@example.com", uuid.NewString()[:8]),
		Username:     "dreamer",
		PasswordHash: "$2a$10$testhashtesthashtesthashtesthashtesthashtesthashtestha",
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, username, password_hash) VALUES ($1, $2, $3, $4)`,
		u.ID, u.Email, u.Username, u.PasswordHash)
	if err != nil {
		t.Fatalf("testhelper: seed user: %v", err)
	}

	return u
}
