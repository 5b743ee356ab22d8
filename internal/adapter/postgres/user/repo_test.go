package user_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/dreamlog/backend/internal/adapter/postgres/testhelper"
	"github.com/dreamlog/backend/internal/adapter/postgres/user"
	"github.com/dreamlog/backend/internal/domain"
)

func TestRepo_CreateAndGet(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := user.New(pool)
	ctx := context.Background()

	in := &domain.User{
		ID:           uuid.New(),
		Email:        "melis@example.com",
		Username:     "melis",
		PasswordHash: "hash",
	}

	created, err := repo.Create(ctx, in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.CreatedAt.IsZero() {
		t.Error("CreatedAt must be server-assigned")
	}

	byEmail, err := repo.GetByEmail(ctx, "melis@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if byEmail.ID != in.ID {
		t.Errorf("ID = %s, want %s", byEmail.ID, in.ID)
	}

	byID, err := repo.GetByID(ctx, in.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if byID.Email != in.Email {
		t.Errorf("Email = %q, want %q", byID.Email, in.Email)
	}
}

func TestRepo_Create_DuplicateEmail(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := user.New(pool)
	ctx := context.Background()

	seed := testhelper.SeedUser(t, pool)

	_, err := repo.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Email:        seed.Email,
		Username:     "copycat",
		PasswordHash: "hash",
	})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("err = %v, want ErrAlreadyExists", err)
	}
}

func TestRepo_Get_Missing(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := user.New(pool)
	ctx := context.Background()

	if _, err := repo.GetByEmail(ctx, "nobody@example.com"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetByEmail: err = %v, want ErrNotFound", err)
	}
	if _, err := repo.GetByID(ctx, uuid.New()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetByID: err = %v, want ErrNotFound", err)
	}
}
