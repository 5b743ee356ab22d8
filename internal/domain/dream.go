package domain

import (
	"time"

	"github.com/google/uuid"
)

// Dream is one journaled entry owned by a single user.
type Dream struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Title    string
	Content  string
	Analysis string
	Category Category

	// CreatedAt is assigned by the repository at insert time unless the
	// caller supplied an explicit dream date. UpdatedAt is refreshed on
	// every write.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DreamUpdate is the partial update set for a dream. nil fields stay
// untouched.
type DreamUpdate struct {
	Title    *string
	Content  *string
	Analysis *string
	Category *Category
}

// MaxTitleLen and MinContentLen are the submission boundary limits.
// The repository does not re-check them.
const (
	MaxTitleLen   = 100
	MinContentLen = 20
)
