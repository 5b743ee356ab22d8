package journal

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dreamlog/backend/internal/domain"
)

// SubmitInput holds the parameters for submitting a new dream.
// Category is only consulted when the category source policy is "user",
// and an unknown or filter-only value coerces to "other" rather than
// failing. DreamDate overrides the server clock as the record's
// creation moment when the policy allows it; nil means "now".
type SubmitInput struct {
	Title     string
	Content   string
	Category  string
	Language  string
	DreamDate *time.Time
}

// Validate checks all fields and collects all errors.
func (i SubmitInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if utf8.RuneCountInString(title) > domain.MaxTitleLen {
		errs = append(errs, domain.FieldError{
			Field:   "title",
			Message: fmt.Sprintf("max %d characters", domain.MaxTitleLen),
		})
	}

	content := strings.TrimSpace(i.Content)
	if content == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	} else if utf8.RuneCountInString(content) < domain.MinContentLen {
		errs = append(errs, domain.FieldError{
			Field:   "content",
			Message: fmt.Sprintf("min %d characters", domain.MinContentLen),
		})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListInput holds the view options for listing a user's dreams.
// Category "" or "all" disables the category filter; Search is a
// case-insensitive substring match over title and content. Fresh
// bypasses the snapshot and re-reads the repository.
type ListInput struct {
	Category string
	Search   string
	Fresh    bool
}

// Validate rejects an unknown category filter. "all" and "" pass.
func (i ListInput) Validate() error {
	if i.Category == "" || i.Category == string(domain.CategoryAll) {
		return nil
	}
	if _, ok := domain.ParseCategory(i.Category); !ok {
		return domain.NewValidationError("category", "unknown category")
	}
	return nil
}

// UpdateInput holds the partial update for a dream. nil fields stay
// untouched. The analysis is immutable through this path.
type UpdateInput struct {
	Title    *string
	Content  *string
	Category *string
}

// Validate checks the supplied fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Title != nil {
		title := strings.TrimSpace(*i.Title)
		if title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		} else if utf8.RuneCountInString(title) > domain.MaxTitleLen {
			errs = append(errs, domain.FieldError{
				Field:   "title",
				Message: fmt.Sprintf("max %d characters", domain.MaxTitleLen),
			})
		}
	}

	if i.Content != nil {
		content := strings.TrimSpace(*i.Content)
		if content == "" {
			errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
		} else if utf8.RuneCountInString(content) < domain.MinContentLen {
			errs = append(errs, domain.FieldError{
				Field:   "content",
				Message: fmt.Sprintf("min %d characters", domain.MinContentLen),
			})
		}
	}

	if i.Category != nil {
		if _, ok := domain.ParseCategory(*i.Category); !ok {
			errs = append(errs, domain.FieldError{Field: "category", Message: "unknown category"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i UpdateInput) empty() bool {
	return i.Title == nil && i.Content == nil && i.Category == nil
}
