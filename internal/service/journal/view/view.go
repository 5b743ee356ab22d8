// Package view derives filtered subsets and summary aggregates from an
// in-memory dream collection snapshot. It holds no state of its own.
package view

import (
	"strings"

	"github.com/dreamlog/backend/internal/domain"
)

// Options are the composable filters for Filter. Zero values mean
// "no filter"; CategoryAll is equivalent to no category filter.
type Options struct {
	Category domain.Category
	Search   string
}

// Filter returns the subset of dreams matching the options, preserving
// the input order. Category is exact-match equality; search is a
// case-insensitive substring match against title OR content. Both
// compose with logical AND.
func Filter(dreams []*domain.Dream, opts Options) []*domain.Dream {
	byCategory := opts.Category != "" && opts.Category != domain.CategoryAll
	search := strings.ToLower(strings.TrimSpace(opts.Search))

	if !byCategory && search == "" {
		return dreams
	}

	filtered := make([]*domain.Dream, 0, len(dreams))
	for _, d := range dreams {
		if byCategory && d.Category != opts.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(d.Title), search) &&
			!strings.Contains(strings.ToLower(d.Content), search) {
			continue
		}
		filtered = append(filtered, d)
	}

	return filtered
}

// CategoryCounts tallies dreams per category. Categories with zero
// occurrences are absent from the result.
func CategoryCounts(dreams []*domain.Dream) map[domain.Category]int {
	counts := make(map[domain.Category]int)
	for _, d := range dreams {
		counts[d.Category]++
	}
	return counts
}

// TopCategory returns the category with the highest count. Equal counts
// resolve to the earlier category in the fixed taxonomy declaration
// order. ok is false for an empty collection.
func TopCategory(dreams []*domain.Dream) (domain.Category, bool) {
	counts := CategoryCounts(dreams)
	if len(counts) == 0 {
		return "", false
	}

	var top domain.Category
	best := 0
	for c, n := range counts {
		if n > best || (n == best && domain.CategoryIndex(c) < domain.CategoryIndex(top)) {
			top = c
			best = n
		}
	}

	return top, true
}
