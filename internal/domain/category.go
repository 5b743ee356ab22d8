package domain

// Category is the fixed taxonomy a dream is filed under.
// Values are persisted as plain strings.
type Category string

const (
	CategoryFear         Category = "fear"
	CategoryRelationship Category = "relationship"
	CategoryWork         Category = "work"
	CategoryFamily       Category = "family"
	CategoryPast         Category = "past"
	CategoryFuture       Category = "future"
	CategoryOther        Category = "other"

	// CategoryAll is a filter-only sentinel meaning "no category filter".
	// It is never stored on a record.
	CategoryAll Category = "all"
)

// Categories lists every persistable category in declaration order.
// The order is load-bearing: it is the tie-break for TopCategory.
var Categories = []Category{
	CategoryFear,
	CategoryRelationship,
	CategoryWork,
	CategoryFamily,
	CategoryPast,
	CategoryFuture,
	CategoryOther,
}

// Valid reports whether c is a persistable category.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory maps a raw string to a persistable category.
// Unknown values and the "all" sentinel coerce to CategoryOther,
// with ok=false so callers can tell coercion happened.
func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	if c.Valid() {
		return c, true
	}
	return CategoryOther, false
}

// CategoryIndex returns the position of c in the fixed taxonomy,
// or len(Categories) for unknown values.
func CategoryIndex(c Category) int {
	for i, known := range Categories {
		if c == known {
			return i
		}
	}
	return len(Categories)
}
