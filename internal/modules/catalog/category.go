package catalog

import (
	"errors"
	"fmt"
)

// Category is a closed enum stored as an integer on the product row. Slugs are
// part of public category URLs; changing an existing mapping breaks every link
// already shared for that category.
type Category int

const (
	CategoryBreakfast Category = 1
	CategorySnacks    Category = 2
	CategoryDrinks    Category = 3
	CategoryPantry    Category = 4
)

var ErrUnknownCategory = errors.New("unknown category")

var categorySlugs = map[Category]string{
	CategoryBreakfast: "breakfast",
	CategorySnacks:    "snacks",
	CategoryDrinks:    "drinks",
	CategoryPantry:    "pantry",
}

// Categories lists the enum in display order for admin selects.
func Categories() []Category {
	return []Category{CategoryBreakfast, CategorySnacks, CategoryDrinks, CategoryPantry}
}

// Slug resolves the category to its URL slug. An id outside the enum's domain
// is a data-integrity fault between the database and this table, not user error.
func (c Category) Slug() (string, error) {
	s, ok := categorySlugs[c]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}
	return s, nil
}
