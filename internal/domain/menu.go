package domain

import "strings"

type MenuItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

const (
	CategoryKebabs     = "kebabs"
	CategorySnackPacks = "snackPacks"
	CategoryMeals      = "meals"
	CategoryPlates     = "plates"
	CategorySides      = "sides"
)

// Matches reports whether term refers to this item. Matching is
// case-insensitive: either the item's id exactly, or a substring of its name.
func (m MenuItem) Matches(term string) bool {
	term = strings.ToLower(term)
	if m.ID == term {
		return true
	}
	return strings.Contains(strings.ToLower(m.Name), term)
}
