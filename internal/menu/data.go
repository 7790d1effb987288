package menu

import (
	"github.com/benjoezac-cmd/big-bite-kebabs/internal/domain"
)

// Default returns the Big Bite Kebabs menu. This would come from a data source
// in a multi-restaurant deployment; a single fixed menu is enough here.
func Default() *Catalog {
	items := []domain.MenuItem{
		{ID: "ckr", Name: "Chicken Kebab Roll", Price: 18.00, Category: domain.CategoryKebabs},
		{ID: "lkr", Name: "Lamb Kebab Roll", Price: 19.00, Category: domain.CategoryKebabs},
		{ID: "bkr", Name: "Beef Kebab Roll", Price: 19.00, Category: domain.CategoryKebabs},
		{ID: "mkr", Name: "Mix Kebab Roll", Price: 20.00, Category: domain.CategoryKebabs},
		{ID: "csp", Name: "Chicken Snack Pack", Price: 17.00, Category: domain.CategorySnackPacks},
		{ID: "lsp", Name: "Lamb Snack Pack", Price: 18.00, Category: domain.CategorySnackPacks},
		{ID: "msp", Name: "Mix Snack Pack", Price: 19.00, Category: domain.CategorySnackPacks},
		{ID: "ham", Name: "Hungry Attack Meal", Price: 34.00, Category: domain.CategoryMeals},
		{ID: "cp", Name: "Chicken Plate", Price: 42.00, Category: domain.CategoryPlates},
		{ID: "lp", Name: "Lamb Plate", Price: 45.00, Category: domain.CategoryPlates},
		{ID: "msp2", Name: "Mix Shish Plate", Price: 47.00, Category: domain.CategoryPlates},
		{ID: "chips", Name: "Chips", Price: 8.00, Category: domain.CategorySides},
	}

	popular := []domain.MenuItem{
		{ID: "mkr", Name: "Mix Kebab Roll", Price: 20.00, Category: domain.CategoryKebabs},
		{ID: "msp", Name: "Mix Snack Pack", Price: 19.00, Category: domain.CategorySnackPacks},
		{ID: "ham", Name: "Hungry Attack Meal", Price: 34.00, Category: domain.CategoryMeals},
		{ID: "msp2", Name: "Mix Shish Plate", Price: 47.00, Category: domain.CategoryPlates},
		{ID: "chips", Name: "Chips", Price: 8.00, Category: domain.CategorySides},
	}

	return NewCatalog(items, popular)
}
