package menu

import (
	"github.com/benjoezac-cmd/big-bite-kebabs/internal/domain"
)

// Catalog is the fixed set of orderable items. It is loaded once at startup
// and never mutated, so it is safe to share across requests without locking.
type Catalog struct {
	items   []domain.MenuItem
	popular []domain.MenuItem
}

func NewCatalog(items, popular []domain.MenuItem) *Catalog {
	return &Catalog{items: items, popular: popular}
}

// Lookup resolves a menu reference by id or name substring, case-insensitive.
// The first match in catalog order wins; substring matches are not unique, so
// callers must not assume the term identified exactly one item.
func (c *Catalog) Lookup(term string) (domain.MenuItem, bool) {
	for _, item := range c.items {
		if item.Matches(term) {
			return item, true
		}
	}
	return domain.MenuItem{}, false
}

func (c *Catalog) Items() []domain.MenuItem {
	return c.items
}

func (c *Catalog) Popular() []domain.MenuItem {
	return c.popular
}
