// Package menucatalog is an in-process stand-in for the external menu
// collaborator. The order subsystem only ever asks it to resolve an item id
// into a name/price snapshot at submission time; menu management itself
// lives outside this service.
package menucatalog

import (
	"context"
	"sync"

	"github.com/biruk-abayneh/Restaurant-app/internal/core/domain/model/kernel"
	"github.com/biruk-abayneh/Restaurant-app/internal/core/ports"
	"github.com/biruk-abayneh/Restaurant-app/internal/pkg/errs"
)

// Catalog implements ports.MenuCatalog over a seeded item map.
type Catalog struct {
	mu    sync.RWMutex
	items map[string]ports.MenuItem
}

// NewCatalog creates a catalog seeded with the given items.
func NewCatalog(items []ports.MenuItem) *Catalog {
	c := &Catalog{
		items: make(map[string]ports.MenuItem, len(items)),
	}
	for _, item := range items {
		c.items[item.ID.String()] = item
	}
	return c
}

// NewSeededCatalog creates a catalog with a small default menu, used when no
// external menu source is configured.
func NewSeededCatalog() *Catalog {
	seed := []struct {
		name  string
		price float64
	}{
		{"Margherita", 90},
		{"Pepperoni", 110},
		{"Quattro Formaggi", 125},
		{"Carbonara", 120},
		{"Caesar Salad", 75},
		{"Tiramisu", 55},
		{"Espresso", 15},
		{"Lemonade", 30},
	}

	items := make([]ports.MenuItem, len(seed))
	for i, s := range seed {
		items[i] = ports.MenuItem{ID: kernel.NewUUID(), Name: s.name, UnitPrice: s.price}
	}
	return NewCatalog(items)
}

// Resolve returns the current snapshot for an item id.
func (c *Catalog) Resolve(_ context.Context, itemID kernel.UUID) (ports.MenuItem, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[itemID.String()]
	if !ok {
		return ports.MenuItem{}, errs.NewObjectNotFoundError("menuItem", itemID.String())
	}
	return item, nil
}

// Items lists the catalog, for diagnostics and seeding test data.
func (c *Catalog) Items() []ports.MenuItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := make([]ports.MenuItem, 0, len(c.items))
	for _, item := range c.items {
		items = append(items, item)
	}
	return items
}
