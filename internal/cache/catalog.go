package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/ngogiaquyen/coinshop/internal/domain"
	"github.com/ngogiaquyen/coinshop/internal/repository"
)

// DefaultCatalogTTL bounds how stale a cached catalog item may get. The
// catalog is read-mostly and never mutated by the engine, so a short TTL is
// enough to pick up external edits.
const DefaultCatalogTTL = 30 * time.Second

// Catalog is a read-through LRU decorator around a catalog store. Item
// lookups are cached per id; listings always go to the store so price
// ordering and active flags stay fresh.
type Catalog struct {
	store repository.Catalog
	lru   *expirable.LRU[int, *domain.CatalogItem]
}

// NewCatalog creates a caching wrapper of the given size and TTL.
func NewCatalog(store repository.Catalog, size int, ttl time.Duration) *Catalog {
	return &Catalog{
		store: store,
		lru:   expirable.NewLRU[int, *domain.CatalogItem](size, nil, ttl),
	}
}

// GetItem returns the cached item if present, otherwise reads through.
func (c *Catalog) GetItem(ctx context.Context, itemID int) (*domain.CatalogItem, error) {
	if item, ok := c.lru.Get(itemID); ok {
		return item, nil
	}

	item, err := c.store.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	c.lru.Add(itemID, item)
	return item, nil
}

// ListActive delegates to the underlying store.
func (c *Catalog) ListActive(ctx context.Context) ([]domain.CatalogItem, error) {
	return c.store.ListActive(ctx)
}

// Invalidate drops a cached item, for callers that learn of an external edit.
func (c *Catalog) Invalidate(itemID int) {
	c.lru.Remove(itemID)
}
