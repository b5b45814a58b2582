package repository

import (
	"context"

	"github.com/ngogiaquyen/coinshop/internal/domain"
)

// Catalog defines the read-only interface to the item catalog. The
// transaction engine validates price and existence against it and never
// mutates it.
type Catalog interface {
	// GetItem returns an item by id regardless of its active flag, so
	// already-owned inactive items remain resolvable.
	GetItem(ctx context.Context, itemID int) (*domain.CatalogItem, error)

	// ListActive returns purchasable items ordered by ascending price.
	// Items are active unless explicitly marked inactive.
	ListActive(ctx context.Context) ([]domain.CatalogItem, error)
}
