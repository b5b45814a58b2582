package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ngogiaquyen/coinshop/internal/domain"
)

// CatalogRepository implements the catalog store for PostgreSQL. The engine
// only ever reads from it.
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

const catalogColumns = `item_id, name, COALESCE(item_description, ''), price, category,
	COALESCE(image_ref, ''), COALESCE(media_ref, ''), COALESCE(is_active, TRUE), created_at, updated_at`

// GetItem retrieves an item by id regardless of its active flag, so items
// already owned stay resolvable after being retired from the listing.
func (r *CatalogRepository) GetItem(ctx context.Context, itemID int) (*domain.CatalogItem, error) {
	query := `SELECT ` + catalogColumns + ` FROM catalog_items WHERE item_id = $1`

	var item domain.CatalogItem
	err := r.db.QueryRow(ctx, query, itemID).Scan(
		&item.ID, &item.Name, &item.Description, &item.Price, &item.Category,
		&item.ImageRef, &item.MediaRef, &item.Active, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrItemNotFound, itemID)
		}
		return nil, fmt.Errorf("failed to get catalog item: %w", err)
	}
	return &item, nil
}

// ListActive returns purchasable items ordered by ascending price. An unset
// active flag counts as active; only an explicit FALSE excludes an item.
func (r *CatalogRepository) ListActive(ctx context.Context) ([]domain.CatalogItem, error) {
	query := `SELECT ` + catalogColumns + `
		FROM catalog_items
		WHERE is_active IS DISTINCT FROM FALSE
		ORDER BY price ASC, item_id ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog items: %w", err)
	}
	defer rows.Close()

	var items []domain.CatalogItem
	for rows.Next() {
		var item domain.CatalogItem
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Description, &item.Price, &item.Category,
			&item.ImageRef, &item.MediaRef, &item.Active, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan catalog item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read catalog items: %w", err)
	}
	return items, nil
}
