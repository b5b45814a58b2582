package economy

import (
	"context"
	"fmt"

	"github.com/ngogiaquyen/coinshop/internal/domain"
	"github.com/ngogiaquyen/coinshop/internal/logger"
	"github.com/ngogiaquyen/coinshop/internal/repository"
)

// SetActive marks an owned item as the account's active selection for its
// category. Not a balance-affecting event: no transaction record is written
// and repeating the same selection is a no-op in effect.
func (s *service) SetActive(ctx context.Context, accountID string, category domain.Category, itemID int) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSetActiveCalled, "account_id", accountID, "category", category, "item_id", itemID)

	if !category.Valid() {
		return fmt.Errorf("%w: unknown category %q", domain.ErrInvalidRequest, category)
	}
	if !category.Selectable() {
		return fmt.Errorf("%w: category %s does not support activation", domain.ErrInvalidRequest, category)
	}

	item, err := s.catalog.GetItem(ctx, itemID)
	if err != nil {
		return fmt.Errorf("failed to get item: %w", err)
	}
	if item.Category != category {
		return fmt.Errorf("%w: item %q is %s, not %s", domain.ErrInvalidRequest, item.Name, item.Category, category)
	}

	if err := s.withConflictRetry(ctx, func(ctx context.Context) error {
		return s.setActiveOnce(ctx, accountID, category, item)
	}); err != nil {
		return err
	}

	log.Info(LogMsgSelectionUpdated, "account_id", accountID, "category", category, "item", item.Name)
	return nil
}

// setActiveOnce runs the ownership check and the selection write inside one
// ledger transaction. The account row lock serializes it against a
// concurrent Sell of the same item, so a selection can never outlive the
// ownership it references.
func (s *service) setActiveOnce(ctx context.Context, accountID string, category domain.Category, item *domain.CatalogItem) error {
	tx, err := s.ledger.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if _, err := tx.LockAccount(ctx, accountID); err != nil {
		return fmt.Errorf("failed to lock account: %w", err)
	}

	owned, err := tx.HasOwnership(ctx, accountID, item.ID)
	if err != nil {
		return fmt.Errorf("failed to check ownership: %w", err)
	}
	if !owned {
		return fmt.Errorf("%w: %q", domain.ErrNotOwned, item.Name)
	}

	if err := tx.UpsertSelection(ctx, accountID, category, item.ID); err != nil {
		return fmt.Errorf("failed to upsert selection: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}
	return nil
}
