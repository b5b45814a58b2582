package economy

import (
	"context"
	"fmt"

	"github.com/ngogiaquyen/coinshop/internal/domain"
	"github.com/ngogiaquyen/coinshop/internal/logger"
	"github.com/ngogiaquyen/coinshop/internal/metrics"
	"github.com/ngogiaquyen/coinshop/internal/repository"
)

// RefundFor returns the resale refund for an item price: floor(price * 0.7).
func RefundFor(price int64) int64 {
	return price * RefundNumerator / RefundDenominator
}

// Sell resells an owned item for a fixed 70% refund. Ownership removal,
// balance credit, selection cleanup and the log record commit as one atomic
// unit; any active selection referencing the item is cleared in the same
// step so a selection can never point at an unowned item.
func (s *service) Sell(ctx context.Context, accountID string, itemID int) (*SellResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSellCalled, "account_id", accountID, "item_id", itemID)

	item, err := s.catalog.GetItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	var result *SellResult
	err = s.withConflictRetry(ctx, func(ctx context.Context) error {
		var opErr error
		result, opErr = s.sellOnce(ctx, accountID, item)
		return opErr
	})
	if err != nil {
		return nil, err
	}

	metrics.ItemsSold.WithLabelValues(string(item.Category)).Inc()
	metrics.CoinsEarned.Add(float64(result.RefundAmount))

	log.Info(LogMsgItemSold, "account_id", accountID, "item", item.Name, "refund", result.RefundAmount, "new_balance", result.NewBalance)
	return result, nil
}

func (s *service) sellOnce(ctx context.Context, accountID string, item *domain.CatalogItem) (*SellResult, error) {
	refund := RefundFor(item.Price)

	tx, err := s.ledger.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	account, err := tx.LockAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock account: %w", err)
	}

	removed, err := tx.DeleteOwnership(ctx, accountID, item.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete ownership: %w", err)
	}
	if !removed {
		return nil, fmt.Errorf("%w: %q", domain.ErrNotOwned, item.Name)
	}

	if err := tx.CreditBalance(ctx, accountID, refund); err != nil {
		return nil, fmt.Errorf("failed to credit balance: %w", err)
	}

	if err := tx.ClearSelectionsForItem(ctx, accountID, item.ID); err != nil {
		return nil, fmt.Errorf("failed to clear selections: %w", err)
	}

	itemID := item.ID
	rec := domain.TransactionRecord{
		AccountID:   accountID,
		Kind:        domain.TransactionSell,
		Amount:      refund,
		ItemID:      &itemID,
		Description: fmt.Sprintf("Sold %q", item.Name),
	}
	if err := tx.AppendTransaction(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to append transaction record: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	return &SellResult{
		NewBalance:   account.Balance + refund,
		RefundAmount: refund,
		Message:      fmt.Sprintf("Sold %q for %d coins", item.Name, refund),
	}, nil
}
