package economy

import (
	"context"
	"fmt"

	"github.com/ngogiaquyen/coinshop/internal/domain"
	"github.com/ngogiaquyen/coinshop/internal/logger"
	"github.com/ngogiaquyen/coinshop/internal/metrics"
	"github.com/ngogiaquyen/coinshop/internal/repository"
)

// Buy purchases a catalog item for the caller. The client-declared price
// must match the catalog's current price, which defends against stale client
// state and tampering. Balance debit, ownership insert and the log record
// commit as one atomic unit.
func (s *service) Buy(ctx context.Context, accountID string, itemID int, declaredPrice int64) (*BuyResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgBuyCalled, "account_id", accountID, "item_id", itemID, "declared_price", declaredPrice)

	// 1. Item must exist in the catalog
	item, err := s.catalog.GetItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	// 2. Declared price must match the catalog price
	if declaredPrice != item.Price {
		return nil, fmt.Errorf("%w: price mismatch for %q (declared %d, current %d)",
			domain.ErrInvalidRequest, item.Name, declaredPrice, item.Price)
	}

	var result *BuyResult
	err = s.withConflictRetry(ctx, func(ctx context.Context) error {
		var opErr error
		result, opErr = s.buyOnce(ctx, accountID, item)
		return opErr
	})
	if err != nil {
		return nil, err
	}

	metrics.ItemsBought.WithLabelValues(string(item.Category)).Inc()
	metrics.CoinsSpent.Add(float64(item.Price))

	log.Info(LogMsgItemPurchased, "account_id", accountID, "item", item.Name, "price", item.Price, "new_balance", result.NewBalance)
	return result, nil
}

// buyOnce runs the ownership and funds checks and the mutation inside one
// ledger transaction. The account row lock makes two concurrent buys by the
// same account serialize, so both can never pass the funds check.
func (s *service) buyOnce(ctx context.Context, accountID string, item *domain.CatalogItem) (*BuyResult, error) {
	tx, err := s.ledger.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	account, err := tx.LockAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock account: %w", err)
	}

	// 3. Caller must not already own the item
	owned, err := tx.HasOwnership(ctx, accountID, item.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check ownership: %w", err)
	}
	if owned {
		return nil, fmt.Errorf("%w: %q", domain.ErrAlreadyOwned, item.Name)
	}

	// 4. Balance must cover the price
	if account.Balance < item.Price {
		return nil, fmt.Errorf("%w: item %q costs %d, balance is %d",
			domain.ErrInsufficientFunds, item.Name, item.Price, account.Balance)
	}

	if err := tx.DebitBalance(ctx, accountID, item.Price); err != nil {
		return nil, fmt.Errorf("failed to debit balance: %w", err)
	}

	if err := tx.InsertOwnership(ctx, accountID, item.ID); err != nil {
		return nil, fmt.Errorf("failed to insert ownership: %w", err)
	}

	itemID := item.ID
	rec := domain.TransactionRecord{
		AccountID:   accountID,
		Kind:        domain.TransactionPurchase,
		Amount:      -item.Price,
		ItemID:      &itemID,
		Description: fmt.Sprintf("Bought %q", item.Name),
	}
	if err := tx.AppendTransaction(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to append transaction record: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	return &BuyResult{NewBalance: account.Balance - item.Price}, nil
}
