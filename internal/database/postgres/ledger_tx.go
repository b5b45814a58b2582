package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ngogiaquyen/coinshop/internal/domain"
)

// LedgerTx implements repository.LedgerTx on top of a pgx transaction. Row
// locks acquired through LockAccount serialize concurrent balance mutations
// on the same account.
type LedgerTx struct {
	tx pgx.Tx
}

// Commit commits the transaction
func (t *LedgerTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return mapError(err)
	}
	return nil
}

// Rollback rolls back the transaction
func (t *LedgerTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// LockAccount reads the account row under FOR UPDATE. Callers locking two
// accounts must lock in ascending account id order to avoid deadlock.
func (t *LedgerTx) LockAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `
		SELECT account_id, username, balance, created_at, updated_at
		FROM accounts
		WHERE account_id = $1
		FOR UPDATE
	`
	var account domain.Account
	err := t.tx.QueryRow(ctx, query, accountID).Scan(
		&account.ID, &account.Username, &account.Balance, &account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to lock account: %w", mapError(err))
	}
	return &account, nil
}

// DebitBalance decrements the balance with a guard so it can never go
// negative, even if the caller's funds check raced a concurrent commit.
func (t *LedgerTx) DebitBalance(ctx context.Context, accountID string, amount int64) error {
	res, err := t.tx.Exec(ctx, `
		UPDATE accounts
		SET balance = balance - $2, updated_at = NOW()
		WHERE account_id = $1
		  AND balance >= $2
	`, accountID, amount)
	if err != nil {
		return fmt.Errorf("failed to debit balance: %w", mapError(err))
	}
	if res.RowsAffected() == 0 {
		return domain.ErrInsufficientFunds
	}
	return nil
}

// CreditBalance increments the balance.
func (t *LedgerTx) CreditBalance(ctx context.Context, accountID string, amount int64) error {
	res, err := t.tx.Exec(ctx, `
		UPDATE accounts
		SET balance = balance + $2, updated_at = NOW()
		WHERE account_id = $1
	`, accountID, amount)
	if err != nil {
		return fmt.Errorf("failed to credit balance: %w", mapError(err))
	}
	if res.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// HasOwnership reports whether the account owns the item, within the
// transaction's snapshot.
func (t *LedgerTx) HasOwnership(ctx context.Context, accountID string, itemID int) (bool, error) {
	return hasOwnership(ctx, t.tx, accountID, itemID)
}

// InsertOwnership records ownership. The primary key backstops the
// engine's pre-check: a concurrent duplicate insert fails AlreadyOwned.
func (t *LedgerTx) InsertOwnership(ctx context.Context, accountID string, itemID int) error {
	_, err := t.tx.Exec(ctx,
		`INSERT INTO ownerships (account_id, item_id) VALUES ($1, $2)`,
		accountID, itemID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert ownership: %w", mapError(err))
	}
	return nil
}

// DeleteOwnership removes ownership, reporting whether a record existed.
func (t *LedgerTx) DeleteOwnership(ctx context.Context, accountID string, itemID int) (bool, error) {
	res, err := t.tx.Exec(ctx,
		`DELETE FROM ownerships WHERE account_id = $1 AND item_id = $2`,
		accountID, itemID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete ownership: %w", mapError(err))
	}
	return res.RowsAffected() > 0, nil
}

// UpsertSelection sets the active item for a category, overwriting any
// previous selection. Runs inside the transaction so the ownership check
// guarding it and the write commit as one unit.
func (t *LedgerTx) UpsertSelection(ctx context.Context, accountID string, category domain.Category, itemID int) error {
	query := `
		INSERT INTO active_selections (account_id, category, item_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (account_id, category) DO UPDATE
		SET item_id = EXCLUDED.item_id, updated_at = NOW()
	`
	if _, err := t.tx.Exec(ctx, query, accountID, category, itemID); err != nil {
		return fmt.Errorf("failed to upsert selection: %w", mapError(err))
	}
	return nil
}

// ClearSelectionsForItem removes every active selection of the account that
// references the item.
func (t *LedgerTx) ClearSelectionsForItem(ctx context.Context, accountID string, itemID int) error {
	_, err := t.tx.Exec(ctx,
		`DELETE FROM active_selections WHERE account_id = $1 AND item_id = $2`,
		accountID, itemID,
	)
	if err != nil {
		return fmt.Errorf("failed to clear selections: %w", mapError(err))
	}
	return nil
}

// AppendTransaction appends a record to the transaction log.
func (t *LedgerTx) AppendTransaction(ctx context.Context, rec domain.TransactionRecord) error {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO transactions (account_id, kind, amount, item_id, counterparty_id, transfer_key, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, rec.AccountID, rec.Kind, rec.Amount, rec.ItemID, rec.CounterpartyID, rec.TransferKey, rec.Description)
	if err != nil {
		return fmt.Errorf("failed to append transaction: %w", mapError(err))
	}
	return nil
}
