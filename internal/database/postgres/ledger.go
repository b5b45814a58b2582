package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ngogiaquyen/coinshop/internal/domain"
	"github.com/ngogiaquyen/coinshop/internal/repository"
)

// LedgerRepository implements the account ledger, inventory store and
// transaction log for PostgreSQL.
type LedgerRepository struct {
	db *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository(db *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// BeginTx starts the atomic unit for a balance-affecting operation.
func (r *LedgerRepository) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &LedgerTx{tx: tx}, nil
}

// CreateAccount registers an account and writes its GRANT record in one
// transaction, so the starting balance is journaled like every other
// balance mutation.
func (r *LedgerRepository) CreateAccount(ctx context.Context, username string, startingBalance int64) (*domain.Account, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO accounts (username, balance)
		VALUES ($1, $2)
		RETURNING account_id, username, balance, created_at, updated_at
	`
	var account domain.Account
	err = tx.QueryRow(ctx, query, username, startingBalance).Scan(
		&account.ID, &account.Username, &account.Balance, &account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		if mapped := mapError(err); errors.Is(mapped, domain.ErrConflict) {
			return nil, fmt.Errorf("%w: username %q already registered", domain.ErrConflict, username)
		}
		return nil, fmt.Errorf("failed to insert account: %w", err)
	}

	grant := `
		INSERT INTO transactions (account_id, kind, amount, description)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := tx.Exec(ctx, grant, account.ID, domain.TransactionGrant, startingBalance, "Welcome grant"); err != nil {
		return nil, fmt.Errorf("failed to append grant record: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &account, nil
}

// GetAccount retrieves an account by id
func (r *LedgerRepository) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT account_id, username, balance, created_at, updated_at FROM accounts WHERE account_id = $1`

	var account domain.Account
	err := r.db.QueryRow(ctx, query, accountID).Scan(
		&account.ID, &account.Username, &account.Balance, &account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// GetBalance reads the current balance without locking.
func (r *LedgerRepository) GetBalance(ctx context.Context, accountID string) (int64, error) {
	var balance int64
	err := r.db.QueryRow(ctx, `SELECT balance FROM accounts WHERE account_id = $1`, accountID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrAccountNotFound
		}
		return 0, fmt.Errorf("failed to get balance: %w", err)
	}
	return balance, nil
}

// GetOwnedItemIDs returns the ids of every item the account owns.
func (r *LedgerRepository) GetOwnedItemIDs(ctx context.Context, accountID string) ([]int, error) {
	rows, err := r.db.Query(ctx, `SELECT item_id FROM ownerships WHERE account_id = $1 ORDER BY item_id`, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query ownerships: %w", err)
	}
	defer rows.Close()

	ids := []int{}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan ownership: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ownerships: %w", err)
	}
	return ids, nil
}

// HasOwnership reports whether the account owns the item.
func (r *LedgerRepository) HasOwnership(ctx context.Context, accountID string, itemID int) (bool, error) {
	return hasOwnership(ctx, r.db, accountID, itemID)
}

// GetActiveSelections returns the account's active item per selectable category.
func (r *LedgerRepository) GetActiveSelections(ctx context.Context, accountID string) (*domain.ActiveSelections, error) {
	rows, err := r.db.Query(ctx, `SELECT category, item_id FROM active_selections WHERE account_id = $1`, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query selections: %w", err)
	}
	defer rows.Close()

	selections := &domain.ActiveSelections{}
	for rows.Next() {
		var category domain.Category
		var itemID int
		if err := rows.Scan(&category, &itemID); err != nil {
			return nil, fmt.Errorf("failed to scan selection: %w", err)
		}
		if slot := selections.Slot(category); slot != nil {
			id := itemID
			*slot = &id
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read selections: %w", err)
	}
	return selections, nil
}

// ListTransactions returns the account's log entries, newest first.
func (r *LedgerRepository) ListTransactions(ctx context.Context, accountID string, limit int) ([]domain.TransactionRecord, error) {
	query := `
		SELECT transaction_id, account_id, kind, amount, item_id, counterparty_id, transfer_key, description, created_at
		FROM transactions
		WHERE account_id = $1
		ORDER BY created_at DESC, transaction_id DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var records []domain.TransactionRecord
	for rows.Next() {
		var rec domain.TransactionRecord
		if err := rows.Scan(
			&rec.ID, &rec.AccountID, &rec.Kind, &rec.Amount,
			&rec.ItemID, &rec.CounterpartyID, &rec.TransferKey, &rec.Description, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}
	return records, nil
}

// querier abstracts pool vs. transaction for shared read helpers.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func hasOwnership(ctx context.Context, q querier, accountID string, itemID int) (bool, error) {
	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM ownerships WHERE account_id = $1 AND item_id = $2)`,
		accountID, itemID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check ownership: %w", err)
	}
	return exists, nil
}
