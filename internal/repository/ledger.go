package repository

import (
	"context"

	"github.com/ngogiaquyen/coinshop/internal/domain"
)

// Ledger defines the persistence interface for accounts, ownerships, active
// selections and the transaction log. The transaction engine is its only
// writer.
type Ledger interface {
	// CreateAccount registers a new account with the starting balance and
	// appends the matching GRANT record atomically.
	CreateAccount(ctx context.Context, username string, startingBalance int64) (*domain.Account, error)

	GetAccount(ctx context.Context, accountID string) (*domain.Account, error)
	GetBalance(ctx context.Context, accountID string) (int64, error)

	GetOwnedItemIDs(ctx context.Context, accountID string) ([]int, error)
	HasOwnership(ctx context.Context, accountID string, itemID int) (bool, error)

	GetActiveSelections(ctx context.Context, accountID string) (*domain.ActiveSelections, error)

	// ListTransactions returns the account's transaction history, newest
	// first, up to limit records.
	ListTransactions(ctx context.Context, accountID string, limit int) ([]domain.TransactionRecord, error)

	// BeginTx starts the atomic unit every mutating operation commits
	// through.
	BeginTx(ctx context.Context) (LedgerTx, error)
}

// LedgerTx is the atomic mutation surface of the ledger.
// All writes issued through a LedgerTx become externally observable only
// when Commit succeeds.
type LedgerTx interface {
	Tx

	// LockAccount reads the account row under an exclusive row lock,
	// serializing concurrent balance mutations on the same account.
	// Returns domain.ErrAccountNotFound for unknown accounts.
	LockAccount(ctx context.Context, accountID string) (*domain.Account, error)

	// DebitBalance decrements the balance, guarded so it can never go
	// negative. Returns domain.ErrInsufficientFunds when the guard fails.
	DebitBalance(ctx context.Context, accountID string, amount int64) error

	// CreditBalance increments the balance.
	CreditBalance(ctx context.Context, accountID string, amount int64) error

	HasOwnership(ctx context.Context, accountID string, itemID int) (bool, error)

	// InsertOwnership records ownership. Returns domain.ErrAlreadyOwned if
	// the (account, item) pair already exists.
	InsertOwnership(ctx context.Context, accountID string, itemID int) error

	// DeleteOwnership removes ownership, reporting whether a record existed.
	DeleteOwnership(ctx context.Context, accountID string, itemID int) (bool, error)

	// UpsertSelection sets the active item for a selectable category.
	// Idempotent: repeating the same selection is a no-op in effect.
	UpsertSelection(ctx context.Context, accountID string, category domain.Category, itemID int) error

	// ClearSelectionsForItem removes every active selection of the account
	// that references itemID.
	ClearSelectionsForItem(ctx context.Context, accountID string, itemID int) error

	// AppendTransaction appends a record to the transaction log. Returns
	// domain.ErrDuplicateTransfer when the record's transfer key was
	// already used for the same kind.
	AppendTransaction(ctx context.Context, rec domain.TransactionRecord) error
}
