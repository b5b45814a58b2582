package economy

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ngogiaquyen/coinshop/internal/domain"
	"github.com/ngogiaquyen/coinshop/internal/repository"
)

// MockCatalog is a mock implementation of repository.Catalog
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) GetItem(ctx context.Context, itemID int) (*domain.CatalogItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogItem), args.Error(1)
}

func (m *MockCatalog) ListActive(ctx context.Context) ([]domain.CatalogItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CatalogItem), args.Error(1)
}

// MockLedger is a mock implementation of repository.Ledger
type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) CreateAccount(ctx context.Context, username string, startingBalance int64) (*domain.Account, error) {
	args := m.Called(ctx, username, startingBalance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockLedger) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockLedger) GetBalance(ctx context.Context, accountID string) (int64, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedger) GetOwnedItemIDs(ctx context.Context, accountID string) ([]int, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockLedger) HasOwnership(ctx context.Context, accountID string, itemID int) (bool, error) {
	args := m.Called(ctx, accountID, itemID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLedger) GetActiveSelections(ctx context.Context, accountID string) (*domain.ActiveSelections, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ActiveSelections), args.Error(1)
}

func (m *MockLedger) ListTransactions(ctx context.Context, accountID string, limit int) ([]domain.TransactionRecord, error) {
	args := m.Called(ctx, accountID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionRecord), args.Error(1)
}

func (m *MockLedger) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.LedgerTx), args.Error(1)
}

// MockLedgerTx is a mock implementation of repository.LedgerTx
type MockLedgerTx struct {
	mock.Mock
}

func (m *MockLedgerTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLedgerTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLedgerTx) LockAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockLedgerTx) DebitBalance(ctx context.Context, accountID string, amount int64) error {
	args := m.Called(ctx, accountID, amount)
	return args.Error(0)
}

func (m *MockLedgerTx) CreditBalance(ctx context.Context, accountID string, amount int64) error {
	args := m.Called(ctx, accountID, amount)
	return args.Error(0)
}

func (m *MockLedgerTx) HasOwnership(ctx context.Context, accountID string, itemID int) (bool, error) {
	args := m.Called(ctx, accountID, itemID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLedgerTx) InsertOwnership(ctx context.Context, accountID string, itemID int) error {
	args := m.Called(ctx, accountID, itemID)
	return args.Error(0)
}

func (m *MockLedgerTx) DeleteOwnership(ctx context.Context, accountID string, itemID int) (bool, error) {
	args := m.Called(ctx, accountID, itemID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLedgerTx) UpsertSelection(ctx context.Context, accountID string, category domain.Category, itemID int) error {
	args := m.Called(ctx, accountID, category, itemID)
	return args.Error(0)
}

func (m *MockLedgerTx) ClearSelectionsForItem(ctx context.Context, accountID string, itemID int) error {
	args := m.Called(ctx, accountID, itemID)
	return args.Error(0)
}

func (m *MockLedgerTx) AppendTransaction(ctx context.Context, rec domain.TransactionRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}
