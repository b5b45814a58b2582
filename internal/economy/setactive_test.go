package economy

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ngogiaquyen/coinshop/internal/domain"
)

func TestSetActive_Success(t *testing.T) {
	accountID := uuid.NewString()

	catalog := new(MockCatalog)
	ledger := new(MockLedger)
	tx := new(MockLedgerTx)

	catalog.On("GetItem", mock.Anything, 3).Return(testPanda, nil)
	ledger.On("BeginTx", mock.Anything).Return(tx, nil)
	tx.On("LockAccount", mock.Anything, accountID).
		Return(&domain.Account{ID: accountID, Balance: 2000}, nil)
	tx.On("HasOwnership", mock.Anything, accountID, 3).Return(true, nil)
	tx.On("UpsertSelection", mock.Anything, accountID, domain.CategoryPet, 3).Return(nil)
	tx.On("Commit", mock.Anything).Return(nil)
	tx.On("Rollback", mock.Anything).Return(errors.New(domain.ErrMsgTxClosed))

	svc := NewService(catalog, ledger)

	err := svc.SetActive(context.Background(), accountID, domain.CategoryPet, 3)

	require.NoError(t, err)
	tx.AssertExpectations(t)
}

func TestSetActive_NotOwned(t *testing.T) {
	accountID := uuid.NewString()

	catalog := new(MockCatalog)
	ledger := new(MockLedger)
	tx := new(MockLedgerTx)

	catalog.On("GetItem", mock.Anything, 3).Return(testPanda, nil)
	ledger.On("BeginTx", mock.Anything).Return(tx, nil)
	tx.On("LockAccount", mock.Anything, accountID).
		Return(&domain.Account{ID: accountID, Balance: 2000}, nil)
	tx.On("HasOwnership", mock.Anything, accountID, 3).Return(false, nil)
	tx.On("Rollback", mock.Anything).Return(nil)

	svc := NewService(catalog, ledger)

	err := svc.SetActive(context.Background(), accountID, domain.CategoryPet, 3)

	require.ErrorIs(t, err, domain.ErrNotOwned)
	tx.AssertNotCalled(t, "UpsertSelection")
	tx.AssertNotCalled(t, "Commit")
}

func TestSetActive_OwnershipCheckedUnderLock(t *testing.T) {
	// An item resold between the catalog read and the selection write must
	// not become active: the transactional check sees the committed delete.
	accountID := uuid.NewString()

	catalog := new(MockCatalog)
	ledger := new(MockLedger)
	tx := new(MockLedgerTx)

	catalog.On("GetItem", mock.Anything, 3).Return(testPanda, nil)
	ledger.On("BeginTx", mock.Anything).Return(tx, nil)

	var lockedFirst bool
	tx.On("LockAccount", mock.Anything, accountID).
		Run(func(args mock.Arguments) { lockedFirst = true }).
		Return(&domain.Account{ID: accountID, Balance: 2000}, nil)
	tx.On("HasOwnership", mock.Anything, accountID, 3).
		Run(func(args mock.Arguments) {
			require.True(t, lockedFirst, "ownership must be checked after the row lock")
		}).
		Return(false, nil)
	tx.On("Rollback", mock.Anything).Return(nil)

	svc := NewService(catalog, ledger)

	err := svc.SetActive(context.Background(), accountID, domain.CategoryPet, 3)

	require.ErrorIs(t, err, domain.ErrNotOwned)
	tx.AssertNotCalled(t, "UpsertSelection")
}

func TestSetActive_AccountNotFound(t *testing.T) {
	catalog := new(MockCatalog)
	ledger := new(MockLedger)
	tx := new(MockLedgerTx)

	catalog.On("GetItem", mock.Anything, 3).Return(testPanda, nil)
	ledger.On("BeginTx", mock.Anything).Return(tx, nil)
	tx.On("LockAccount", mock.Anything, mock.Anything).Return(nil, domain.ErrAccountNotFound)
	tx.On("Rollback", mock.Anything).Return(nil)

	svc := NewService(catalog, ledger)

	err := svc.SetActive(context.Background(), uuid.NewString(), domain.CategoryPet, 3)

	require.ErrorIs(t, err, domain.ErrAccountNotFound)
	tx.AssertNotCalled(t, "HasOwnership")
}

func TestSetActive_CategoryMismatch(t *testing.T) {
	accountID := uuid.NewString()

	catalog := new(MockCatalog)
	ledger := new(MockLedger)

	// Item 3 is a PET; activating it in the AVATAR slot must fail
	catalog.On("GetItem", mock.Anything, 3).Return(testPanda, nil)

	svc := NewService(catalog, ledger)

	err := svc.SetActive(context.Background(), accountID, domain.CategoryAvatar, 3)

	require.ErrorIs(t, err, domain.ErrInvalidRequest)
	ledger.AssertNotCalled(t, "BeginTx")
}

func TestSetActive_NonSelectableCategory(t *testing.T) {
	catalog := new(MockCatalog)
	ledger := new(MockLedger)

	svc := NewService(catalog, ledger)

	for _, category := range []domain.Category{domain.CategorySkin, domain.CategoryMusic} {
		err := svc.SetActive(context.Background(), uuid.NewString(), category, 3)
		require.ErrorIs(t, err, domain.ErrInvalidRequest, "category %s", category)
	}

	catalog.AssertNotCalled(t, "GetItem")
}

func TestSetActive_UnknownCategory(t *testing.T) {
	catalog := new(MockCatalog)
	ledger := new(MockLedger)

	svc := NewService(catalog, ledger)

	err := svc.SetActive(context.Background(), uuid.NewString(), domain.Category("HOUSE"), 3)

	require.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestSetActive_ItemNotFound(t *testing.T) {
	catalog := new(MockCatalog)
	ledger := new(MockLedger)

	catalog.On("GetItem", mock.Anything, 99).Return(nil, domain.ErrItemNotFound)

	svc := NewService(catalog, ledger)

	err := svc.SetActive(context.Background(), uuid.NewString(), domain.CategoryPet, 99)

	require.ErrorIs(t, err, domain.ErrItemNotFound)
	ledger.AssertNotCalled(t, "BeginTx")
}
