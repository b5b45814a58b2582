package economy

import (
	"context"
	"errors"
	"fmt"

	"github.com/ngogiaquyen/coinshop/internal/domain"
	"github.com/ngogiaquyen/coinshop/internal/logger"
	"github.com/ngogiaquyen/coinshop/internal/metrics"
	"github.com/ngogiaquyen/coinshop/internal/repository"
)

// ShopState is the composed read a client needs to render the shop: the
// caller's balance, owned items, active selections, and the purchasable
// catalog ordered by ascending price.
type ShopState struct {
	Balance      int64                `json:"balance"`
	OwnedItemIDs []int                `json:"owned_item_ids"`
	ActivePet    *int                 `json:"active_pet"`
	ActiveAvatar *int                 `json:"active_avatar"`
	ActiveTheme  *int                 `json:"active_theme"`
	Catalog      []domain.CatalogItem `json:"catalog"`
}

// BuyResult contains the result of a buy operation
type BuyResult struct {
	NewBalance int64 `json:"new_balance"`
}

// SellResult contains the result of a sell operation
type SellResult struct {
	NewBalance   int64  `json:"new_balance"`
	RefundAmount int64  `json:"refund_amount"`
	Message      string `json:"message"`
}

// TransferResult contains the sender-side result of a transfer
type TransferResult struct {
	NewBalance int64  `json:"new_balance"`
	Message    string `json:"message"`
}

// Service defines the interface for the virtual-economy transaction engine.
// It is the only writer to the account ledger, the inventory store and the
// transaction log.
type Service interface {
	Register(ctx context.Context, username string) (*domain.Account, error)
	GetShopState(ctx context.Context, accountID string) (*ShopState, error)
	GetBalance(ctx context.Context, accountID string) (int64, error)
	Buy(ctx context.Context, accountID string, itemID int, declaredPrice int64) (*BuyResult, error)
	Sell(ctx context.Context, accountID string, itemID int) (*SellResult, error)
	SetActive(ctx context.Context, accountID string, category domain.Category, itemID int) error
	Transfer(ctx context.Context, senderID, recipientID string, amount int64, transferKey string) (*TransferResult, error)
	GetHistory(ctx context.Context, accountID string, limit int) ([]domain.TransactionRecord, error)
}

type service struct {
	catalog repository.Catalog
	ledger  repository.Ledger
}

// NewService creates a new economy service
func NewService(catalog repository.Catalog, ledger repository.Ledger) Service {
	return &service{
		catalog: catalog,
		ledger:  ledger,
	}
}

// Register creates a new account with the starting grant.
func (s *service) Register(ctx context.Context, username string) (*domain.Account, error) {
	log := logger.FromContext(ctx)

	if username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrInvalidRequest)
	}

	account, err := s.ledger.CreateAccount(ctx, username, StartingBalance)
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	log.Info("Account registered", "account_id", account.ID, "username", username, "balance", account.Balance)
	return account, nil
}

// GetBalance reads the caller's balance directly from the ledger with no
// side effects.
func (s *service) GetBalance(ctx context.Context, accountID string) (int64, error) {
	return s.ledger.GetBalance(ctx, accountID)
}

// GetShopState composes the four shop reads. Ownership and balance changes
// are always co-committed by Buy/Sell, so plain reads can never observe an
// ownership record whose deduction never happened.
func (s *service) GetShopState(ctx context.Context, accountID string) (*ShopState, error) {
	balance, err := s.ledger.GetBalance(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}

	owned, err := s.ledger.GetOwnedItemIDs(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get owned items: %w", err)
	}

	selections, err := s.ledger.GetActiveSelections(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active selections: %w", err)
	}

	catalog, err := s.catalog.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog: %w", err)
	}

	return &ShopState{
		Balance:      balance,
		OwnedItemIDs: owned,
		ActivePet:    selections.Pet,
		ActiveAvatar: selections.Avatar,
		ActiveTheme:  selections.Theme,
		Catalog:      catalog,
	}, nil
}

// GetHistory returns the caller's transaction log entries, newest first.
func (s *service) GetHistory(ctx context.Context, accountID string, limit int) ([]domain.TransactionRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	return s.ledger.ListTransactions(ctx, accountID, limit)
}

// withConflictRetry runs op, retrying once when the atomic commit lost a
// concurrent race. Precondition failures surface immediately; only
// domain.ErrConflict is retried.
func (s *service) withConflictRetry(ctx context.Context, op func(ctx context.Context) error) error {
	var err error
	for attempt := 0; attempt <= ConflictRetries; attempt++ {
		err = op(ctx)
		if err == nil || !errors.Is(err, domain.ErrConflict) {
			return err
		}
		metrics.CommitConflicts.Inc()
		if attempt < ConflictRetries {
			logger.FromContext(ctx).Warn(LogMsgConflictRetry, "attempt", attempt+1)
		}
	}
	return err
}
