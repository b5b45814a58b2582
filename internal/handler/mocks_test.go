package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ngogiaquyen/coinshop/internal/domain"
	"github.com/ngogiaquyen/coinshop/internal/economy"
)

// MockEconomyService is a mock implementation of economy.Service
type MockEconomyService struct {
	mock.Mock
}

func (m *MockEconomyService) Register(ctx context.Context, username string) (*domain.Account, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockEconomyService) GetShopState(ctx context.Context, accountID string) (*economy.ShopState, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.ShopState), args.Error(1)
}

func (m *MockEconomyService) GetBalance(ctx context.Context, accountID string) (int64, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEconomyService) Buy(ctx context.Context, accountID string, itemID int, declaredPrice int64) (*economy.BuyResult, error) {
	args := m.Called(ctx, accountID, itemID, declaredPrice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.BuyResult), args.Error(1)
}

func (m *MockEconomyService) Sell(ctx context.Context, accountID string, itemID int) (*economy.SellResult, error) {
	args := m.Called(ctx, accountID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.SellResult), args.Error(1)
}

func (m *MockEconomyService) SetActive(ctx context.Context, accountID string, category domain.Category, itemID int) error {
	args := m.Called(ctx, accountID, category, itemID)
	return args.Error(0)
}

func (m *MockEconomyService) Transfer(ctx context.Context, senderID, recipientID string, amount int64, transferKey string) (*economy.TransferResult, error) {
	args := m.Called(ctx, senderID, recipientID, amount, transferKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.TransferResult), args.Error(1)
}

func (m *MockEconomyService) GetHistory(ctx context.Context, accountID string, limit int) ([]domain.TransactionRecord, error) {
	args := m.Called(ctx, accountID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionRecord), args.Error(1)
}
