package economy

// StartingBalance is the coin grant every new account receives at registration.
const StartingBalance int64 = 2500

// RefundNumerator / RefundDenominator encode the fixed resale haircut:
// refund = floor(price * 7 / 10). The 30% cost is a policy constant, not a
// market price, and discourages buy/sell arbitrage.
const (
	RefundNumerator   int64 = 7
	RefundDenominator int64 = 10
)

// ConflictRetries is how many times an operation that lost a concurrent
// commit race is retried before the conflict surfaces to the caller.
const ConflictRetries = 1

// DefaultHistoryLimit caps transaction history reads when the caller does
// not specify a limit.
const DefaultHistoryLimit = 50

// MaxHistoryLimit is the hard ceiling for a single history page.
const MaxHistoryLimit = 500

// Log message constants
const (
	LogMsgBuyCalled         = "Buy called"
	LogMsgSellCalled        = "Sell called"
	LogMsgSetActiveCalled   = "SetActive called"
	LogMsgTransferCalled    = "Transfer called"
	LogMsgItemPurchased     = "Item purchased"
	LogMsgItemSold          = "Item sold"
	LogMsgSelectionUpdated  = "Active selection updated"
	LogMsgTransferCompleted = "Transfer completed"
	LogMsgConflictRetry     = "Commit lost a race, retrying"
)

// Error message formats
const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
)
