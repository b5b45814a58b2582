package economy

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ngogiaquyen/coinshop/internal/domain"
	"github.com/ngogiaquyen/coinshop/internal/logger"
	"github.com/ngogiaquyen/coinshop/internal/metrics"
	"github.com/ngogiaquyen/coinshop/internal/repository"
)

// Transfer moves coins from the sender to the recipient. Both account rows
// are locked in ascending id order so a concurrent reverse transfer cannot
// deadlock, and the sender's funds are re-validated under the lock because
// the caller-side pre-check may be stale.
//
// transferKey is a client-supplied idempotency token. A retry of an already
// committed transfer fails with domain.ErrDuplicateTransfer instead of
// double-sending. When empty, a key is generated server-side; such calls
// are not retry-safe and callers should re-query state after a timeout.
func (s *service) Transfer(ctx context.Context, senderID, recipientID string, amount int64, transferKey string) (*TransferResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgTransferCalled, "sender_id", senderID, "recipient_id", recipientID, "amount", amount)

	if recipientID == senderID {
		return nil, fmt.Errorf("%w: cannot transfer to self", domain.ErrInvalidRequest)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive, got %d", domain.ErrInvalidRequest, amount)
	}
	if transferKey == "" {
		transferKey = uuid.NewString()
	} else if _, err := uuid.Parse(transferKey); err != nil {
		return nil, fmt.Errorf("%w: transfer_key must be a UUID", domain.ErrInvalidRequest)
	}

	var result *TransferResult
	err := s.withConflictRetry(ctx, func(ctx context.Context) error {
		var opErr error
		result, opErr = s.transferOnce(ctx, senderID, recipientID, amount, transferKey)
		return opErr
	})
	if err != nil {
		return nil, err
	}

	metrics.TransfersCompleted.Inc()
	metrics.CoinsTransferred.Add(float64(amount))

	log.Info(LogMsgTransferCompleted, "sender_id", senderID, "recipient_id", recipientID, "amount", amount, "new_balance", result.NewBalance)
	return result, nil
}

func (s *service) transferOnce(ctx context.Context, senderID, recipientID string, amount int64, transferKey string) (*TransferResult, error) {
	tx, err := s.ledger.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	// Fixed global lock order: ascending account id.
	first, second := senderID, recipientID
	if second < first {
		first, second = second, first
	}

	locked := make(map[string]*domain.Account, 2)
	for _, id := range []string{first, second} {
		account, err := tx.LockAccount(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to lock account %s: %w", id, err)
		}
		locked[id] = account
	}
	sender, recipient := locked[senderID], locked[recipientID]

	// Re-check under the lock: any pre-check outside the transaction is
	// subject to a time-of-check/time-of-use gap.
	if sender.Balance < amount {
		return nil, fmt.Errorf("%w: balance %d, transfer amount %d",
			domain.ErrInsufficientFunds, sender.Balance, amount)
	}

	if err := tx.DebitBalance(ctx, senderID, amount); err != nil {
		return nil, fmt.Errorf("failed to debit sender: %w", err)
	}
	if err := tx.CreditBalance(ctx, recipientID, amount); err != nil {
		return nil, fmt.Errorf("failed to credit recipient: %w", err)
	}

	out := domain.TransactionRecord{
		AccountID:      senderID,
		Kind:           domain.TransactionTransferOut,
		Amount:         -amount,
		CounterpartyID: &recipientID,
		TransferKey:    &transferKey,
		Description:    fmt.Sprintf("Transferred %d coins to %s", amount, recipient.Username),
	}
	if err := tx.AppendTransaction(ctx, out); err != nil {
		return nil, fmt.Errorf("failed to append sender record: %w", err)
	}

	in := domain.TransactionRecord{
		AccountID:      recipientID,
		Kind:           domain.TransactionTransferIn,
		Amount:         amount,
		CounterpartyID: &senderID,
		TransferKey:    &transferKey,
		Description:    fmt.Sprintf("Received %d coins from %s", amount, sender.Username),
	}
	if err := tx.AppendTransaction(ctx, in); err != nil {
		return nil, fmt.Errorf("failed to append recipient record: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	return &TransferResult{
		NewBalance: sender.Balance - amount,
		Message:    fmt.Sprintf("Transferred %d coins to %s", amount, recipient.Username),
	}, nil
}
