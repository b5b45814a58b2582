package domain

import "time"

// TransactionKind identifies the balance-affecting event a record describes.
type TransactionKind string

const (
	TransactionGrant       TransactionKind = "GRANT"
	TransactionPurchase    TransactionKind = "PURCHASE"
	TransactionSell        TransactionKind = "SELL"
	TransactionTransferOut TransactionKind = "TRANSFER_OUT"
	TransactionTransferIn  TransactionKind = "TRANSFER_IN"
)

// TransactionRecord is an append-only entry in the transaction log. Every
// balance mutation produces exactly one record; a logical transfer produces
// two linked records with opposite-signed amounts.
type TransactionRecord struct {
	ID        int64           `json:"transaction_id"`
	AccountID string          `json:"account_id"`
	Kind      TransactionKind `json:"kind"`
	// Amount is signed: negative for PURCHASE and TRANSFER_OUT, positive
	// for GRANT, SELL and TRANSFER_IN.
	Amount         int64     `json:"amount"`
	ItemID         *int      `json:"item_id,omitempty"`
	CounterpartyID *string   `json:"counterparty_id,omitempty"`
	// TransferKey links the two records of one logical transfer and
	// deduplicates client retries of the same transfer.
	TransferKey *string   `json:"transfer_key,omitempty"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
