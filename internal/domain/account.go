package domain

import "time"

// Account maps a user identity to a coin balance.
// Accounts are created at registration with a starting grant and are never
// deleted; the balance is mutated only by the transaction engine.
type Account struct {
	ID        string    `json:"account_id"`
	Username  string    `json:"username"`
	Balance   int64     `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
