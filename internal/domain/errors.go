package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Account errors
	ErrMsgAccountNotFound = "account not found"

	// Catalog errors
	ErrMsgItemNotFound = "item not found"

	// Ownership errors
	ErrMsgAlreadyOwned = "item already owned"
	ErrMsgNotOwned     = "item not owned"

	// Ledger errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgConflict          = "operation lost a concurrent race"
	ErrMsgDuplicateTransfer = "transfer already processed"

	// Request errors
	ErrMsgInvalidRequest = "invalid request"
	ErrMsgUnauthorized   = "unauthorized"

	// Database/System errors
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Account errors
	ErrAccountNotFound = errors.New(ErrMsgAccountNotFound)

	// Catalog errors
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	// Ownership errors
	ErrAlreadyOwned = errors.New(ErrMsgAlreadyOwned)
	ErrNotOwned     = errors.New(ErrMsgNotOwned)

	// Ledger errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrConflict          = errors.New(ErrMsgConflict)
	ErrDuplicateTransfer = errors.New(ErrMsgDuplicateTransfer)

	// Request errors
	ErrInvalidRequest = errors.New(ErrMsgInvalidRequest)
	ErrUnauthorized   = errors.New(ErrMsgUnauthorized)
)
