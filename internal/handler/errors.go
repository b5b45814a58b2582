package handler

import (
	"errors"
	"net/http"

	"github.com/ngogiaquyen/coinshop/internal/domain"
)

// Stable error kind categories returned in ErrorResponse.Kind. Clients
// branch on these, never on message text.
const (
	KindInvalidRequest    = "INVALID_REQUEST"
	KindUnauthorized      = "UNAUTHORIZED"
	KindInsufficientFunds = "INSUFFICIENT_FUNDS"
	KindAccountNotFound   = "ACCOUNT_NOT_FOUND"
	KindItemNotFound      = "ITEM_NOT_FOUND"
	KindAlreadyOwned      = "ALREADY_OWNED"
	KindNotOwned          = "NOT_OWNED"
	KindConflict          = "CONFLICT"
	KindDuplicateTransfer = "DUPLICATE_TRANSFER"
	KindInternal          = "INTERNAL"
)

// User-facing error messages for service errors
// These intentionally do not expose internal error details.
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgUnauthorizedError   = "Authentication failed"

	ErrMsgAccountNotFoundError = "Account not found"
	ErrMsgItemNotFoundError    = "Item not found"

	ErrMsgNotEnoughCoinsError    = "Not enough coins"
	ErrMsgAlreadyOwnedError      = "You already own that item"
	ErrMsgNotOwnedError          = "You don't own that item"
	ErrMsgConflictError          = "The operation conflicted with another request. Please retry."
	ErrMsgDuplicateTransferError = "That transfer was already processed"
)

// Generic HTTP error messages for client responses
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidLimit          = "Invalid limit parameter"
)

// mapServiceError maps domain errors to an HTTP status, a stable kind
// category and a user-facing message. Precondition failures on state the
// client believed it knew (ownership, replays, lost races) map to 409;
// insufficient funds keeps its dedicated 402 so clients can prompt topping
// up.
func mapServiceError(err error) (int, string, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest, KindInvalidRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, KindUnauthorized, ErrMsgUnauthorizedError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusPaymentRequired, KindInsufficientFunds, ErrMsgNotEnoughCoinsError
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound, KindAccountNotFound, ErrMsgAccountNotFoundError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, KindItemNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrAlreadyOwned):
		return http.StatusConflict, KindAlreadyOwned, ErrMsgAlreadyOwnedError
	case errors.Is(err, domain.ErrNotOwned):
		return http.StatusConflict, KindNotOwned, ErrMsgNotOwnedError
	case errors.Is(err, domain.ErrDuplicateTransfer):
		return http.StatusConflict, KindDuplicateTransfer, ErrMsgDuplicateTransferError
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, KindConflict, ErrMsgConflictError
	default:
		return http.StatusInternalServerError, KindInternal, ErrMsgGenericServerError
	}
}
