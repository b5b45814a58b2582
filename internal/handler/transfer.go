package handler

import (
	"net/http"

	"github.com/ngogiaquyen/coinshop/internal/economy"
	"github.com/ngogiaquyen/coinshop/internal/logger"
)

// TransferRequest represents the expected body of the transfer request.
// TransferKey is an optional client-chosen idempotency key; resubmitting
// the same key cannot double-apply the transfer.
type TransferRequest struct {
	RecipientID string `json:"recipient_id" validate:"required,uuid"`
	Amount      int64  `json:"amount" validate:"required,gt=0"`
	TransferKey string `json:"transfer_key" validate:"omitempty,uuid"`
}

// HandleTransfer handles moving coins between two accounts
// @Summary Transfer coins
// @Description Atomically move coins from the caller to another account
// @Tags transfer
// @Accept json
// @Produce json
// @Param request body TransferRequest true "Transfer details"
// @Success 200 {object} economy.TransferResult
// @Failure 400 {object} ErrorResponse
// @Failure 402 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /transfer [post]
func HandleTransfer(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := CallerAccountID(r, w)
		if !ok {
			return
		}

		var req TransferRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Transfer coins"); err != nil {
			return
		}

		result, err := svc.Transfer(r.Context(), accountID, req.RecipientID, req.Amount, req.TransferKey)
		if err != nil {
			respondServiceError(w, r, "Transfer coins", err)
			return
		}

		logger.FromContext(r.Context()).Info("Transfer completed",
			"sender_id", accountID, "recipient_id", req.RecipientID, "amount", req.Amount)

		respondJSON(w, http.StatusOK, result)
	}
}
