package handler

import (
	"net/http"

	"github.com/ngogiaquyen/coinshop/internal/domain"
	"github.com/ngogiaquyen/coinshop/internal/economy"
)

// HistoryResponse wraps a page of transaction records, newest first
type HistoryResponse struct {
	Transactions []domain.TransactionRecord `json:"transactions"`
}

// HandleGetTransactions handles reading the caller's transaction history
// @Summary Get transaction history
// @Description Get the caller's transaction log entries, newest first
// @Tags account
// @Produce json
// @Param limit query int false "Maximum number of records to return"
// @Success 200 {object} HistoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /transactions [get]
func HandleGetTransactions(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := CallerAccountID(r, w)
		if !ok {
			return
		}

		limit, ok := GetOptionalIntParam(r, w, "limit", economy.DefaultHistoryLimit)
		if !ok {
			return
		}

		records, err := svc.GetHistory(r.Context(), accountID, limit)
		if err != nil {
			respondServiceError(w, r, "Get transaction history", err)
			return
		}

		respondJSON(w, http.StatusOK, HistoryResponse{Transactions: records})
	}
}
