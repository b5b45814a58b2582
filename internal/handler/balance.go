package handler

import (
	"net/http"

	"github.com/ngogiaquyen/coinshop/internal/economy"
)

// BalanceResponse carries a single account balance
type BalanceResponse struct {
	Balance int64 `json:"balance"`
}

// HandleGetBalance handles reading the caller's coin balance
// @Summary Get balance
// @Description Get the caller's current coin balance
// @Tags account
// @Produce json
// @Success 200 {object} BalanceResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /balance [get]
func HandleGetBalance(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := CallerAccountID(r, w)
		if !ok {
			return
		}

		balance, err := svc.GetBalance(r.Context(), accountID)
		if err != nil {
			respondServiceError(w, r, "Get balance", err)
			return
		}

		respondJSON(w, http.StatusOK, BalanceResponse{Balance: balance})
	}
}
