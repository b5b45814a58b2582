package handler

import (
	"net/http"

	"github.com/ngogiaquyen/coinshop/internal/economy"
	"github.com/ngogiaquyen/coinshop/internal/logger"
)

// RegisterRequest represents the expected body of the register request
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32,excludesall= "`
}

// RegisterResponse returns the new account with its starting grant applied
type RegisterResponse struct {
	AccountID string `json:"account_id"`
	Username  string `json:"username"`
	Balance   int64  `json:"balance"`
}

// HandleRegister handles account creation
// @Summary Register account
// @Description Create a new account with the starting coin grant
// @Tags account
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration details"
// @Success 201 {object} RegisterResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /account/register [post]
func HandleRegister(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Register account"); err != nil {
			return
		}

		account, err := svc.Register(r.Context(), req.Username)
		if err != nil {
			respondServiceError(w, r, "Register account", err)
			return
		}

		logger.FromContext(r.Context()).Info("Account registered", "account_id", account.ID, "username", account.Username)

		respondJSON(w, http.StatusCreated, RegisterResponse{
			AccountID: account.ID,
			Username:  account.Username,
			Balance:   account.Balance,
		})
	}
}
