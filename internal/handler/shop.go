package handler

import (
	"net/http"

	"github.com/ngogiaquyen/coinshop/internal/domain"
	"github.com/ngogiaquyen/coinshop/internal/economy"
	"github.com/ngogiaquyen/coinshop/internal/logger"
)

// BuyRequest represents the expected body of the buy request. DeclaredPrice
// is the price the client rendered; the purchase is rejected if it no longer
// matches the catalog.
type BuyRequest struct {
	ItemID        int   `json:"item_id" validate:"required,gt=0"`
	DeclaredPrice int64 `json:"declared_price" validate:"required,gt=0"`
}

// SellRequest represents the expected body of the sell request
type SellRequest struct {
	ItemID int `json:"item_id" validate:"required,gt=0"`
}

// SetActiveRequest represents the expected body of the set-active request
type SetActiveRequest struct {
	Category string `json:"category" validate:"required,category"`
	ItemID   int    `json:"item_id" validate:"required,gt=0"`
}

// HandleGetShop handles reading the composed shop state
// @Summary Get shop state
// @Description Get the caller's balance, owned items, active selections and the purchasable catalog
// @Tags shop
// @Produce json
// @Success 200 {object} economy.ShopState
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /shop [get]
func HandleGetShop(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := CallerAccountID(r, w)
		if !ok {
			return
		}

		state, err := svc.GetShopState(r.Context(), accountID)
		if err != nil {
			respondServiceError(w, r, "Get shop state", err)
			return
		}

		respondJSON(w, http.StatusOK, state)
	}
}

// HandleBuy handles purchasing a catalog item
// @Summary Buy item
// @Description Atomically deduct the item price and grant ownership
// @Tags shop
// @Accept json
// @Produce json
// @Param request body BuyRequest true "Purchase details"
// @Success 200 {object} economy.BuyResult
// @Failure 400 {object} ErrorResponse
// @Failure 402 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /shop/buy [post]
func HandleBuy(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := CallerAccountID(r, w)
		if !ok {
			return
		}

		var req BuyRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Buy item"); err != nil {
			return
		}

		result, err := svc.Buy(r.Context(), accountID, req.ItemID, req.DeclaredPrice)
		if err != nil {
			respondServiceError(w, r, "Buy item", err)
			return
		}

		logger.FromContext(r.Context()).Info("Item purchased", "account_id", accountID, "item_id", req.ItemID)

		respondJSON(w, http.StatusOK, result)
	}
}

// HandleSell handles selling an owned item back to the shop
// @Summary Sell item
// @Description Remove ownership and credit the fixed refund fraction of the price
// @Tags shop
// @Accept json
// @Produce json
// @Param request body SellRequest true "Sale details"
// @Success 200 {object} economy.SellResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /shop/sell [post]
func HandleSell(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := CallerAccountID(r, w)
		if !ok {
			return
		}

		var req SellRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Sell item"); err != nil {
			return
		}

		result, err := svc.Sell(r.Context(), accountID, req.ItemID)
		if err != nil {
			respondServiceError(w, r, "Sell item", err)
			return
		}

		logger.FromContext(r.Context()).Info("Item sold", "account_id", accountID, "item_id", req.ItemID, "refund", result.RefundAmount)

		respondJSON(w, http.StatusOK, result)
	}
}

// HandleSetActive handles equipping an owned item in its category slot
// @Summary Set active item
// @Description Equip an owned item as the active selection for its category
// @Tags shop
// @Accept json
// @Produce json
// @Param request body SetActiveRequest true "Selection details"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /shop/active [post]
func HandleSetActive(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := CallerAccountID(r, w)
		if !ok {
			return
		}

		var req SetActiveRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set active item"); err != nil {
			return
		}

		category, err := domain.ParseCategory(req.Category)
		if err != nil {
			respondServiceError(w, r, "Set active item", err)
			return
		}

		if err := svc.SetActive(r.Context(), accountID, category, req.ItemID); err != nil {
			respondServiceError(w, r, "Set active item", err)
			return
		}

		logger.FromContext(r.Context()).Info("Active selection updated", "account_id", accountID, "category", category, "item_id", req.ItemID)

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Active selection updated"})
	}
}
