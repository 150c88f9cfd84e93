package handler

import (
	"net/http"

	"github.com/osse101/giftroll/internal/domain"
	"github.com/osse101/giftroll/internal/inventory"
	"github.com/osse101/giftroll/internal/logger"
)

// HandleGetInventory lists the player's gifts
// @Summary List gifts
// @Tags inventory
// @Produce json
// @Param id path int true "Telegram id"
// @Success 200 {array} domain.InventoryItem
// @Failure 400 {object} map[string]string
// @Router /inventory/{id} [get]
func HandleGetInventory(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(w, r)
		if !ok {
			return
		}

		items, err := svc.List(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "Get inventory", err)
			return
		}
		respondJSON(w, http.StatusOK, items)
	}
}

// HandleSellGift serves POST /api/inventory/sell
// @Summary Sell a gift
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body domain.InventoryActionRequest true "Request"
// @Success 200 {object} domain.SellResult
// @Failure 400 {object} map[string]string
// @Router /inventory/sell [post]
func HandleSellGift(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.InventoryActionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Sell gift"); err != nil {
			return
		}

		res, err := svc.Sell(r.Context(), req.TelegramID, req.ItemID)
		if err != nil {
			respondServiceError(w, r, "Sell gift", err)
			return
		}

		logger.FromContext(r.Context()).Info("Gift sold", "telegramID", req.TelegramID, "itemID", req.ItemID, "price", res.Sold)
		respondJSON(w, http.StatusOK, res)
	}
}

// HandleWithdrawGift serves POST /api/inventory/withdraw_gift
// @Summary Withdraw a gift
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body domain.InventoryActionRequest true "Request"
// @Success 200 {object} domain.GiftWithdrawal
// @Failure 400 {object} map[string]string
// @Router /inventory/withdraw_gift [post]
func HandleWithdrawGift(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.InventoryActionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Withdraw gift"); err != nil {
			return
		}

		res, err := svc.WithdrawGift(r.Context(), req.TelegramID, req.ItemID)
		if err != nil {
			respondServiceError(w, r, "Withdraw gift", err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}
