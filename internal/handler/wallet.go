package handler

import (
	"net/http"

	"github.com/osse101/giftroll/internal/domain"
	"github.com/osse101/giftroll/internal/wallet"
)

type WalletHandler struct {
	service wallet.Service
}

func NewWalletHandler(service wallet.Service) *WalletHandler {
	return &WalletHandler{service: service}
}

// HandleDepositStars serves POST /api/deposit/stars
// @Summary Deposit Telegram Stars
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body domain.StarsDepositRequest true "Request"
// @Success 200 {object} domain.DepositResult
// @Failure 400 {object} map[string]string
// @Router /deposit/stars [post]
func (h *WalletHandler) HandleDepositStars(w http.ResponseWriter, r *http.Request) {
	var req domain.StarsDepositRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Stars deposit"); err != nil {
		return
	}

	res, err := h.service.DepositStars(r.Context(), req.TelegramID, req.Stars)
	if err != nil {
		respondServiceError(w, r, "Stars deposit", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// HandleDepositTON opens a pending invoice; nothing is credited until it is confirmed
// @Summary Open a TON deposit invoice
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body domain.TONDepositRequest true "Request"
// @Success 200 {object} domain.TONInvoice
// @Failure 400 {object} map[string]string
// @Router /deposit/ton [post]
func (h *WalletHandler) HandleDepositTON(w http.ResponseWriter, r *http.Request) {
	var req domain.TONDepositRequest
	if err := DecodeAndValidateRequest(r, w, &req, "TON deposit"); err != nil {
		return
	}

	invoice, err := h.service.CreateTONInvoice(r.Context(), req.TelegramID, req.Amount)
	if err != nil {
		respondServiceError(w, r, "TON deposit", err)
		return
	}
	respondJSON(w, http.StatusOK, invoice)
}

// HandleConfirmDeposit serves POST /api/deposit/confirm
// @Summary Confirm a TON deposit
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body domain.ConfirmDepositRequest true "Request"
// @Success 200 {object} domain.DepositResult
// @Failure 400 {object} map[string]string
// @Router /deposit/confirm [post]
func (h *WalletHandler) HandleConfirmDeposit(w http.ResponseWriter, r *http.Request) {
	var req domain.ConfirmDepositRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Confirm deposit"); err != nil {
		return
	}

	res, err := h.service.ConfirmTONDeposit(r.Context(), req.TelegramID, req.Memo)
	if err != nil {
		respondServiceError(w, r, "Confirm deposit", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// HandleWithdraw serves POST /api/withdraw
// @Summary Request a withdrawal
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body domain.WithdrawRequest true "Request"
// @Success 200 {object} domain.WithdrawResult
// @Failure 400 {object} map[string]string
// @Router /withdraw [post]
func (h *WalletHandler) HandleWithdraw(w http.ResponseWriter, r *http.Request) {
	var req domain.WithdrawRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Withdraw"); err != nil {
		return
	}

	res, err := h.service.Withdraw(r.Context(), req.TelegramID, req.Amount, req.Wallet)
	if err != nil {
		respondServiceError(w, r, "Withdraw", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// HandleListWithdrawals serves GET /api/withdrawals/{id}
// @Summary List withdrawal requests
// @Tags wallet
// @Produce json
// @Param id path int true "Telegram id"
// @Success 200 {array} domain.WithdrawalView
// @Failure 400 {object} map[string]string
// @Router /withdrawals/{id} [get]
func (h *WalletHandler) HandleListWithdrawals(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	views, err := h.service.ListWithdrawals(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "List withdrawals", err)
		return
	}
	respondJSON(w, http.StatusOK, views)
}
