package handler

import (
	"net/http"

	"github.com/osse101/giftroll/internal/domain"
	"github.com/osse101/giftroll/internal/logger"
	"github.com/osse101/giftroll/internal/user"
)

// HandleInit registers or refreshes the player opening the Mini App
// @Summary Register or refresh a player
// @Tags users
// @Accept json
// @Produce json
// @Param request body domain.InitRequest true "Request"
// @Success 200 {object} domain.User
// @Failure 400 {object} map[string]string
// @Router /init [post]
func HandleInit(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.InitRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Init"); err != nil {
			return
		}

		r = r.WithContext(logger.WithTelegramID(r.Context(), req.TelegramID))
		u, err := svc.Init(r.Context(), req)
		if err != nil {
			respondServiceError(w, r, "Init", err)
			return
		}

		logger.FromContext(r.Context()).Info("User initialised")
		respondJSON(w, http.StatusOK, u)
	}
}

// HandleGetBalance returns {balance, ref_balance}
// @Summary Get balances
// @Tags users
// @Produce json
// @Param id path int true "Telegram id"
// @Success 200 {object} domain.BalanceView
// @Failure 400 {object} map[string]string
// @Router /balance/{id} [get]
func HandleGetBalance(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(w, r)
		if !ok {
			return
		}

		balance, err := svc.GetBalance(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "Get balance", err)
			return
		}
		respondJSON(w, http.StatusOK, balance)
	}
}

// HandleGetHistory serves GET /api/history/{id}
// @Summary List recent games
// @Tags users
// @Produce json
// @Param id path int true "Telegram id"
// @Success 200 {array} domain.GameHistory
// @Failure 400 {object} map[string]string
// @Router /history/{id} [get]
func HandleGetHistory(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(w, r)
		if !ok {
			return
		}

		history, err := svc.GetHistory(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "Get history", err)
			return
		}
		respondJSON(w, http.StatusOK, history)
	}
}
