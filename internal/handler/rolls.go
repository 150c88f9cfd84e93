package handler

import (
	"net/http"

	"github.com/osse101/giftroll/internal/domain"
	"github.com/osse101/giftroll/internal/logger"
	"github.com/osse101/giftroll/internal/rolls"
)

type RollsHandler struct {
	service rolls.Service
}

func NewRollsHandler(service rolls.Service) *RollsHandler {
	return &RollsHandler{service: service}
}

// HandleState returns the live round snapshot the client polls
// @Summary Get the live rolls round
// @Tags rolls
// @Produce json
// @Success 200 {object} domain.RoundSnapshot
// @Failure 400 {object} map[string]string
// @Router /rolls/state [get]
func (h *RollsHandler) HandleState(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.State(r.Context()))
}

// HandleBet serves POST /api/rolls/bet
// @Summary Place a rolls bet
// @Tags rolls
// @Accept json
// @Produce json
// @Param request body domain.RollsBetRequest true "Request"
// @Success 200 {object} domain.RollsBetResponse
// @Failure 400 {object} map[string]string
// @Router /rolls/bet [post]
func (h *RollsHandler) HandleBet(w http.ResponseWriter, r *http.Request) {
	var req domain.RollsBetRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Place bet"); err != nil {
		return
	}

	r = r.WithContext(logger.WithTelegramID(r.Context(), req.TelegramID))
	res, err := h.service.PlaceBet(r.Context(), req.TelegramID, req.Color, req.Amount)
	if err != nil {
		respondServiceError(w, r, "Place bet", err)
		return
	}

	logger.FromContext(r.Context()).Info("Bet placed",
		"color", req.Color, "amount", req.Amount, "round", res.Round)
	respondJSON(w, http.StatusOK, res)
}
