package handler

import (
	"net/http"

	"github.com/osse101/giftroll/internal/domain"
	"github.com/osse101/giftroll/internal/upgrade"
)

// HandleSpin runs one gift upgrade spin
// @Summary Spin the gift upgrade wheel
// @Tags upgrade
// @Accept json
// @Produce json
// @Param request body domain.SpinRequest true "Request"
// @Success 200 {object} domain.SpinResult
// @Failure 400 {object} map[string]string
// @Router /roulette/spin [post]
func HandleSpin(svc upgrade.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.SpinRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Spin"); err != nil {
			return
		}

		res, err := svc.Spin(r.Context(), req.TelegramID, req.Stake, req.Multiplier)
		if err != nil {
			respondServiceError(w, r, "Spin", err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}
