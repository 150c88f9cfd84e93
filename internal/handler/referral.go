package handler

import (
	"net/http"

	"github.com/osse101/giftroll/internal/domain"
	"github.com/osse101/giftroll/internal/referral"
)

// HandleGetReferrals returns the referral screen for a player
// @Summary Get referral summary
// @Tags referrals
// @Produce json
// @Param id path int true "Telegram id"
// @Success 200 {object} domain.ReferralSummary
// @Failure 400 {object} map[string]string
// @Router /referrals/{id} [get]
func HandleGetReferrals(svc referral.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(w, r)
		if !ok {
			return
		}

		summary, err := svc.Summary(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "Get referrals", err)
			return
		}
		respondJSON(w, http.StatusOK, summary)
	}
}

// HandleWithdrawReferral serves POST /api/referrals/withdraw
// @Summary Move referral earnings to balance
// @Tags referrals
// @Accept json
// @Produce json
// @Param request body domain.ReferralWithdrawRequest true "Request"
// @Success 200 {object} domain.ReferralWithdrawResult
// @Failure 400 {object} map[string]string
// @Router /referrals/withdraw [post]
func HandleWithdrawReferral(svc referral.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.ReferralWithdrawRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Withdraw referral balance"); err != nil {
			return
		}

		res, err := svc.Withdraw(r.Context(), req.TelegramID)
		if err != nil {
			respondServiceError(w, r, "Withdraw referral balance", err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}
