package handler

import (
	"net/http"

	"github.com/osse101/giftroll/internal/leaderboard"
)

// HandleGetLeaderboard serves GET /api/leaderboard
// @Summary Get the leaderboard
// @Tags leaderboard
// @Produce json
// @Success 200 {array} domain.LeaderboardEntry
// @Failure 400 {object} map[string]string
// @Router /leaderboard [get]
func HandleGetLeaderboard(svc leaderboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := svc.Top(r.Context())
		if err != nil {
			respondServiceError(w, r, "Get leaderboard", err)
			return
		}
		respondJSON(w, http.StatusOK, entries)
	}
}
