package handler

import (
	"net/http"

	"github.com/osse101/giftroll/internal/admin"
	"github.com/osse101/giftroll/internal/domain"
	"github.com/osse101/giftroll/internal/logger"
)

// AdminHandler serves /api/admin. The router guards it with the API key.
type AdminHandler struct {
	service admin.Service
}

func NewAdminHandler(service admin.Service) *AdminHandler {
	return &AdminHandler{service: service}
}

// HandleStats serves GET /api/admin/stats
// @Summary Get totals
// @Tags admin
// @Produce json
// @Success 200 {object} domain.AdminStats
// @Failure 400 {object} map[string]string
// @Router /admin/stats [get]
// @Security ApiKeyAuth
func (h *AdminHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		respondServiceError(w, r, "Admin stats", err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// HandleGetUser serves GET /api/admin/users/{id}
// @Summary Get a player
// @Tags admin
// @Produce json
// @Param id path int true "Telegram id"
// @Success 200 {object} domain.AdminUserDetail
// @Failure 400 {object} map[string]string
// @Router /admin/users/{id} [get]
// @Security ApiKeyAuth
func (h *AdminHandler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	detail, err := h.service.UserDetail(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Admin get user", err)
		return
	}
	respondJSON(w, http.StatusOK, detail)
}

// HandleUpdateUser serves POST /api/admin/users/{id}
// @Summary Update a player
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Telegram id"
// @Param request body domain.UserUpdate true "Request"
// @Success 200 {object} domain.User
// @Failure 400 {object} map[string]string
// @Router /admin/users/{id} [post]
// @Security ApiKeyAuth
func (h *AdminHandler) HandleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	var req domain.UserUpdate
	if err := DecodeAndValidateRequest(r, w, &req, "Admin update user"); err != nil {
		return
	}

	u, err := h.service.UpdateUser(r.Context(), id, req)
	if err != nil {
		respondServiceError(w, r, "Admin update user", err)
		return
	}

	logger.FromContext(r.Context()).Info("Admin user update applied", "telegramID", id)
	respondJSON(w, http.StatusOK, u)
}

// HandleSearchUsers matches ?q= against username, first name or id
// @Summary Search players
// @Tags admin
// @Produce json
// @Success 200 {array} domain.User
// @Failure 400 {object} map[string]string
// @Router /admin/users [get]
// @Security ApiKeyAuth
func (h *AdminHandler) HandleSearchUsers(w http.ResponseWriter, r *http.Request) {
	q, ok := GetQueryParam(r, w, "q")
	if !ok {
		return
	}

	users, err := h.service.SearchUsers(r.Context(), q)
	if err != nil {
		respondServiceError(w, r, "Admin search", err)
		return
	}
	respondJSON(w, http.StatusOK, users)
}

// HandlePendingWithdrawals serves GET /api/admin/withdrawals
// @Summary List pending withdrawals
// @Tags admin
// @Produce json
// @Success 200 {array} domain.Withdrawal
// @Failure 400 {object} map[string]string
// @Router /admin/withdrawals [get]
// @Security ApiKeyAuth
func (h *AdminHandler) HandlePendingWithdrawals(w http.ResponseWriter, r *http.Request) {
	pending, err := h.service.PendingWithdrawals(r.Context())
	if err != nil {
		respondServiceError(w, r, "Admin pending withdrawals", err)
		return
	}
	respondJSON(w, http.StatusOK, pending)
}

// HandleApproveWithdrawal serves POST /api/admin/withdrawals/{rid}/approve
// @Summary Approve a withdrawal
// @Tags admin
// @Produce json
// @Param rid path int true "Request id"
// @Success 200 {object} domain.Withdrawal
// @Failure 400 {object} map[string]string
// @Router /admin/withdrawals/{rid}/approve [post]
// @Security ApiKeyAuth
func (h *AdminHandler) HandleApproveWithdrawal(w http.ResponseWriter, r *http.Request) {
	rid, ok := pathInt64(w, r, "rid", ErrMsgInvalidRequestID)
	if !ok {
		return
	}

	res, err := h.service.ApproveWithdrawal(r.Context(), rid)
	if err != nil {
		respondServiceError(w, r, "Approve withdrawal", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// HandleRejectWithdrawal serves POST /api/admin/withdrawals/{rid}/reject
// @Summary Reject and refund a withdrawal
// @Tags admin
// @Accept json
// @Produce json
// @Param rid path int true "Request id"
// @Param request body domain.RejectRequest true "Request"
// @Success 200 {object} domain.Withdrawal
// @Failure 400 {object} map[string]string
// @Router /admin/withdrawals/{rid}/reject [post]
// @Security ApiKeyAuth
func (h *AdminHandler) HandleRejectWithdrawal(w http.ResponseWriter, r *http.Request) {
	rid, ok := pathInt64(w, r, "rid", ErrMsgInvalidRequestID)
	if !ok {
		return
	}

	var req domain.RejectRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Reject withdrawal"); err != nil {
		return
	}

	res, err := h.service.RejectWithdrawal(r.Context(), rid, req.Note)
	if err != nil {
		respondServiceError(w, r, "Reject withdrawal", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// HandleRecentGames serves GET /api/admin/games
// @Summary List recent games
// @Tags admin
// @Produce json
// @Success 200 {array} domain.GameHistory
// @Failure 400 {object} map[string]string
// @Router /admin/games [get]
// @Security ApiKeyAuth
func (h *AdminHandler) HandleRecentGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.service.RecentGames(r.Context())
	if err != nil {
		respondServiceError(w, r, "Admin recent games", err)
		return
	}
	respondJSON(w, http.StatusOK, games)
}
