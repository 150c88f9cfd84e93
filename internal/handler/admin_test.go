package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/giftroll/internal/domain"
	"github.com/osse101/giftroll/mocks"
)

func TestAdminHandler_Stats(t *testing.T) {
	svc := mocks.NewMockAdminService(t)
	svc.EXPECT().Stats(mock.Anything).Return(&domain.AdminStats{
		TotalUsers: 3, Online24h: 2, Online5m: 1, TotalDeposited: decimal.RequireFromString("42.5"),
	}, nil)

	h := NewAdminHandler(svc)
	rec := serve(t, http.MethodGet, "/api/admin/stats", "/api/admin/stats", nil, h.HandleStats)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total_users":3,"online_24h":2,"online_5m":1,"total_deposited":42.5}`, rec.Body.String())
}

func TestAdminHandler_GetUser(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := mocks.NewMockAdminService(t)
		svc.EXPECT().UserDetail(mock.Anything, int64(5)).Return(&domain.AdminUserDetail{
			User:        &domain.User{TelegramID: 5, Username: "alice"},
			Games:       []domain.GameHistory{},
			Withdrawals: []domain.Withdrawal{},
			Inventory:   []domain.InventoryItem{},
		}, nil)

		h := NewAdminHandler(svc)
		rec := serve(t, http.MethodGet, "/api/admin/users/{id}", "/api/admin/users/5", nil, h.HandleGetUser)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[map[string]any](t, rec)
		assert.Equal(t, []any{}, body["games"])
		assert.Equal(t, "alice", body["user"].(map[string]any)["username"])
	})

	t.Run("missing", func(t *testing.T) {
		svc := mocks.NewMockAdminService(t)
		svc.EXPECT().UserDetail(mock.Anything, int64(6)).Return(nil, domain.ErrUserNotFound)

		h := NewAdminHandler(svc)
		rec := serve(t, http.MethodGet, "/api/admin/users/{id}", "/api/admin/users/6", nil, h.HandleGetUser)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAdminHandler_UpdateUser(t *testing.T) {
	t.Run("applies update", func(t *testing.T) {
		svc := mocks.NewMockAdminService(t)
		svc.EXPECT().UpdateUser(mock.Anything, int64(5), mock.Anything).
			RunAndReturn(func(_ context.Context, _ int64, u domain.UserUpdate) (*domain.User, error) {
				require.NotNil(t, u.BalanceAdd)
				require.NotNil(t, u.RefPercent)
				assert.True(t, u.BalanceAdd.Equal(decimal.NewFromInt(5)))
				assert.Nil(t, u.BalanceSet)
				assert.Equal(t, 25, *u.RefPercent)
				return &domain.User{TelegramID: 5, Balance: decimal.NewFromInt(6), RefPercent: 25}, nil
			})

		h := NewAdminHandler(svc)
		rec := serve(t, http.MethodPost, "/api/admin/users/{id}", "/api/admin/users/5",
			`{"balance_add":5,"ref_percent":25}`, h.HandleUpdateUser)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"ref_percent":25`)
	})

	t.Run("ref percent out of range", func(t *testing.T) {
		svc := mocks.NewMockAdminService(t)

		h := NewAdminHandler(svc)
		rec := serve(t, http.MethodPost, "/api/admin/users/{id}", "/api/admin/users/5",
			`{"ref_percent":150}`, h.HandleUpdateUser)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"ref_percent"`)
	})
}

func TestAdminHandler_SearchUsers(t *testing.T) {
	t.Run("query", func(t *testing.T) {
		svc := mocks.NewMockAdminService(t)
		svc.EXPECT().SearchUsers(mock.Anything, "ali").Return([]domain.User{{TelegramID: 5, Username: "alice"}}, nil)

		h := NewAdminHandler(svc)
		rec := serve(t, http.MethodGet, "/api/admin/users", "/api/admin/users?q=ali", nil, h.HandleSearchUsers)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decodeBody[[]map[string]any](t, rec), 1)
	})

	t.Run("missing q", func(t *testing.T) {
		svc := mocks.NewMockAdminService(t)

		h := NewAdminHandler(svc)
		rec := serve(t, http.MethodGet, "/api/admin/users", "/api/admin/users", nil, h.HandleSearchUsers)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "q")
	})
}

func TestAdminHandler_ResolveWithdrawal(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		body           any
		approve        bool
		setupMock      func(*mocks.MockAdminService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "approve",
			target:  "/api/admin/withdrawals/7/approve",
			approve: true,
			setupMock: func(m *mocks.MockAdminService) {
				m.EXPECT().ApproveWithdrawal(mock.Anything, int64(7)).Return(&domain.Withdrawal{
					ID: 7, Status: domain.WithdrawalApproved,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"approved"`,
		},
		{
			name:   "reject with note",
			target: "/api/admin/withdrawals/7/reject",
			body:   `{"note":"wrong wallet"}`,
			setupMock: func(m *mocks.MockAdminService) {
				m.EXPECT().RejectWithdrawal(mock.Anything, int64(7), "wrong wallet").Return(&domain.Withdrawal{
					ID: 7, Status: domain.WithdrawalRejected, AdminNote: "wrong wallet",
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"admin_note":"wrong wallet"`,
		},
		{
			name:    "already processed",
			target:  "/api/admin/withdrawals/7/approve",
			approve: true,
			setupMock: func(m *mocks.MockAdminService) {
				m.EXPECT().ApproveWithdrawal(mock.Anything, int64(7)).Return(nil, domain.ErrWithdrawalProcessed)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   domain.ErrMsgWithdrawalProcessed,
		},
		{
			name:           "bad request id",
			target:         "/api/admin/withdrawals/x/approve",
			approve:        true,
			setupMock:      func(m *mocks.MockAdminService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestID,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockAdminService(t)
			tt.setupMock(svc)

			h := NewAdminHandler(svc)
			pattern, handler := "/api/admin/withdrawals/{rid}/reject", http.HandlerFunc(h.HandleRejectWithdrawal)
			if tt.approve {
				pattern, handler = "/api/admin/withdrawals/{rid}/approve", h.HandleApproveWithdrawal
			}
			rec := serve(t, http.MethodPost, pattern, tt.target, tt.body, handler)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestAdminHandler_Lists(t *testing.T) {
	svc := mocks.NewMockAdminService(t)
	svc.EXPECT().PendingWithdrawals(mock.Anything).Return([]domain.Withdrawal{{ID: 1, Status: domain.WithdrawalPending}}, nil)
	svc.EXPECT().RecentGames(mock.Anything).Return([]domain.GameHistory{{ID: 3, GameType: domain.GameTypeRolls}}, nil)

	h := NewAdminHandler(svc)

	rec := serve(t, http.MethodGet, "/api/admin/withdrawals", "/api/admin/withdrawals", nil, h.HandlePendingWithdrawals)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]map[string]any](t, rec), 1)

	rec = serve(t, http.MethodGet, "/api/admin/games", "/api/admin/games", nil, h.HandleRecentGames)
	assert.Equal(t, http.StatusOK, rec.Code)
	games := decodeBody[[]map[string]any](t, rec)
	if assert.Len(t, games, 1) {
		assert.Equal(t, string(domain.GameTypeRolls), games[0]["game_type"])
	}
}
