package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/giftroll/internal/domain"
	"github.com/osse101/giftroll/mocks"
)

func TestWalletHandler_DepositStars(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*mocks.MockWalletService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "credited",
			body: `{"telegram_id":5,"stars":100}`,
			setupMock: func(m *mocks.MockWalletService) {
				m.EXPECT().DepositStars(mock.Anything, int64(5), int64(100)).Return(&domain.DepositResult{
					NewBalance: decimal.RequireFromString("1.099"), Credited: decimal.RequireFromString("1.099"),
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"credited":1.099`,
		},
		{
			name:           "zero stars",
			body:           `{"telegram_id":5,"stars":0}`,
			setupMock:      func(m *mocks.MockWalletService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"stars"`,
		},
		{
			name: "unknown user",
			body: `{"telegram_id":6,"stars":100}`,
			setupMock: func(m *mocks.MockWalletService) {
				m.EXPECT().DepositStars(mock.Anything, int64(6), int64(100)).Return(nil, domain.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   domain.ErrMsgUserNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockWalletService(t)
			tt.setupMock(svc)

			h := NewWalletHandler(svc)
			rec := serve(t, http.MethodPost, "/api/deposit/stars", "/api/deposit/stars", tt.body, h.HandleDepositStars)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestWalletHandler_DepositTON(t *testing.T) {
	t.Run("invoice", func(t *testing.T) {
		svc := mocks.NewMockWalletService(t)
		svc.EXPECT().CreateTONInvoice(mock.Anything, int64(5), mock.Anything).
			RunAndReturn(func(_ context.Context, _ int64, amount decimal.Decimal) (*domain.TONInvoice, error) {
				assert.True(t, amount.Equal(decimal.NewFromInt(5)))
				return &domain.TONInvoice{Memo: "DEP-5-1740830400", Address: "UQwallet", Amount: amount}, nil
			})

		h := NewWalletHandler(svc)
		rec := serve(t, http.MethodPost, "/api/deposit/ton", "/api/deposit/ton", `{"telegram_id":5,"amount":5}`, h.HandleDepositTON)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"memo":"DEP-5-1740830400","address":"UQwallet","amount":5}`, rec.Body.String())
	})

	t.Run("non-positive amount", func(t *testing.T) {
		svc := mocks.NewMockWalletService(t)

		h := NewWalletHandler(svc)
		rec := serve(t, http.MethodPost, "/api/deposit/ton", "/api/deposit/ton", `{"telegram_id":5,"amount":-1}`, h.HandleDepositTON)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"amount"`)
	})
}

func TestWalletHandler_ConfirmDeposit(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*mocks.MockWalletService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "confirmed",
			body: `{"telegram_id":5,"memo":"DEP-5-1"}`,
			setupMock: func(m *mocks.MockWalletService) {
				m.EXPECT().ConfirmTONDeposit(mock.Anything, int64(5), "DEP-5-1").Return(&domain.DepositResult{
					NewBalance: decimal.NewFromInt(6), Credited: decimal.NewFromInt(5),
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"new_balance":6`,
		},
		{
			name: "already confirmed",
			body: `{"telegram_id":5,"memo":"DEP-5-1"}`,
			setupMock: func(m *mocks.MockWalletService) {
				m.EXPECT().ConfirmTONDeposit(mock.Anything, int64(5), "DEP-5-1").Return(nil, domain.ErrDepositNotPending)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   domain.ErrMsgDepositNotPending,
		},
		{
			name:           "bad memo",
			body:           `{"telegram_id":5,"memo":"hello"}`,
			setupMock:      func(m *mocks.MockWalletService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"memo"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockWalletService(t)
			tt.setupMock(svc)

			h := NewWalletHandler(svc)
			rec := serve(t, http.MethodPost, "/api/deposit/confirm", "/api/deposit/confirm", tt.body, h.HandleConfirmDeposit)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestWalletHandler_Withdraw(t *testing.T) {
	const wallet = "UQ0123456789abcdef"

	tests := []struct {
		name           string
		body           string
		setupMock      func(*mocks.MockWalletService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "requested",
			body: `{"telegram_id":5,"amount":10,"wallet":"` + wallet + `"}`,
			setupMock: func(m *mocks.MockWalletService) {
				m.EXPECT().Withdraw(mock.Anything, int64(5), mock.Anything, wallet).Return(&domain.WithdrawResult{
					NewBalance: decimal.NewFromInt(2), RequestID: 7,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"request_id":7`,
		},
		{
			name: "below minimum",
			body: `{"telegram_id":5,"amount":9.99,"wallet":"` + wallet + `"}`,
			setupMock: func(m *mocks.MockWalletService) {
				m.EXPECT().Withdraw(mock.Anything, int64(5), mock.Anything, wallet).Return(nil, domain.ErrBelowMinWithdrawal)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   domain.ErrMsgBelowMinWithdrawal,
		},
		{
			name:           "missing wallet",
			body:           `{"telegram_id":5,"amount":10}`,
			setupMock:      func(m *mocks.MockWalletService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"wallet"`,
		},
		{
			name: "storage failure is hidden",
			body: `{"telegram_id":5,"amount":10,"wallet":"` + wallet + `"}`,
			setupMock: func(m *mocks.MockWalletService) {
				m.EXPECT().Withdraw(mock.Anything, int64(5), mock.Anything, wallet).Return(nil, errors.New("connection reset"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   ErrMsgGenericServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockWalletService(t)
			tt.setupMock(svc)

			h := NewWalletHandler(svc)
			rec := serve(t, http.MethodPost, "/api/withdraw", "/api/withdraw", tt.body, h.HandleWithdraw)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			assert.NotContains(t, rec.Body.String(), "connection reset")
		})
	}
}

func TestWalletHandler_ListWithdrawals(t *testing.T) {
	svc := mocks.NewMockWalletService(t)
	svc.EXPECT().ListWithdrawals(mock.Anything, int64(5)).Return([]domain.WithdrawalView{
		{ID: 2, Amount: decimal.NewFromInt(10), Wallet: "UQ0123456789", Status: domain.WithdrawalPending, Date: "08.02 18:30"},
	}, nil)

	h := NewWalletHandler(svc)
	rec := serve(t, http.MethodGet, "/api/withdrawals/{id}", "/api/withdrawals/5", nil, h.HandleListWithdrawals)

	assert.Equal(t, http.StatusOK, rec.Code)
	views := decodeBody[[]map[string]any](t, rec)
	if assert.Len(t, views, 1) {
		assert.Equal(t, "08.02 18:30", views[0]["date"])
		assert.Equal(t, "pending", views[0]["status"])
	}
}
