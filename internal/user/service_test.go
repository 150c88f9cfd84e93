package user

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/giftroll/internal/domain"
	"github.com/osse101/giftroll/internal/testing/memrepo"
)

func TestInit_CreatesUser(t *testing.T) {
	store := memrepo.New()
	svc := NewService(store)

	u, err := svc.Init(context.Background(), domain.InitRequest{TelegramID: 1, FirstName: "Ann", Username: "ann"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), u.TelegramID)
	assert.Equal(t, domain.DefaultRefPercent, u.RefPercent)
	assert.Nil(t, u.RefID)
	assert.True(t, u.Balance.IsZero())

	stored, ok := store.User(1)
	require.True(t, ok)
	assert.Equal(t, "ann", stored.Username)
}

func TestInit_Referral(t *testing.T) {
	tests := []struct {
		name       string
		startParam string
		wantRef    *int64
	}{
		{"valid referrer", "ref_7", ptr(7)},
		{"unknown referrer", "ref_99", nil},
		{"self referral", "ref_1", nil},
		{"not a number", "ref_abc", nil},
		{"other start param", "promo", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memrepo.New()
			store.AddUser(domain.User{TelegramID: 7, FirstName: "Ref"})
			svc := NewService(store)

			u, err := svc.Init(context.Background(), domain.InitRequest{TelegramID: 1, StartParam: tt.startParam})
			require.NoError(t, err)
			assert.Equal(t, tt.wantRef, u.RefID)
		})
	}
}

func TestInit_ReturningUserKeepsReferrerAndNames(t *testing.T) {
	store := memrepo.New()
	store.AddUser(domain.User{TelegramID: 7})
	store.AddUser(domain.User{TelegramID: 8})
	store.AddUser(domain.User{TelegramID: 1, FirstName: "Ann", Username: "ann", RefID: ptr(7), Balance: decimal.NewFromInt(3)})
	svc := NewService(store)

	u, err := svc.Init(context.Background(), domain.InitRequest{TelegramID: 1, Username: "ann2", StartParam: "ref_8"})
	require.NoError(t, err)

	assert.Equal(t, ptr(7), u.RefID)
	assert.Equal(t, "Ann", u.FirstName)
	assert.Equal(t, "ann2", u.Username)
	assert.Equal(t, "3", u.Balance.String())
}

func TestGetBalance(t *testing.T) {
	store := memrepo.New()
	store.AddUser(domain.User{TelegramID: 1, Balance: decimal.RequireFromString("1.23456"), RefBalance: decimal.RequireFromString("0.45")})
	svc := NewService(store)

	view, err := svc.GetBalance(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "1.2346", view.Balance.String())
	assert.Equal(t, "0.45", view.RefBalance.String())

	_, err = svc.GetBalance(context.Background(), 2)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestGetHistory_EmptyIsNotNil(t *testing.T) {
	svc := NewService(memrepo.New())
	history, err := svc.GetHistory(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)
}

func ptr(v int64) *int64 { return &v }
