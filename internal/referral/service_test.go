package referral

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/giftroll/internal/domain"
	"github.com/osse101/giftroll/internal/testing/memrepo"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ref(id int64) *int64 { return &id }

func TestSummary(t *testing.T) {
	store := memrepo.New()
	store.AddUser(domain.User{TelegramID: 1, RefBalance: dec("0.45"), RefPercent: 15})
	store.AddUser(domain.User{TelegramID: 2, FirstName: "Bo", Username: "bo", RefID: ref(1), TotalDeposited: dec("3")})
	store.AddUser(domain.User{TelegramID: 3, FirstName: "Cy", RefID: ref(1)})
	store.AddUser(domain.User{TelegramID: 4, RefID: ref(2)})

	summary, err := NewService(store).Summary(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalReferred)
	assert.Len(t, summary.Referrals, 2)
	assert.Equal(t, "0.45", summary.RefBalance.String())
	assert.Equal(t, 15, summary.RefPercent)
}

func TestSummary_UnknownUser(t *testing.T) {
	summary, err := NewService(memrepo.New()).Summary(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 0, summary.TotalReferred)
	assert.NotNil(t, summary.Referrals)
	assert.True(t, summary.RefBalance.IsZero())
	assert.Equal(t, domain.DefaultRefPercent, summary.RefPercent)
}

func TestWithdraw(t *testing.T) {
	tests := []struct {
		name        string
		refBalance  string
		wantErr     error
		wantBalance string
		wantRef     string
	}{
		{"below minimum", "2.9999", domain.ErrBelowMinReferral, "1", "2.9999"},
		{"exactly minimum", "3", nil, "4", "0"},
		{"above minimum", "4.25", nil, "5.25", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memrepo.New()
			store.AddUser(domain.User{TelegramID: 1, Balance: dec("1"), RefBalance: dec(tt.refBalance)})
			svc := NewService(store)

			res, err := svc.Withdraw(context.Background(), 1)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantBalance, res.NewBalance.String())
				assert.Equal(t, tt.refBalance, res.Withdrawn.String())
			}

			u, _ := store.User(1)
			assert.Equal(t, tt.wantBalance, u.Balance.String())
			assert.Equal(t, tt.wantRef, u.RefBalance.String())
		})
	}
}

func TestWithdraw_UnknownUser(t *testing.T) {
	_, err := NewService(memrepo.New()).Withdraw(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
