package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestWinChance(t *testing.T) {
	tests := []struct {
		mult string
		want string
	}{
		{"1.3", "0.76923077"},
		{"2", "0.5"},
		{"20", "0.05"},
		{"1", "0.95"},
		{"50", "0.05"},
		{"0", "0.95"},
	}
	for _, tt := range tests {
		t.Run(tt.mult, func(t *testing.T) {
			assert.True(t, d(tt.want).Equal(WinChance(d(tt.mult))), "got %s", WinChance(d(tt.mult)))
		})
	}
}

func TestColorMultiplier(t *testing.T) {
	assert.True(t, ColorGreen.Multiplier().Equal(decimal.NewFromInt(10)))
	assert.True(t, ColorRed.Multiplier().Equal(decimal.NewFromInt(2)))
	assert.True(t, ColorBlue.Multiplier().Equal(decimal.NewFromInt(2)))
	assert.False(t, Color("purple").Valid())
}

func TestCountColors(t *testing.T) {
	red, blue, green := CountColors([]Color{ColorRed, ColorBlue, ColorRed, ColorGreen})
	assert.Equal(t, 2, red)
	assert.Equal(t, 1, blue)
	assert.Equal(t, 1, green)
}

func TestStarsToTON(t *testing.T) {
	assert.Equal(t, "1.099", StarsToTON(d("100")).String())
	assert.Equal(t, "0.011", StarsToTON(d("1")).String())
	assert.Equal(t, "2.7475", StarsToTON(d("250")).String())
}

func TestReferralShare(t *testing.T) {
	assert.Equal(t, "1", ReferralShare(d("10"), 10).String())
	assert.Equal(t, "0.1099", ReferralShare(d("1.099"), 10).String())
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "1.5000", FormatBalance(d("1.5")))
	assert.Equal(t, "0.12", FormatDepositInput(d("0.123")))
}

func TestMoneyMarshalsAsNumber(t *testing.T) {
	raw, err := json.Marshal(BalanceView{Balance: d("1.5"), RefBalance: d("0.45")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"balance":1.5,"ref_balance":0.45}`, string(raw))
}

func TestNewFreeCaseStatus(t *testing.T) {
	assert.Equal(t, FreeCaseStatus{Available: true}, NewFreeCaseStatus(0))
	assert.Equal(t, FreeCaseStatus{RemainingSeconds: 90}, NewFreeCaseStatus(90*time.Second))
	assert.Equal(t, FreeCaseStatus{RemainingSeconds: 2}, NewFreeCaseStatus(1500*time.Millisecond))
}

func TestWithdrawalView(t *testing.T) {
	w := Withdrawal{ID: 7, Amount: d("12"), WalletAddress: "UQabc", Status: WithdrawalPending,
		CreatedAt: time.Date(2026, 3, 9, 14, 5, 0, 0, time.UTC)}
	v := w.View()
	assert.Equal(t, "09.03 14:05", v.Date)
	assert.Equal(t, "UQabc", v.Wallet)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Ann", (&User{FirstName: "Ann", Username: "ann"}).DisplayName())
	assert.Equal(t, "ann", (&User{Username: "ann"}).DisplayName())
	assert.Equal(t, "Player", (&User{}).DisplayName())
}
