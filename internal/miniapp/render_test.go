package miniapp

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/osse101/giftroll/internal/domain"
)

func TestFormatCountdown(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0:00:00"},
		{59, "0:00:59"},
		{3725, "1:02:05"},
		{86400, "24:00:00"},
		{-5, "0:00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCountdown(tt.seconds))
		})
	}
}

func TestFormatPayout(t *testing.T) {
	assert.Equal(t, "won +0.2000 (2×)", FormatPayout(domain.Payout{Won: true, Amount: dec("0.2"), Mult: dec("2")}))
	assert.Equal(t, "lost", FormatPayout(domain.Payout{Won: false, Amount: decimal.Zero}))
}

func TestFormatAmounts(t *testing.T) {
	assert.Equal(t, "1.2346", FormatBalance(dec("1.23456")))
	assert.Equal(t, "5.00", FormatDepositInput(dec("5")))
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"rejection", &RejectionError{Status: 400, Message: "Minimum bet is 0.1 TON"}, "Minimum bet is 0.1 TON"},
		{"wrapped rejection", fmt.Errorf("bet: %w", &RejectionError{Message: "Betting is closed"}), "Betting is closed"},
		{"validation", invalid(MsgWalletRequired), MsgWalletRequired},
		{"busy", ErrBusy, MsgBusy},
		{"transport", &TransportError{Op: "GET /api/balance/1", Err: errors.New("refused")}, MsgNetworkError},
		{"anything else", errors.New("boom"), MsgNetworkError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}
