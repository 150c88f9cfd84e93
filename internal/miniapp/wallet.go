package miniapp

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/osse101/giftroll/internal/domain"
)

// WalletAPI is the part of the backend the wallet, referral and inventory
// screens use
type WalletAPI interface {
	DepositStars(ctx context.Context, telegramID, stars int64) (*domain.DepositResult, error)
	DepositTON(ctx context.Context, telegramID int64, amount decimal.Decimal) (*domain.TONInvoice, error)
	ConfirmDeposit(ctx context.Context, telegramID int64, memo string) (*domain.DepositResult, error)
	Withdraw(ctx context.Context, telegramID int64, amount decimal.Decimal, wallet string) (*domain.WithdrawResult, error)
	Withdrawals(ctx context.Context, telegramID int64) ([]domain.WithdrawalView, error)
	Referrals(ctx context.Context, telegramID int64) (*domain.ReferralSummary, error)
	WithdrawReferral(ctx context.Context, telegramID int64) (*domain.ReferralWithdrawResult, error)
	Inventory(ctx context.Context, telegramID int64) ([]domain.InventoryItem, error)
	SellGift(ctx context.Context, telegramID, itemID int64) (*domain.SellResult, error)
	WithdrawGift(ctx context.Context, telegramID, itemID int64) (*domain.GiftWithdrawal, error)
	Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error)
	History(ctx context.Context, telegramID int64) ([]domain.GameHistory, error)
}

// WalletClient drives the deposit, withdrawal, referral and inventory forms.
// Each mutating form has its own busy flag.
type WalletClient struct {
	api     WalletAPI
	session *Session
	render  Renderer

	starsBusy    busyFlag
	tonBusy      busyFlag
	confirmBusy  busyFlag
	withdrawBusy busyFlag
	refBusy      busyFlag
	sellBusy     busyFlag
	giftBusy     busyFlag
}

// NewWalletClient creates a wallet client
func NewWalletClient(api WalletAPI, session *Session, render Renderer) *WalletClient {
	if render == nil {
		render = NopRenderer{}
	}
	return &WalletClient{api: api, session: session, render: render}
}

// run holds flag for the duration of fn and shows any error to the user
func (c *WalletClient) run(flag *busyFlag, fn func() error) error {
	if !flag.acquire() {
		return notifyErr(c.render, ErrBusy)
	}
	defer flag.release()

	if err := fn(); err != nil {
		return notifyErr(c.render, err)
	}
	return nil
}

func (c *WalletClient) credit(res *domain.DepositResult) {
	c.session.Update(func(u *UserState) {
		u.Balance = res.NewBalance
		u.TotalDeposited = u.TotalDeposited.Add(res.Credited)
	})
	c.render.RenderBalance(c.session.Snapshot())
}

func (c *WalletClient) applyBalance(balance decimal.Decimal, refBalance ...decimal.Decimal) {
	c.session.ApplyBalance(balance, refBalance...)
	c.render.RenderBalance(c.session.Snapshot())
}

// DepositStars buys TON with Telegram stars
func (c *WalletClient) DepositStars(ctx context.Context, stars int64) (*domain.DepositResult, error) {
	if decimal.NewFromInt(stars).LessThan(domain.MinStarsDeposit) {
		return nil, notifyErr(c.render, invalid(MsgMinStars))
	}

	var res *domain.DepositResult
	err := c.run(&c.starsBusy, func() error {
		var err error
		res, err = c.api.DepositStars(ctx, c.session.ID(), stars)
		return err
	})
	if err != nil {
		return nil, err
	}
	c.credit(res)
	return res, nil
}

// DepositTON opens a TON deposit and returns where to send it
func (c *WalletClient) DepositTON(ctx context.Context, amount decimal.Decimal) (*domain.TONInvoice, error) {
	if amount.Sign() <= 0 {
		return nil, notifyErr(c.render, invalid(MsgInvalidAmount))
	}

	var invoice *domain.TONInvoice
	err := c.run(&c.tonBusy, func() error {
		var err error
		invoice, err = c.api.DepositTON(ctx, c.session.ID(), amount.Round(domain.DepositPlaces))
		return err
	})
	if err != nil {
		return nil, err
	}
	return invoice, nil
}

// ConfirmTON completes a TON deposit by memo
func (c *WalletClient) ConfirmTON(ctx context.Context, memo string) (*domain.DepositResult, error) {
	memo = strings.TrimSpace(memo)
	if memo == "" {
		return nil, notifyErr(c.render, invalid(MsgMemoRequired))
	}

	var res *domain.DepositResult
	err := c.run(&c.confirmBusy, func() error {
		var err error
		res, err = c.api.ConfirmDeposit(ctx, c.session.ID(), memo)
		return err
	})
	if err != nil {
		return nil, err
	}
	c.credit(res)
	return res, nil
}

// Withdraw requests a TON payout to wallet
func (c *WalletClient) Withdraw(ctx context.Context, amount decimal.Decimal, wallet string) (*domain.WithdrawResult, error) {
	wallet = strings.TrimSpace(wallet)
	switch {
	case amount.LessThan(domain.MinWithdrawal):
		return nil, notifyErr(c.render, invalid(MsgMinWithdrawal))
	case wallet == "":
		return nil, notifyErr(c.render, invalid(MsgWalletRequired))
	case amount.GreaterThan(c.session.Balance()):
		return nil, notifyErr(c.render, invalid(MsgInsufficientBalance))
	}

	var res *domain.WithdrawResult
	err := c.run(&c.withdrawBusy, func() error {
		var err error
		res, err = c.api.Withdraw(ctx, c.session.ID(), amount, wallet)
		return err
	})
	if err != nil {
		return nil, err
	}
	c.applyBalance(res.NewBalance)
	return res, nil
}

// Withdrawals lists the user's payout requests
func (c *WalletClient) Withdrawals(ctx context.Context) ([]domain.WithdrawalView, error) {
	views, err := c.api.Withdrawals(ctx, c.session.ID())
	if err != nil {
		return nil, notifyErr(c.render, err)
	}
	return views, nil
}

// Referrals loads the referral screen and refreshes the referral figures in the session
func (c *WalletClient) Referrals(ctx context.Context) (*domain.ReferralSummary, error) {
	summary, err := c.api.Referrals(ctx, c.session.ID())
	if err != nil {
		return nil, notifyErr(c.render, err)
	}
	c.session.Update(func(u *UserState) {
		u.RefBalance = summary.RefBalance
		u.RefPercent = summary.RefPercent
	})
	c.render.RenderBalance(c.session.Snapshot())
	return summary, nil
}

// WithdrawReferral moves the referral balance into the main balance
func (c *WalletClient) WithdrawReferral(ctx context.Context) (*domain.ReferralWithdrawResult, error) {
	if c.session.Snapshot().RefBalance.LessThan(domain.MinReferralWithdrawal) {
		return nil, notifyErr(c.render, invalid(MsgMinRefWithdrawal))
	}

	var res *domain.ReferralWithdrawResult
	err := c.run(&c.refBusy, func() error {
		var err error
		res, err = c.api.WithdrawReferral(ctx, c.session.ID())
		return err
	})
	if err != nil {
		return nil, err
	}
	c.applyBalance(res.NewBalance, decimal.Zero)
	return res, nil
}

// Inventory lists the user's gifts
func (c *WalletClient) Inventory(ctx context.Context) ([]domain.InventoryItem, error) {
	items, err := c.api.Inventory(ctx, c.session.ID())
	if err != nil {
		return nil, notifyErr(c.render, err)
	}
	return items, nil
}

// SellGift sells a gift for its sell price
func (c *WalletClient) SellGift(ctx context.Context, itemID int64) (*domain.SellResult, error) {
	var res *domain.SellResult
	err := c.run(&c.sellBusy, func() error {
		var err error
		res, err = c.api.SellGift(ctx, c.session.ID(), itemID)
		return err
	})
	if err != nil {
		return nil, err
	}
	c.applyBalance(res.NewBalance)
	return res, nil
}

// WithdrawGift asks for a gift to be transferred to the user's Telegram account
func (c *WalletClient) WithdrawGift(ctx context.Context, itemID int64) (*domain.GiftWithdrawal, error) {
	var res *domain.GiftWithdrawal
	err := c.run(&c.giftBusy, func() error {
		var err error
		res, err = c.api.WithdrawGift(ctx, c.session.ID(), itemID)
		return err
	})
	if err != nil {
		return nil, err
	}
	c.render.Notify(res.Message)
	return res, nil
}

// Leaderboard returns the top depositors
func (c *WalletClient) Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	entries, err := c.api.Leaderboard(ctx)
	if err != nil {
		return nil, notifyErr(c.render, err)
	}
	return entries, nil
}

// History returns the user's recent games
func (c *WalletClient) History(ctx context.Context) ([]domain.GameHistory, error) {
	games, err := c.api.History(ctx, c.session.ID())
	if err != nil {
		return nil, notifyErr(c.render, err)
	}
	return games, nil
}
