package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/osse101/giftroll/internal/domain"
	"github.com/osse101/giftroll/internal/miniapp"
)

const usage = `commands:
  balance                      show balances
  bet <red|blue|green> <ton>   bet on the current rolls round
  spin <stake> <multiplier>    gift upgrade
  cases | open <case> | access | free
  stars <n> | ton <amount> | confirm <memo>
  withdraw <amount> <wallet> | withdrawals
  refs | refwithdraw
  inv | sell <id> | gift <id>
  top | history | quit`

var errUsage = errors.New("usage")

// app dispatches terminal commands to the client components
type app struct {
	session *miniapp.Session
	rounds  *miniapp.RoundClient
	spin    *miniapp.SpinClient
	cases   *miniapp.CaseClient
	wallet  *miniapp.WalletClient
	out     *terminal
}

// exec runs one command line. It returns false when the user asked to quit.
func (a *app) exec(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}

	cmd, args := strings.ToLower(fields[0]), fields[1:]
	if cmd == "quit" || cmd == "exit" {
		return false
	}

	if err := a.dispatch(ctx, cmd, args); err != nil {
		if errors.Is(err, errUsage) {
			a.out.println("%s", usage)
		}
		// client errors were already shown through Notify
	}
	return true
}

func (a *app) dispatch(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "help":
		return errUsage

	case "balance":
		a.out.RenderBalance(a.session.Snapshot())
		return nil

	case "bet":
		if len(args) != 2 {
			return errUsage
		}
		amount, err := parseAmount(args[1])
		if err != nil {
			return err
		}
		_, err = a.rounds.PlaceBet(ctx, domain.Color(strings.ToLower(args[0])), amount)
		return err

	case "spin":
		if len(args) != 2 {
			return errUsage
		}
		stake, err := parseAmount(args[0])
		if err != nil {
			return err
		}
		mult, err := parseAmount(args[1])
		if err != nil {
			return err
		}
		_, err = a.spin.Spin(ctx, stake, mult)
		return err

	case "cases":
		list, err := a.cases.Catalog(ctx)
		if err != nil {
			a.out.Notify(miniapp.UserMessage(err))
			return err
		}
		for _, c := range list {
			a.out.println("  %-8s %-12s %s TON", c.Type, c.Name, miniapp.FormatBalance(c.Cost))
		}
		return nil

	case "open":
		if len(args) != 1 {
			return errUsage
		}
		_, err := a.cases.OpenCase(ctx, domain.CaseType(strings.ToLower(args[0])))
		return err

	case "access":
		access, err := a.cases.CheckAccess(ctx)
		if err != nil {
			a.out.Notify(miniapp.UserMessage(err))
			return err
		}
		if access.Access {
			a.out.println("🔓 cases unlocked")
		} else {
			a.out.println("🔒 %s", access.Message)
		}
		return nil

	case "free":
		if left := a.out.freeCaseCountdown(); left != "" {
			a.out.println("🆓 free case in %s", left)
		} else {
			a.out.println("🆓 free case is ready")
		}
		return nil

	case "stars":
		if len(args) != 1 {
			return errUsage
		}
		stars, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return errUsage
		}
		res, err := a.wallet.DepositStars(ctx, stars)
		if err != nil {
			return err
		}
		a.out.println("⭐ %d stars credited as %s TON", stars, miniapp.FormatBalance(res.Credited))
		return nil

	case "ton":
		if len(args) != 1 {
			return errUsage
		}
		amount, err := parseAmount(args[0])
		if err != nil {
			return err
		}
		invoice, err := a.wallet.DepositTON(ctx, amount)
		if err != nil {
			return err
		}
		a.out.println("send %s TON to %s with memo %s", miniapp.FormatDepositInput(invoice.Amount), invoice.Address, invoice.Memo)
		return nil

	case "confirm":
		if len(args) != 1 {
			return errUsage
		}
		res, err := a.wallet.ConfirmTON(ctx, args[0])
		if err != nil {
			return err
		}
		a.out.println("✅ %s TON credited", miniapp.FormatBalance(res.Credited))
		return nil

	case "withdraw":
		if len(args) != 2 {
			return errUsage
		}
		amount, err := parseAmount(args[0])
		if err != nil {
			return err
		}
		res, err := a.wallet.Withdraw(ctx, amount, args[1])
		if err != nil {
			return err
		}
		a.out.println("📤 request #%d submitted", res.RequestID)
		return nil

	case "withdrawals":
		views, err := a.wallet.Withdrawals(ctx)
		if err != nil {
			return err
		}
		for _, v := range views {
			a.out.println("  #%d %s %s TON %s", v.ID, v.Date, miniapp.FormatBalance(v.Amount), v.Status)
		}
		return nil

	case "refs":
		summary, err := a.wallet.Referrals(ctx)
		if err != nil {
			return err
		}
		a.out.println("👥 %d invited, %d%% share", summary.TotalReferred, summary.RefPercent)
		for _, r := range summary.Referrals {
			a.out.println("  %s deposited %s TON", r.Name, miniapp.FormatBalance(r.TotalDeposited))
		}
		return nil

	case "refwithdraw":
		res, err := a.wallet.WithdrawReferral(ctx)
		if err != nil {
			return err
		}
		a.out.println("👥 %s TON moved to balance", miniapp.FormatBalance(res.Withdrawn))
		return nil

	case "inv":
		items, err := a.wallet.Inventory(ctx)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			a.out.println("inventory is empty")
		}
		for _, it := range items {
			a.out.println("  #%d %s (%s TON)", it.ID, it.GiftName, miniapp.FormatBalance(it.SellPrice))
		}
		return nil

	case "sell", "gift":
		if len(args) != 1 {
			return errUsage
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return errUsage
		}
		if cmd == "gift" {
			_, err = a.wallet.WithdrawGift(ctx, id)
			return err
		}
		res, err := a.wallet.SellGift(ctx, id)
		if err != nil {
			return err
		}
		a.out.println("💰 sold for %s TON", miniapp.FormatBalance(res.Sold))
		return nil

	case "top":
		entries, err := a.wallet.Leaderboard(ctx)
		if err != nil {
			return err
		}
		for _, e := range entries {
			a.out.println("  %2d. %-20s %s TON", e.Rank, e.Name, miniapp.FormatBalance(e.TotalDeposited))
		}
		return nil

	case "history":
		games, err := a.wallet.History(ctx)
		if err != nil {
			return err
		}
		for _, g := range games {
			a.out.println("  %-12s stake %s → %s", g.GameType, miniapp.FormatBalance(g.Stake), miniapp.FormatBalance(g.Result))
		}
		return nil
	}

	return errUsage
}

func parseAmount(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", "."))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", errUsage, raw)
	}
	return d, nil
}
