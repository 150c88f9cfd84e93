package miniapp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/giftroll/internal/domain"
	"github.com/osse101/giftroll/internal/logger"
)

const maxResponseBytes = 1 << 20

// APIClient talks to the GiftRoll backend
type APIClient struct {
	BaseURL    string
	HTTP       *http.Client
	MaxRetries int
	RetryDelay time.Duration
}

// NewAPIClient creates a client from the loaded config
func NewAPIClient(cfg *Config) *APIClient {
	return &APIClient{
		BaseURL:    cfg.APIURL,
		HTTP:       &http.Client{Timeout: cfg.Timeout},
		MaxRetries: cfg.MaxRetries,
		RetryDelay: cfg.RetryDelay,
	}
}

type errorBody struct {
	Error string `json:"error"`
}

// do sends one call. Only reads get the retry budget: a POST that timed out or
// hit a 5xx may already have moved money, so it is sent exactly once.
func (c *APIClient) do(ctx context.Context, method, path string, body, out any) error {
	maxRetries := 0
	if method == http.MethodGet {
		maxRetries = c.MaxRetries
	}
	return c.request(ctx, method, path, body, out, maxRetries)
}

// request retries transport failures and 5xx responses with exponential backoff.
// Any other response is final: an {error} payload becomes a RejectionError and
// everything else is decoded into out.
func (c *APIClient) request(ctx context.Context, method, path string, body, out any, maxRetries int) error {
	op := method + " " + path

	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	url := c.BaseURL + path
	log := logger.FromContext(ctx)

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			delay := c.RetryDelay*time.Duration(1<<uint(attempt-1)) + rand.N(maxJitter)
			log.Info(LogMsgRetrying, "attempt", attempt, "path", path, "delay", delay)
			select {
			case <-ctx.Done():
				return &TransportError{Op: op, Err: ctx.Err()}
			case <-time.After(delay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(reqBody))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		if reqBody != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.HTTP.Do(req)
		if err != nil {
			lastErr = err
			log.Debug(LogMsgRequestFailed, "path", path, "attempt", attempt, "error", err)
			if ctx.Err() != nil {
				break
			}
			continue
		}

		if resp.StatusCode >= http.StatusInternalServerError {
			resp.Body.Close()
			lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
			log.Debug(LogMsgServerError, "status", resp.StatusCode, "attempt", attempt)
			continue
		}

		raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		resp.Body.Close()
		if err != nil {
			return &TransportError{Op: op, Err: err}
		}
		return decodeResponse(op, resp.StatusCode, raw, out)
	}

	return &TransportError{Op: op, Err: fmt.Errorf("max retries exceeded: %w", lastErr)}
}

func decodeResponse(op string, status int, raw []byte, out any) error {
	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err == nil && eb.Error != "" {
		return &RejectionError{Status: status, Message: eb.Error}
	}

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return &TransportError{Op: op, Err: fmt.Errorf("unexpected status %d", status)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}

// IsTransport reports whether err is a transport failure
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// Init upserts the user and returns the stored profile. The upsert is
// idempotent, so it retries like a read.
func (c *APIClient) Init(ctx context.Context, req domain.InitRequest) (*domain.User, error) {
	var u domain.User
	if err := c.request(ctx, http.MethodPost, pathInit, req, &u, c.MaxRetries); err != nil {
		return nil, err
	}
	return &u, nil
}

// Balance returns the current balances of a user
func (c *APIClient) Balance(ctx context.Context, telegramID int64) (*domain.BalanceView, error) {
	var b domain.BalanceView
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf(pathBalance, telegramID), nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// History returns the user's recent games
func (c *APIClient) History(ctx context.Context, telegramID int64) ([]domain.GameHistory, error) {
	var games []domain.GameHistory
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf(pathHistory, telegramID), nil, &games); err != nil {
		return nil, err
	}
	return games, nil
}

// RollsState fetches the table snapshot. It is polled, so it never retries.
func (c *APIClient) RollsState(ctx context.Context) (*domain.RoundSnapshot, error) {
	var snap domain.RoundSnapshot
	if err := c.request(ctx, http.MethodGet, pathRollsState, nil, &snap, 0); err != nil {
		return nil, err
	}
	return &snap, nil
}

// PlaceBet places a bet on the open round
func (c *APIClient) PlaceBet(ctx context.Context, telegramID int64, color domain.Color, amount decimal.Decimal) (*domain.RollsBetResponse, error) {
	req := domain.RollsBetRequest{TelegramID: telegramID, Color: color, Amount: amount}
	var res domain.RollsBetResponse
	if err := c.do(ctx, http.MethodPost, pathRollsBet, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Spin plays one gift upgrade
func (c *APIClient) Spin(ctx context.Context, telegramID int64, stake, multiplier decimal.Decimal) (*domain.SpinResult, error) {
	req := domain.SpinRequest{TelegramID: telegramID, Stake: stake, Multiplier: multiplier}
	var res domain.SpinResult
	if err := c.do(ctx, http.MethodPost, pathSpin, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Cases returns the case catalog
func (c *APIClient) Cases(ctx context.Context) ([]domain.Case, error) {
	var cases []domain.Case
	if err := c.do(ctx, http.MethodGet, pathCases, nil, &cases); err != nil {
		return nil, err
	}
	return cases, nil
}

// CheckAccess asks whether paid cases are unlocked. It only reads, so it retries.
func (c *APIClient) CheckAccess(ctx context.Context, telegramID int64) (*domain.CaseAccess, error) {
	var access domain.CaseAccess
	req := domain.CaseAccessRequest{TelegramID: telegramID}
	if err := c.request(ctx, http.MethodPost, pathCaseCheck, req, &access, c.MaxRetries); err != nil {
		return nil, err
	}
	return &access, nil
}

// OpenCase opens one case
func (c *APIClient) OpenCase(ctx context.Context, telegramID int64, caseType domain.CaseType) (*domain.CaseResult, error) {
	req := domain.OpenCaseRequest{TelegramID: telegramID, CaseType: caseType}
	var res domain.CaseResult
	if err := c.do(ctx, http.MethodPost, pathCaseOpen, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// FreeCaseStatus reports when the free case unlocks
func (c *APIClient) FreeCaseStatus(ctx context.Context, telegramID int64) (*domain.FreeCaseStatus, error) {
	var status domain.FreeCaseStatus
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf(pathFreeCaseStatus, telegramID), nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Inventory lists the user's gifts
func (c *APIClient) Inventory(ctx context.Context, telegramID int64) ([]domain.InventoryItem, error) {
	var items []domain.InventoryItem
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf(pathInventory, telegramID), nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SellGift sells an inventory item for its sell price
func (c *APIClient) SellGift(ctx context.Context, telegramID, itemID int64) (*domain.SellResult, error) {
	req := domain.InventoryActionRequest{TelegramID: telegramID, ItemID: itemID}
	var res domain.SellResult
	if err := c.do(ctx, http.MethodPost, pathSell, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// WithdrawGift queues an inventory item for transfer
func (c *APIClient) WithdrawGift(ctx context.Context, telegramID, itemID int64) (*domain.GiftWithdrawal, error) {
	req := domain.InventoryActionRequest{TelegramID: telegramID, ItemID: itemID}
	var res domain.GiftWithdrawal
	if err := c.do(ctx, http.MethodPost, pathWithdrawGift, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Leaderboard returns the top depositors
func (c *APIClient) Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	var entries []domain.LeaderboardEntry
	if err := c.do(ctx, http.MethodGet, pathLeaderboard, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Referrals returns the referral screen payload
func (c *APIClient) Referrals(ctx context.Context, telegramID int64) (*domain.ReferralSummary, error) {
	var summary domain.ReferralSummary
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf(pathReferrals, telegramID), nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// WithdrawReferral moves the referral balance into the main balance
func (c *APIClient) WithdrawReferral(ctx context.Context, telegramID int64) (*domain.ReferralWithdrawResult, error) {
	req := domain.ReferralWithdrawRequest{TelegramID: telegramID}
	var res domain.ReferralWithdrawResult
	if err := c.do(ctx, http.MethodPost, pathRefWithdraw, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// DepositStars credits a stars purchase
func (c *APIClient) DepositStars(ctx context.Context, telegramID, stars int64) (*domain.DepositResult, error) {
	req := domain.StarsDepositRequest{TelegramID: telegramID, Stars: stars}
	var res domain.DepositResult
	if err := c.do(ctx, http.MethodPost, pathDepositStars, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// DepositTON opens a pending TON deposit
func (c *APIClient) DepositTON(ctx context.Context, telegramID int64, amount decimal.Decimal) (*domain.TONInvoice, error) {
	req := domain.TONDepositRequest{TelegramID: telegramID, Amount: amount}
	var invoice domain.TONInvoice
	if err := c.do(ctx, http.MethodPost, pathDepositTON, req, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

// ConfirmDeposit completes a pending TON deposit
func (c *APIClient) ConfirmDeposit(ctx context.Context, telegramID int64, memo string) (*domain.DepositResult, error) {
	req := domain.ConfirmDepositRequest{TelegramID: telegramID, Memo: memo}
	var res domain.DepositResult
	if err := c.do(ctx, http.MethodPost, pathDepositConfirm, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Withdraw queues a TON payout
func (c *APIClient) Withdraw(ctx context.Context, telegramID int64, amount decimal.Decimal, wallet string) (*domain.WithdrawResult, error) {
	req := domain.WithdrawRequest{TelegramID: telegramID, Amount: amount, Wallet: wallet}
	var res domain.WithdrawResult
	if err := c.do(ctx, http.MethodPost, pathWithdraw, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Withdrawals lists the user's payout requests
func (c *APIClient) Withdrawals(ctx context.Context, telegramID int64) ([]domain.WithdrawalView, error) {
	var views []domain.WithdrawalView
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf(pathWithdrawals, telegramID), nil, &views); err != nil {
		return nil, err
	}
	return views, nil
}
