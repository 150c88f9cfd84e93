package postgres

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/giftroll/internal/domain"
)

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.TelegramID, &u.FirstName, &u.LastName, &u.Username, &u.PhotoURL,
		&u.Balance, &u.TotalDeposited, &u.GamesPlayed, &u.RefID, &u.RefPercent,
		&u.RefBalance, &u.CreatedAt, &u.LastOnline,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUser, err)
	}
	return &u, nil
}

func scanGameHistory(row scanner) (domain.GameHistory, error) {
	var (
		h       domain.GameHistory
		gtype   string
		details []byte
	)
	if err := row.Scan(&h.ID, &h.UserID, &gtype, &h.Stake, &h.Result, &h.Multiplier, &details, &h.CreatedAt); err != nil {
		return h, err
	}
	h.GameType = domain.GameType(gtype)
	if len(details) > 0 {
		if err := json.Unmarshal(details, &h.Details); err != nil {
			return h, fmt.Errorf("failed to unmarshal game details: %w", err)
		}
	}
	return h, nil
}

func scanInventoryItem(row scanner) (domain.InventoryItem, error) {
	var it domain.InventoryItem
	err := row.Scan(&it.ID, &it.UserID, &it.GiftName, &it.GiftImage, &it.SellPrice, &it.CreatedAt)
	return it, err
}

func scanWithdrawal(row scanner) (domain.Withdrawal, error) {
	var (
		w      domain.Withdrawal
		status string
	)
	err := row.Scan(&w.ID, &w.UserID, &w.Amount, &w.WalletAddress, &status, &w.AdminNote, &w.CreatedAt, &w.UpdatedAt)
	w.Status = domain.WithdrawalStatus(status)
	return w, err
}

func collect[T any](rows pgx.Rows, scan func(scanner) (T, error)) ([]T, error) {
	defer rows.Close()
	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// isPgError reports whether err is a postgres error with the given code
func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

func marshalDetails(details map[string]any) ([]byte, error) {
	if len(details) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(details)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal game details: %w", err)
	}
	return raw, nil
}
