// Package memrepo is an in-memory implementation of every repository interface, used by
// service tests in place of Postgres.
package memrepo

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/giftroll/internal/domain"
	"github.com/osse101/giftroll/internal/repository"
)

type round struct {
	number int64
	result domain.Color
}

type state struct {
	users       map[int64]domain.User
	games       []domain.GameHistory
	rounds      []round
	inventory   map[int64]domain.InventoryItem
	deposits    map[int64]domain.Deposit
	withdrawals map[int64]domain.Withdrawal
	nextID      int64
}

func (s *state) clone() *state {
	c := &state{
		users:       make(map[int64]domain.User, len(s.users)),
		games:       append([]domain.GameHistory(nil), s.games...),
		rounds:      append([]round(nil), s.rounds...),
		inventory:   make(map[int64]domain.InventoryItem, len(s.inventory)),
		deposits:    make(map[int64]domain.Deposit, len(s.deposits)),
		withdrawals: make(map[int64]domain.Withdrawal, len(s.withdrawals)),
		nextID:      s.nextID,
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.inventory {
		c.inventory[k] = v
	}
	for k, v := range s.deposits {
		c.deposits[k] = v
	}
	for k, v := range s.withdrawals {
		c.withdrawals[k] = v
	}
	return c
}

func (s *state) id() int64 {
	s.nextID++
	return s.nextID
}

// Store holds the data. A transaction holds the store lock from Begin until Commit or
// Rollback, so a test must not call non-transactional methods while one is open.
type Store struct {
	mu    sync.Mutex
	state *state
	now   func() time.Time

	// BeginErr, when set, is returned by every Begin method
	BeginErr error
	// CommitErr, when set, is returned by Commit and the transaction is discarded
	CommitErr error
}

// New returns an empty store
func New() *Store {
	return &Store{
		state: &state{
			users:       make(map[int64]domain.User),
			inventory:   make(map[int64]domain.InventoryItem),
			deposits:    make(map[int64]domain.Deposit),
			withdrawals: make(map[int64]domain.Withdrawal),
		},
		now: time.Now,
	}
}

// SetClock overrides the timestamps given to new rows
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// AddUser seeds a user, filling zero money fields
func (s *Store) AddUser(u domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.RefPercent == 0 {
		u.RefPercent = domain.DefaultRefPercent
	}
	s.state.users[u.TelegramID] = u
}

// AddInventoryItem seeds an inventory row and returns its id
func (s *Store) AddInventoryItem(item domain.InventoryItem) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = s.state.id()
	s.state.inventory[item.ID] = item
	return item.ID
}

// AddDeposit seeds a deposit and returns its id
func (s *Store) AddDeposit(d domain.Deposit) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	d.ID = s.state.id()
	s.state.deposits[d.ID] = d
	return d.ID
}

// AddWithdrawal seeds a withdrawal request and returns its id
func (s *Store) AddWithdrawal(w domain.Withdrawal) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	w.ID = s.state.id()
	if w.CreatedAt.IsZero() {
		w.CreatedAt = s.now()
	}
	s.state.withdrawals[w.ID] = w
	return w.ID
}

// AddRound seeds a settled round
func (s *Store) AddRound(number int64, result domain.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.rounds = append(s.state.rounds, round{number: number, result: result})
}

// User returns a copy of a stored user
func (s *Store) User(telegramID int64) (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.state.users[telegramID]
	return u, ok
}

// Games returns every history row, oldest first
func (s *Store) Games() []domain.GameHistory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.GameHistory(nil), s.state.games...)
}

// Deposits returns every deposit ordered by id
func (s *Store) Deposits() []domain.Deposit {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Deposit, 0, len(s.state.deposits))
	for _, d := range s.state.deposits {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Rounds returns the number of persisted rounds
func (s *Store) Rounds() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.rounds)
}

// Reads

func (s *Store) GetUser(ctx context.Context, telegramID int64) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.state.users[telegramID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (s *Store) CreateUser(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.state.users[user.TelegramID]; ok {
		return domain.ErrUserAlreadyExists
	}
	now := s.now()
	user.CreatedAt = now
	user.LastOnline = now
	s.state.users[user.TelegramID] = *user
	return nil
}

func (s *Store) TouchUser(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.state.users[user.TelegramID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.FirstName = user.FirstName
	u.LastName = user.LastName
	u.Username = user.Username
	u.PhotoURL = user.PhotoURL
	u.LastOnline = s.now()
	s.state.users[user.TelegramID] = u
	return nil
}

func (s *Store) ListGameHistory(ctx context.Context, telegramID int64, limit int) ([]domain.GameHistory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.GameHistory
	for i := len(s.state.games) - 1; i >= 0 && len(out) < limit; i-- {
		if s.state.games[i].UserID == telegramID {
			out = append(out, s.state.games[i])
		}
	}
	return out, nil
}

func (s *Store) RecentGames(ctx context.Context, limit int) ([]domain.GameHistory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.GameHistory
	for i := len(s.state.games) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.state.games[i])
	}
	return out, nil
}

func (s *Store) RecentRounds(ctx context.Context, limit int) (int64, []domain.Color, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rounds := append([]round(nil), s.state.rounds...)
	sort.Slice(rounds, func(i, j int) bool { return rounds[i].number > rounds[j].number })
	var last int64
	if len(rounds) > 0 {
		last = rounds[0].number
	}
	var history []domain.Color
	for i := 0; i < len(rounds) && i < limit; i++ {
		history = append(history, rounds[i].result)
	}
	return last, history, nil
}

func (s *Store) TopDepositors(ctx context.Context, limit int) ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.User
	for _, u := range s.state.users {
		if u.TotalDeposited.Sign() > 0 {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].TotalDeposited.Cmp(out[j].TotalDeposited); c != 0 {
			return c > 0
		}
		return out[i].TelegramID < out[j].TelegramID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) ListReferrals(ctx context.Context, referrerID int64) ([]domain.Referral, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var users []domain.User
	for _, u := range s.state.users {
		if u.RefID != nil && *u.RefID == referrerID {
			users = append(users, u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.After(users[j].CreatedAt) })
	out := make([]domain.Referral, 0, len(users))
	for _, u := range users {
		out = append(out, domain.Referral{Name: u.FirstName, Username: u.Username, TotalDeposited: u.TotalDeposited})
	}
	return out, nil
}

func (s *Store) SearchUsers(ctx context.Context, query string, limit int) ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := strings.ToLower(query)
	var out []domain.User
	for _, u := range s.state.users {
		if strconv.FormatInt(u.TelegramID, 10) == query ||
			strings.Contains(strings.ToLower(u.Username), q) ||
			strings.Contains(strings.ToLower(u.FirstName), q) {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TelegramID < out[j].TelegramID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) CountUsers(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.users), nil
}

func (s *Store) CountOnlineSince(ctx context.Context, since time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, u := range s.state.users {
		if !u.LastOnline.Before(since) {
			n++
		}
	}
	return n, nil
}

func (s *Store) SumDeposited(ctx context.Context) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sum := decimal.Zero
	for _, u := range s.state.users {
		sum = sum.Add(u.TotalDeposited)
	}
	return sum, nil
}

func (s *Store) ListInventory(ctx context.Context, telegramID int64) ([]domain.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.InventoryItem
	for _, item := range s.state.inventory {
		if item.UserID == telegramID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (s *Store) ListWithdrawals(ctx context.Context, telegramID int64) ([]domain.Withdrawal, error) {
	return s.withdrawals(func(w domain.Withdrawal) bool { return w.UserID == telegramID }), nil
}

func (s *Store) ListPendingWithdrawals(ctx context.Context) ([]domain.Withdrawal, error) {
	return s.withdrawals(func(w domain.Withdrawal) bool { return w.Status == domain.WithdrawalPending }), nil
}

func (s *Store) withdrawals(keep func(domain.Withdrawal) bool) []domain.Withdrawal {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Withdrawal
	for _, w := range s.state.withdrawals {
		if keep(w) {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (s *Store) ExpirePendingDeposits(ctx context.Context, olderThan time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for id, d := range s.state.deposits {
		if d.Status == domain.DepositPending && d.CreatedAt.Before(olderThan) {
			d.Status = domain.DepositExpired
			s.state.deposits[id] = d
			n++
		}
	}
	return n, nil
}

// Transactions

func (s *Store) begin() (*Tx, error) {
	if s.BeginErr != nil {
		return nil, s.BeginErr
	}
	s.mu.Lock()
	return &Tx{store: s, state: s.state.clone()}, nil
}

func (s *Store) BeginTx(ctx context.Context) (repository.Tx, error) {
	return s.begin()
}

func (s *Store) BeginRollsTx(ctx context.Context) (repository.RollsTx, error) {
	return s.begin()
}

func (s *Store) BeginCaseTx(ctx context.Context) (repository.CaseTx, error) {
	return s.begin()
}

func (s *Store) BeginInventoryTx(ctx context.Context) (repository.InventoryTx, error) {
	return s.begin()
}

func (s *Store) BeginWalletTx(ctx context.Context) (repository.WalletTx, error) {
	return s.begin()
}

var (
	_ repository.User        = (*Store)(nil)
	_ repository.Rolls       = (*Store)(nil)
	_ repository.Upgrade     = (*Store)(nil)
	_ repository.Cases       = (*Store)(nil)
	_ repository.Inventory   = (*Store)(nil)
	_ repository.Wallet      = (*Store)(nil)
	_ repository.Referral    = (*Store)(nil)
	_ repository.Leaderboard = (*Store)(nil)
	_ repository.Admin       = (*Store)(nil)
)
