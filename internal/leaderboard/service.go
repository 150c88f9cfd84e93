package leaderboard

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/giftroll/internal/domain"
	"github.com/osse101/giftroll/internal/event"
	"github.com/osse101/giftroll/internal/logger"
	"github.com/osse101/giftroll/internal/repository"
)

// Service ranks players by lifetime deposits
type Service interface {
	Top(ctx context.Context) ([]domain.LeaderboardEntry, error)
	// Refresh rebuilds the cached board from storage
	Refresh(ctx context.Context) error
	// Subscribe drops the cache whenever a deposit changes the ranking
	Subscribe(bus event.Bus)
}

type service struct {
	repo  repository.Leaderboard
	cache *boardCache
}

// NewService creates a leaderboard service caching the board for ttl
func NewService(repo repository.Leaderboard, ttl time.Duration) Service {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &service{repo: repo, cache: newBoardCache(ttl)}
}

func (s *service) Top(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	if entries, ok := s.cache.Get(cacheKeyTop); ok {
		return entries, nil
	}
	return s.load(ctx)
}

func (s *service) Refresh(ctx context.Context) error {
	_, err := s.load(ctx)
	return err
}

func (s *service) load(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	users, err := s.repo.TopDepositors(ctx, domain.LeaderboardSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLoad, err)
	}

	entries := make([]domain.LeaderboardEntry, 0, len(users))
	for i, u := range users {
		name := u.FirstName
		if name == "" {
			name = anonymousName
		}
		entries = append(entries, domain.LeaderboardEntry{
			Rank:           i + 1,
			Name:           name,
			Username:       u.Username,
			PhotoURL:       u.PhotoURL,
			TotalDeposited: domain.RoundMoney(u.TotalDeposited),
		})
	}

	s.cache.Set(cacheKeyTop, entries)
	return entries, nil
}

func (s *service) Subscribe(bus event.Bus) {
	bus.Subscribe(event.DepositCredited, func(ctx context.Context, _ event.Event) error {
		s.cache.Clear()
		logger.FromContext(ctx).Debug(LogMsgCacheInvalidated)
		return nil
	})
}
