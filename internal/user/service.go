package user

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/osse101/giftroll/internal/domain"
	"github.com/osse101/giftroll/internal/logger"
	"github.com/osse101/giftroll/internal/repository"
)

// Service handles player profiles
type Service interface {
	// Init registers a new player or refreshes a returning one
	Init(ctx context.Context, req domain.InitRequest) (*domain.User, error)
	GetBalance(ctx context.Context, telegramID int64) (*domain.BalanceView, error)
	GetHistory(ctx context.Context, telegramID int64) ([]domain.GameHistory, error)
}

type service struct {
	repo repository.User
}

// NewService creates a new user service
func NewService(repo repository.User) Service {
	return &service{repo: repo}
}

func (s *service) Init(ctx context.Context, req domain.InitRequest) (*domain.User, error) {
	log := logger.FromContext(ctx)

	profile := &domain.User{
		TelegramID: req.TelegramID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Username:   req.Username,
		PhotoURL:   req.PhotoURL,
	}

	existing, err := s.repo.GetUser(ctx, req.TelegramID)
	switch {
	case err == nil:
		return s.touch(ctx, existing, profile)
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetUser, err)
	}

	profile.RefPercent = domain.DefaultRefPercent
	profile.RefID = s.resolveReferrer(ctx, req.TelegramID, req.StartParam)

	if err := s.repo.CreateUser(ctx, profile); err != nil {
		if !errors.Is(err, domain.ErrUserAlreadyExists) {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToCreateUser, err)
		}
		log.Info(LogMsgCreateRaceResolve, "telegramID", req.TelegramID)
		existing, err := s.repo.GetUser(ctx, req.TelegramID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetUser, err)
		}
		return s.touch(ctx, existing, profile)
	}

	log.Info(LogMsgUserCreated, "telegramID", profile.TelegramID, "refID", profile.RefID)
	return profile, nil
}

// touch stamps last_online and keeps stored names when the client sent blanks
func (s *service) touch(ctx context.Context, existing, profile *domain.User) (*domain.User, error) {
	if profile.FirstName != "" {
		existing.FirstName = profile.FirstName
	}
	if profile.LastName != "" {
		existing.LastName = profile.LastName
	}
	if profile.Username != "" {
		existing.Username = profile.Username
	}
	if profile.PhotoURL != "" {
		existing.PhotoURL = profile.PhotoURL
	}
	if err := s.repo.TouchUser(ctx, existing); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToTouchUser, err)
	}
	return existing, nil
}

// resolveReferrer turns a ref_<id> start param into a referrer id. Self referrals and
// unknown ids are dropped.
func (s *service) resolveReferrer(ctx context.Context, telegramID int64, startParam string) *int64 {
	if !strings.HasPrefix(startParam, domain.ReferralStartPrefix) {
		return nil
	}
	log := logger.FromContext(ctx)

	refID, err := strconv.ParseInt(strings.TrimPrefix(startParam, domain.ReferralStartPrefix), 10, 64)
	if err != nil || refID == telegramID {
		log.Debug(LogMsgReferralIgnored, "startParam", startParam)
		return nil
	}
	if _, err := s.repo.GetUser(ctx, refID); err != nil {
		log.Debug(LogMsgReferralIgnored, "startParam", startParam, "error", err)
		return nil
	}

	log.Info(LogMsgReferralAttached, "telegramID", telegramID, "refID", refID)
	return &refID
}

func (s *service) GetBalance(ctx context.Context, telegramID int64) (*domain.BalanceView, error) {
	user, err := s.repo.GetUser(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetUser, err)
	}
	return &domain.BalanceView{
		Balance:    domain.RoundMoney(user.Balance),
		RefBalance: domain.RoundMoney(user.RefBalance),
	}, nil
}

func (s *service) GetHistory(ctx context.Context, telegramID int64) ([]domain.GameHistory, error) {
	history, err := s.repo.ListGameHistory(ctx, telegramID, HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetHistory, err)
	}
	if history == nil {
		history = []domain.GameHistory{}
	}
	return history, nil
}
