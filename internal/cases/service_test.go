package cases

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/giftroll/internal/cooldown"
	"github.com/osse101/giftroll/internal/domain"
	"github.com/osse101/giftroll/internal/testing/memrepo"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newTestService(t *testing.T, roll int) (*service, *memrepo.Store) {
	t.Helper()
	catalog, err := LoadCatalog("")
	require.NoError(t, err)

	store := memrepo.New()
	store.AddUser(domain.User{TelegramID: 1, Balance: dec("10"), TotalDeposited: dec("5")})
	store.AddUser(domain.User{TelegramID: 2, Balance: dec("10"), TotalDeposited: dec("4.99")})

	svc := &service{
		repo:      store,
		cooldowns: cooldown.NewMemoryService(cooldown.Config{}),
		catalog:   catalog,
		intn:      func(int) (int, error) { return roll, nil },
	}
	return svc, store
}

func TestCheckAccess(t *testing.T) {
	svc, _ := newTestService(t, 0)

	access, err := svc.CheckAccess(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, access.Access)

	access, err = svc.CheckAccess(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, access.Access)
	assert.Equal(t, domain.ErrMsgCasesLocked, access.Message)

	_, err = svc.CheckAccess(context.Background(), 3)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestOpenCase_Rewards(t *testing.T) {
	tests := []struct {
		name        string
		caseType    domain.CaseType
		roll        int
		wantReward  string
		wantKind    domain.RewardKind
		wantBalance string
		wantItem    bool
		wantResult  string
	}{
		// regular weights: 536, 7900, 1064, 200, 20, 280
		{"regular nft", domain.CaseRegular, 0, "Jolly Chimp", domain.RewardNFT, "5", true, "-4.5"},
		{"regular ton", domain.CaseRegular, 536, "1 TON", domain.RewardTON, "6", false, "-4"},
		{"regular big ton", domain.CaseRegular, 8436, "3.4 TON", domain.RewardTON, "8.4", false, "-1.6"},
		{"regular nothing", domain.CaseRegular, 9999, "Nothing", domain.RewardNothing, "5", false, "-5"},
		{"snoop low rider", domain.CaseSnoop, 0, "Low Rider", domain.RewardNFT, "3", true, "43"},
		{"snoop ton", domain.CaseSnoop, 9999, "2.2 TON", domain.RewardTON, "5.2", false, "-4.8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newTestService(t, tt.roll)

			res, err := svc.OpenCase(context.Background(), 1, tt.caseType)
			require.NoError(t, err)

			assert.Equal(t, tt.wantReward, res.Reward.Name)
			assert.Equal(t, tt.wantKind, res.Reward.Kind)
			assert.Zero(t, res.Reward.Chance)
			assert.Equal(t, tt.wantBalance, res.NewBalance.String())

			items, err := store.ListInventory(context.Background(), 1)
			require.NoError(t, err)
			if tt.wantItem {
				require.NotNil(t, res.InventoryID)
				require.Len(t, items, 1)
				assert.Equal(t, tt.wantReward, items[0].GiftName)
				assert.True(t, items[0].SellPrice.Equal(res.Reward.Value))
			} else {
				assert.Nil(t, res.InventoryID)
				assert.Empty(t, items)
			}

			games := store.Games()
			require.Len(t, games, 1)
			assert.Equal(t, domain.GameTypeMutants, games[0].GameType)
			assert.Equal(t, tt.wantResult, games[0].Result.String())
			assert.Equal(t, string(tt.caseType), games[0].Details[DetailCaseType])
		})
	}
}

func TestOpenCase_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		user     int64
		balance  string
		caseType domain.CaseType
		wantErr  error
	}{
		{"unknown case", 1, "10", "golden", domain.ErrUnknownCase},
		{"locked below deposit threshold", 2, "10", domain.CaseRegular, domain.ErrCasesLocked},
		{"cannot afford", 1, "6.99", domain.CaseSnoop, domain.ErrInsufficientBalance},
		{"unknown user", 9, "10", domain.CaseRegular, domain.ErrUserNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newTestService(t, 0)
			store.AddUser(domain.User{TelegramID: 1, Balance: dec(tt.balance), TotalDeposited: dec("5")})

			_, err := svc.OpenCase(context.Background(), tt.user, tt.caseType)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, store.Games())
		})
	}
}

func TestOpenCase_FreeCaseCooldown(t *testing.T) {
	svc, store := newTestService(t, 0)
	ctx := context.Background()

	// the free case ignores the deposit threshold
	res, err := svc.OpenCase(ctx, 2, domain.CaseFree)
	require.NoError(t, err)
	assert.Equal(t, "0.05 TON", res.Reward.Name)
	assert.Equal(t, "10.05", res.NewBalance.String())

	status, err := svc.FreeCaseStatus(ctx, 2)
	require.NoError(t, err)
	assert.False(t, status.Available)
	assert.Greater(t, status.RemainingSeconds, 86000)

	_, err = svc.OpenCase(ctx, 2, domain.CaseFree)
	assert.ErrorIs(t, err, domain.ErrFreeCaseCooldown)

	u, _ := store.User(2)
	assert.Equal(t, "10.05", u.Balance.String())

	status, err = svc.FreeCaseStatus(ctx, 1)
	require.NoError(t, err)
	assert.True(t, status.Available)
	assert.Zero(t, status.RemainingSeconds)
}

func TestOpenCase_FailedFreeCaseKeepsItAvailable(t *testing.T) {
	svc, _ := newTestService(t, 0)
	ctx := context.Background()

	_, err := svc.OpenCase(ctx, 99, domain.CaseFree)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	status, err := svc.FreeCaseStatus(ctx, 99)
	require.NoError(t, err)
	assert.True(t, status.Available)
}
