package inventory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/giftroll/internal/domain"
	"github.com/osse101/giftroll/internal/event"
	"github.com/osse101/giftroll/internal/testing/memrepo"
)

func setup(t *testing.T) (Service, *memrepo.Store, *event.MemoryBus, int64) {
	t.Helper()
	store := memrepo.New()
	store.AddUser(domain.User{TelegramID: 1, Username: "ann", Balance: decimal.NewFromInt(2)})
	store.AddUser(domain.User{TelegramID: 2})
	id := store.AddInventoryItem(domain.InventoryItem{UserID: 1, GiftName: "Neko Helmet", GiftImage: "🪖", SellPrice: decimal.NewFromInt(8)})
	bus := event.NewMemoryBus()
	return NewService(store, bus), store, bus, id
}

func TestList(t *testing.T) {
	svc, _, _, id := setup(t)

	items, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, id, items[0].ID)

	items, err = svc.List(context.Background(), 2)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestSell(t *testing.T) {
	svc, store, _, id := setup(t)

	res, err := svc.Sell(context.Background(), 1, id)
	require.NoError(t, err)
	assert.Equal(t, "10", res.NewBalance.String())
	assert.Equal(t, "8", res.Sold.String())

	items, _ := store.ListInventory(context.Background(), 1)
	assert.Empty(t, items)

	_, err = svc.Sell(context.Background(), 1, id)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestSell_OtherUsersItem(t *testing.T) {
	svc, store, _, id := setup(t)

	_, err := svc.Sell(context.Background(), 2, id)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	items, _ := store.ListInventory(context.Background(), 1)
	assert.Len(t, items, 1)
}

func TestWithdrawGift(t *testing.T) {
	svc, store, bus, id := setup(t)

	var got *event.GiftWithdrawalPayloadV1
	bus.Subscribe(event.GiftWithdrawal, func(ctx context.Context, evt event.Event) error {
		p, err := event.DecodePayload[event.GiftWithdrawalPayloadV1](evt.Payload)
		got = &p
		return err
	})

	res, err := svc.WithdrawGift(context.Background(), 1, id)
	require.NoError(t, err)
	assert.Contains(t, res.Message, "Neko Helmet")

	require.NotNil(t, got)
	assert.Equal(t, int64(1), got.TelegramID)
	assert.Equal(t, "ann", got.Username)
	assert.Equal(t, "Neko Helmet", got.GiftName)

	items, _ := store.ListInventory(context.Background(), 1)
	assert.Empty(t, items)
	u, _ := store.User(1)
	assert.Equal(t, "2", u.Balance.String())
}

func TestWithdrawGift_OtherUsersItem(t *testing.T) {
	svc, _, _, id := setup(t)
	_, err := svc.WithdrawGift(context.Background(), 2, id)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}
