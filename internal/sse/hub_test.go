package sse

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/giftroll/internal/domain"
	"github.com/osse101/giftroll/internal/event"
)

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return hub.ClientCount() == n }, time.Second, 5*time.Millisecond)
}

func TestHub_BroadcastRespectsFilter(t *testing.T) {
	hub := NewHub()
	defer hub.Stop()

	all := hub.Register(nil, "")
	rollsOnly := hub.Register([]string{" " + EventTypeRoundSettled, ""}, "")
	assert.Equal(t, 2, hub.ClientCount())

	hub.Broadcast(EventTypeDeposit, DepositPayload{TelegramID: 1})
	hub.Broadcast(EventTypeRoundSettled, RoundSettledPayload{Round: 3})

	got := <-all.Events
	assert.Equal(t, EventTypeDeposit, got.Type)
	assert.Equal(t, "1", got.ID)
	got = <-all.Events
	assert.Equal(t, EventTypeRoundSettled, got.Type)
	assert.Equal(t, "2", got.ID)

	got = <-rollsOnly.Events
	assert.Equal(t, EventTypeRoundSettled, got.Type)
	assert.Empty(t, rollsOnly.Events)
}

func TestHub_FullClientMissesEvents(t *testing.T) {
	hub := NewHub()
	defer hub.Stop()

	client := hub.Register(nil, "")
	for i := 0; i < ClientEventBuffer+5; i++ {
		hub.Broadcast(EventTypeDeposit, nil)
	}
	assert.Len(t, client.Events, ClientEventBuffer)
}

func TestHub_ReplaysMissedEvents(t *testing.T) {
	hub := NewHub()
	defer hub.Stop()

	for i := 0; i < 5; i++ {
		hub.Broadcast(EventTypeRoundSettled, RoundSettledPayload{Round: int64(i + 1)})
	}

	tests := []struct {
		name        string
		lastEventID string
		wantIDs     []string
	}{
		{"fresh connection", "", nil},
		{"missed two", "3", []string{"4", "5"}},
		{"up to date", "5", nil},
		{"from the start", "0", []string{"1", "2", "3", "4", "5"}},
		{"garbage", "abc", nil},
		{"future id", "99", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := hub.Register(nil, tt.lastEventID)
			defer hub.Unregister(client.ID)

			var ids []string
			for len(client.Events) > 0 {
				ids = append(ids, (<-client.Events).ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestHub_ReplayWindowEvictsOldest(t *testing.T) {
	hub := NewHub()
	defer hub.Stop()

	for i := 0; i < ReplayBufferSize+10; i++ {
		hub.Broadcast(EventTypeDeposit, nil)
	}

	evicted := hub.Register(nil, "3")
	assert.Empty(t, evicted.Events)

	kept := hub.Register(nil, strconv.Itoa(ReplayBufferSize+8))
	require.Len(t, kept.Events, 2)
	assert.Equal(t, strconv.Itoa(ReplayBufferSize+9), (<-kept.Events).ID)
}

func TestHub_UnregisterClosesChannel(t *testing.T) {
	hub := NewHub()
	defer hub.Stop()

	client := hub.Register(nil, "")
	hub.Unregister(client.ID)
	hub.Unregister(client.ID)

	assert.Zero(t, hub.ClientCount())
	_, ok := <-client.Events
	assert.False(t, ok)
}

func TestHub_Stop(t *testing.T) {
	hub := NewHub()
	client := hub.Register(nil, "")

	hub.Stop()
	assert.NotPanics(t, hub.Stop)

	_, ok := <-client.Events
	assert.False(t, ok)

	late := hub.Register(nil, "")
	_, ok = <-late.Events
	assert.False(t, ok)
	assert.NotPanics(t, func() { hub.Broadcast(EventTypeDeposit, nil) })
}

func TestFormatSSEMessage(t *testing.T) {
	msg, err := FormatSSEMessage(Event{ID: "abc", Type: EventTypeRoundSettled, Payload: map[string]int{"round": 1}})
	require.NoError(t, err)

	s := string(msg)
	assert.True(t, strings.HasPrefix(s, "id: abc\nevent: rolls.settled\ndata: {"))
	assert.True(t, strings.HasSuffix(s, "\n\n"))

	msg, err = FormatSSEMessage(Event{Type: EventTypeKeepalive})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(msg), "event: keepalive\n"))
}

func TestSubscriber_ForwardsRoundSettled(t *testing.T) {
	hub := NewHub()
	defer hub.Stop()

	bus := event.NewMemoryBus()
	NewSubscriber(hub, bus).Subscribe()

	client := hub.Register([]string{EventTypeRoundSettled}, "")

	settled := domain.SettledRound{
		Round:   9,
		Result:  domain.ColorRed,
		Payouts: map[int64]domain.Payout{5: {Won: true, Amount: decimal.NewFromInt(2), Mult: decimal.NewFromInt(2)}},
	}
	require.NoError(t, bus.Publish(context.Background(), event.NewRoundSettledEvent(settled)))

	select {
	case got := <-client.Events:
		payload, ok := got.Payload.(RoundSettledPayload)
		require.True(t, ok)
		assert.Equal(t, int64(9), payload.Round)
		assert.Contains(t, payload.Payouts, "5")
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}
}

func TestHandler_StreamsConnectedThenEvents(t *testing.T) {
	hub := NewHub()
	defer hub.Stop()

	srv := httptest.NewServer(Handler(hub))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"?types="+EventTypeRoundSettled, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	readEventType := func() string {
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			if strings.HasPrefix(line, "event: ") {
				return strings.TrimSpace(strings.TrimPrefix(line, "event: "))
			}
		}
	}

	assert.Equal(t, EventTypeConnected, readEventType())

	waitForClients(t, hub, 1)
	hub.Broadcast(EventTypeRoundSettled, RoundSettledPayload{Round: 1})
	assert.Equal(t, EventTypeRoundSettled, readEventType())
}

func TestHandler_ReplaysFromLastEventID(t *testing.T) {
	hub := NewHub()
	defer hub.Stop()
	hub.Broadcast(EventTypeDeposit, DepositPayload{TelegramID: 1})
	hub.Broadcast(EventTypeRoundSettled, RoundSettledPayload{Round: 2})

	srv := httptest.NewServer(Handler(hub))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
	require.NoError(t, err)
	req.Header.Set(HeaderLastEventID, "1")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	reader := bufio.NewReader(resp.Body)
	var ids []string
	for len(ids) < 1 {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		if strings.HasPrefix(line, "id: ") {
			ids = append(ids, strings.TrimSpace(strings.TrimPrefix(line, "id: ")))
		}
	}
	assert.Equal(t, []string{"2"}, ids)
}
