package miniapp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/giftroll/internal/domain"
)

func newTestAPI(t *testing.T, h http.HandlerFunc) (*APIClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	api := NewAPIClient(&Config{APIURL: srv.URL, Timeout: time.Second, MaxRetries: 2, RetryDelay: time.Millisecond})
	return api, srv
}

func TestAPIClient_RollsState(t *testing.T) {
	api, _ := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/rolls/state", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"round":12,"countdown":7.5,"last_result":"green","history":["green","red"],
			"red_count":1,"blue_count":0,"green_count":1,"last_payouts":{"42":{"won":true,"amount":1.5,"mult":10}}}`))
	})

	snap, err := api.RollsState(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(12), snap.Round)
	assert.Equal(t, 7.5, snap.Countdown)
	assert.Equal(t, domain.ColorGreen, snap.LastResult)
	assert.Len(t, snap.History, 2)
	require.Contains(t, snap.LastPayouts, "42")
	assert.True(t, snap.LastPayouts["42"].Amount.Equal(dec("1.5")))
}

func TestAPIClient_PlaceBetSendsBody(t *testing.T) {
	api, _ := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/rolls/bet", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(42), body["telegram_id"])
		assert.Equal(t, "blue", body["color"])
		assert.Equal(t, 0.25, body["amount"])
		_, _ = w.Write([]byte(`{"success":true,"new_balance":9.75,"bet":{"color":"blue","amount":0.25},"round":3}`))
	})

	res, err := api.PlaceBet(context.Background(), 42, domain.ColorBlue, dec("0.25"))

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "9.7500", FormatBalance(res.NewBalance))
}

func TestAPIClient_ErrorClassification(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		wantRejection string
		wantTransport bool
		wantHits      int32
	}{
		{"rejection payload", http.StatusBadRequest, `{"error":"Insufficient balance"}`, "Insufficient balance", false, 1},
		{"rejection inside 200", http.StatusOK, `{"error":"Betting is closed"}`, "Betting is closed", false, 1},
		{"server error sent once", http.StatusInternalServerError, `{"error":"boom"}`, "", true, 1},
		{"undecodable body", http.StatusOK, `not json`, "", true, 1},
		{"status without payload", http.StatusNotFound, `404 page not found`, "", true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hits atomic.Int32
			api, _ := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
				hits.Add(1)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := api.Spin(context.Background(), 42, dec("1"), dec("2"))

			require.Error(t, err)
			assert.Equal(t, tt.wantHits, hits.Load())
			if tt.wantTransport {
				assert.True(t, IsTransport(err))
				assert.Equal(t, MsgNetworkError, UserMessage(err))
				return
			}
			var rej *RejectionError
			require.ErrorAs(t, err, &rej)
			assert.Equal(t, tt.wantRejection, rej.Message)
			assert.Equal(t, tt.wantRejection, UserMessage(err))
		})
	}
}

func TestAPIClient_RetriesUntilSuccess(t *testing.T) {
	var hits atomic.Int32
	api, _ := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"balance":1.2345,"ref_balance":0.1}`))
	})

	b, err := api.Balance(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, int32(3), hits.Load())
	assert.Equal(t, "1.2345", FormatBalance(b.Balance))
}

func TestAPIClient_MutatingCallsAreSentOnce(t *testing.T) {
	tests := []struct {
		name    string
		timeout time.Duration
		handler func(w http.ResponseWriter, r *http.Request)
		call    func(api *APIClient) error
	}{
		{
			name:    "spin after client timeout",
			timeout: 30 * time.Millisecond,
			handler: func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-r.Context().Done():
				case <-time.After(200 * time.Millisecond):
				}
			},
			call: func(api *APIClient) error {
				_, err := api.Spin(context.Background(), 42, dec("1"), dec("2"))
				return err
			},
		},
		{
			name:    "withdraw after bad gateway",
			timeout: time.Second,
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			call: func(api *APIClient) error {
				_, err := api.Withdraw(context.Background(), 42, dec("10"), "UQwallet")
				return err
			},
		},
		{
			name:    "bet after bad gateway",
			timeout: time.Second,
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			call: func(api *APIClient) error {
				_, err := api.PlaceBet(context.Background(), 42, domain.ColorRed, dec("1"))
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hits atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				hits.Add(1)
				tt.handler(w, r)
			}))
			t.Cleanup(srv.Close)
			api := NewAPIClient(&Config{APIURL: srv.URL, Timeout: tt.timeout, MaxRetries: 3, RetryDelay: time.Millisecond})

			err := tt.call(api)

			require.Error(t, err)
			assert.True(t, IsTransport(err))
			assert.Equal(t, int32(1), hits.Load())
		})
	}
}

func TestAPIClient_IdempotentPostsRetry(t *testing.T) {
	var hits atomic.Int32
	api, _ := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 2 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"access":true}`))
	})

	access, err := api.CheckAccess(context.Background(), 42)

	require.NoError(t, err)
	assert.True(t, access.Access)
	assert.Equal(t, int32(2), hits.Load())
}

func TestAPIClient_PollDoesNotRetry(t *testing.T) {
	var hits atomic.Int32
	api, _ := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := api.RollsState(context.Background())

	assert.True(t, IsTransport(err))
	assert.Equal(t, int32(1), hits.Load())
}

func TestAPIClient_Unreachable(t *testing.T) {
	api, srv := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	_, err := api.Balance(context.Background(), 42)

	require.Error(t, err)
	assert.True(t, IsTransport(err))
}

func TestAPIClient_Paths(t *testing.T) {
	seen := make(chan string, 16)
	api, _ := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		seen <- r.Method + " " + r.URL.Path
		switch r.URL.Path {
		case "/api/mutants/cases", "/api/leaderboard", "/api/withdrawals/42", "/api/inventory/42", "/api/history/42":
			_, _ = w.Write([]byte(`[]`))
		default:
			_, _ = w.Write([]byte(`{}`))
		}
	})
	ctx := context.Background()

	calls := []struct {
		want string
		call func() error
	}{
		{"GET /api/free_case_status/42", func() error { _, err := api.FreeCaseStatus(ctx, 42); return err }},
		{"POST /api/mutants/check", func() error { _, err := api.CheckAccess(ctx, 42); return err }},
		{"POST /api/mutants/open", func() error { _, err := api.OpenCase(ctx, 42, domain.CaseFree); return err }},
		{"GET /api/mutants/cases", func() error { _, err := api.Cases(ctx); return err }},
		{"GET /api/referrals/42", func() error { _, err := api.Referrals(ctx, 42); return err }},
		{"POST /api/referrals/withdraw", func() error { _, err := api.WithdrawReferral(ctx, 42); return err }},
		{"POST /api/deposit/stars", func() error { _, err := api.DepositStars(ctx, 42, 100); return err }},
		{"POST /api/deposit/ton", func() error { _, err := api.DepositTON(ctx, 42, dec("1")); return err }},
		{"POST /api/deposit/confirm", func() error { _, err := api.ConfirmDeposit(ctx, 42, "DEP-1"); return err }},
		{"POST /api/withdraw", func() error { _, err := api.Withdraw(ctx, 42, dec("10"), "UQwallet"); return err }},
		{"GET /api/withdrawals/42", func() error { _, err := api.Withdrawals(ctx, 42); return err }},
		{"GET /api/inventory/42", func() error { _, err := api.Inventory(ctx, 42); return err }},
		{"POST /api/inventory/sell", func() error { _, err := api.SellGift(ctx, 42, 1); return err }},
		{"POST /api/inventory/withdraw_gift", func() error { _, err := api.WithdrawGift(ctx, 42, 1); return err }},
		{"GET /api/leaderboard", func() error { _, err := api.Leaderboard(ctx); return err }},
		{"GET /api/history/42", func() error { _, err := api.History(ctx, 42); return err }},
	}

	for _, c := range calls {
		t.Run(c.want, func(t *testing.T) {
			require.NoError(t, c.call())
			assert.Equal(t, c.want, <-seen)
		})
	}
}
