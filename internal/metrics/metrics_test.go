package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/giftroll/internal/domain"
	"github.com/osse101/giftroll/internal/event"
)

func TestEventMetricsCollector_RoundSettled(t *testing.T) {
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)

	before := testutil.ToFloat64(RollsRounds.WithLabelValues(string(domain.ColorGreen)))
	require.NoError(t, bus.Publish(context.Background(), event.NewRoundSettledEvent(domain.SettledRound{Round: 1, Result: domain.ColorGreen})))

	assert.Equal(t, before+1, testutil.ToFloat64(RollsRounds.WithLabelValues(string(domain.ColorGreen))))
}

func TestEventMetricsCollector_Deposit(t *testing.T) {
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)

	method := string(domain.DepositStars)
	before := testutil.ToFloat64(DepositedTON.WithLabelValues(method))
	require.NoError(t, bus.Publish(context.Background(),
		event.NewDepositCreditedEvent(1, decimal.RequireFromString("1.099"), domain.DepositStars)))

	assert.InDelta(t, before+1.099, testutil.ToFloat64(DepositedTON.WithLabelValues(method)), 1e-9)
}

func TestEventMetricsCollector_BadPayloadIsIgnored(t *testing.T) {
	c := NewEventMetricsCollector()
	err := c.HandleEvent(context.Background(), event.Event{Type: event.RoundSettled, Payload: make(chan int)})
	assert.NoError(t, err)
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/api/user/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/user/{id}", "418"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/user/42", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/user/{id}", "418")))
}

func TestMiddleware_UnmatchedRouteSharesLabel(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {})

	label := HTTPRequestsTotal.WithLabelValues(http.MethodGet, UnmatchedRoute, "404")
	before := testutil.ToFloat64(label)

	for _, path := range []string{"/wp-login.php", "/.env"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, before+2, testutil.ToFloat64(label))
}

func TestMiddleware_KeepsFlusher(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/stream", func(w http.ResponseWriter, r *http.Request) {
		f, ok := w.(http.Flusher)
		require.True(t, ok)
		_, _ = w.Write([]byte("data: 1\n\n"))
		f.Flush()
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stream", nil))

	assert.True(t, rec.Flushed)
	assert.Equal(t, 1.0, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/stream", "200")))
}
