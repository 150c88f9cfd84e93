package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)

	RequestsThrottled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRequestsThrottled,
			Help: HelpTextRequestsThrottled,
		},
		[]string{LabelBucket},
	)

	AdminAuthFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAdminAuthFailures,
			Help: HelpTextAdminAuthFailures,
		},
	)
)

// Stream Metrics
var (
	StreamClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameStreamClients,
			Help: HelpTextStreamClients,
		},
	)

	StreamEventsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStreamEventsDropped,
			Help: HelpTextStreamEventsDropped,
		},
		[]string{LabelType},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)
)

// Game Metrics
var (
	RollsRounds = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRollsRounds,
			Help: HelpTextRollsRounds,
		},
		[]string{LabelResult},
	)

	RollsBets = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRollsBets,
			Help: HelpTextRollsBets,
		},
		[]string{LabelColor},
	)

	RollsWagered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRollsWagered,
			Help: HelpTextRollsWagered,
		},
	)

	UpgradeSpins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUpgradeSpins,
			Help: HelpTextUpgradeSpins,
		},
		[]string{LabelOutcome},
	)

	CasesOpened = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCasesOpened,
			Help: HelpTextCasesOpened,
		},
		[]string{LabelCase, LabelKind},
	)
)

// Wallet Metrics
var (
	Deposits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDeposits,
			Help: HelpTextDeposits,
		},
		[]string{LabelMethod},
	)

	DepositedTON = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDepositedTON,
			Help: HelpTextDepositedTON,
		},
		[]string{LabelMethod},
	)

	Withdrawals = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWithdrawals,
			Help: HelpTextWithdrawals,
		},
		[]string{LabelStatus},
	)

	GiftWithdrawals = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGiftWithdrawals,
			Help: HelpTextGiftWithdrawals,
		},
	)
)
