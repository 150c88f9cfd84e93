package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameRequestsThrottled    = "http_requests_throttled_total"
	MetricNameAdminAuthFailures    = "admin_auth_failures_total"
)

// Event metric names
const (
	MetricNameEventsPublished     = "events_published_total"
	MetricNameStreamClients       = "stream_clients"
	MetricNameStreamEventsDropped = "stream_events_dropped_total"
)

// Game and wallet metric names
const (
	MetricNameRollsRounds     = "rolls_rounds_total"
	MetricNameRollsBets       = "rolls_bets_total"
	MetricNameRollsWagered    = "rolls_wagered_ton_total"
	MetricNameUpgradeSpins    = "upgrade_spins_total"
	MetricNameCasesOpened     = "cases_opened_total"
	MetricNameDeposits        = "deposits_total"
	MetricNameDepositedTON    = "deposited_ton_total"
	MetricNameWithdrawals     = "withdrawals_total"
	MetricNameGiftWithdrawals = "gift_withdrawals_total"
)

// Help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextRequestsThrottled    = "Requests rejected by the per IP limiter, by bucket"
	HelpTextAdminAuthFailures    = "Admin requests with a missing or wrong API key"
	HelpTextEventsPublished      = "Total number of events published"
	HelpTextStreamClients        = "Connected event stream clients"
	HelpTextStreamEventsDropped  = "Stream events skipped for clients with a full buffer"
	HelpTextRollsRounds          = "Settled rolls rounds by result colour"
	HelpTextRollsBets            = "Accepted rolls bets by colour"
	HelpTextRollsWagered         = "TON wagered on rolls"
	HelpTextUpgradeSpins         = "Gift upgrade spins by outcome"
	HelpTextCasesOpened          = "Cases opened by case and reward kind"
	HelpTextDeposits             = "Credited deposits by method"
	HelpTextDepositedTON         = "TON credited by deposits"
	HelpTextWithdrawals          = "Withdrawal requests by status"
	HelpTextGiftWithdrawals      = "Gift transfer requests"
)

// Label names
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelColor   = "color"
	LabelResult  = "result"
	LabelOutcome = "outcome"
	LabelCase    = "case"
	LabelKind    = "kind"
	LabelBucket  = "bucket"
)

// UnmatchedRoute labels requests no route pattern matched
const UnmatchedRoute = "unmatched"

// Outcome label values
const (
	OutcomeWin  = "win"
	OutcomeLoss = "loss"
)

// HTTPLatencyBuckets range from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// Log messages
const (
	LogMsgInvalidPayload  = "Unexpected event payload for metrics"
	LogMsgMetricsRecorded = "Metrics recorded for event"
)
