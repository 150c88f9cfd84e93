package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "⚠️ SECURITY ALERT: Multiple failed authentication attempts"
	SecurityAlertHighRate   = "⚠️ SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Admin authentication failed"
	LogMsgAdminKeyMissing  = "API_KEY is empty, admin routes reject every request"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"

	HeaderAllowOrigin  = "Access-Control-Allow-Origin"
	HeaderAllowMethods = "Access-Control-Allow-Methods"
	HeaderAllowHeaders = "Access-Control-Allow-Headers"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"

	// The Mini App page is served from a different origin than the API
	HeaderValueAnyOrigin   = "*"
	HeaderValueCORSMethods = "GET, POST, OPTIONS"
	HeaderValueCORSHeaders = "Content-Type, X-API-Key"
)

// Limits
const (
	MaxRequestBytes   = 1 << 20
	ReadHeaderTimeout = 5 * time.Second

	// Per IP, per detector window. A player polling every 500ms spends 600 of the
	// poll budget per window.
	RateLimitRequests     = 1000
	PollRateLimitRequests = 3000
	RateLimitWindow       = 5 * time.Minute
	MaxTrackedIPs         = 10000
	FailedAuthAlertAt     = 5
)

const (
	PathRollsState  = "/api/rolls/state"
	PathRollsStream = "/api/rolls/stream"
	PathSwagger     = "/swagger/"
	PathHealthz     = "/healthz"
	PathReadyz      = "/readyz"
	PathMetrics     = "/metrics"
)

// RedactedValue replaces secret header values in logs
const RedactedValue = "[REDACTED]"
