package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
const (
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidUserID     = "Invalid user id"
	ErrMsgInvalidRequestID  = "Invalid request id"

	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnauthorized       = "Unauthorized"
	ErrMsgDatabaseDown       = "database connection failed"
)

// Health status values
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
)

// Response encoding buffers
const (
	responseBufferSize      = 512
	maxPooledResponseBuffer = 64 << 10
)
