package sse

import "time"

const (
	// ClientEventBuffer is how many undelivered events a client may lag behind
	ClientEventBuffer = 50

	// ReplayBufferSize is how many recent events a reconnecting client can catch up on
	ReplayBufferSize = 64
)

// Request details
const (
	QueryParamTypes   = "types"
	HeaderLastEventID = "Last-Event-ID"
)

// KeepaliveInterval is how often an idle stream gets a ping
const KeepaliveInterval = 15 * time.Second

// Event types pushed to Mini App clients
const (
	EventTypeConnected    = "connected"
	EventTypeRoundSettled = "rolls.settled"
	EventTypeDeposit      = "deposit.credited"
	EventTypeKeepalive    = "keepalive"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgInvalidPayload     = "Invalid event payload for SSE"
	LogMsgSubscriberReady    = "SSE subscriber registered"
)

// Error messages
const (
	ErrMsgStreamingUnsupported = "streaming unsupported"
	ErrMsgEncodeEvent          = "encode %s event: %w"
)
