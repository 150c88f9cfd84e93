package sse

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/giftroll/internal/metrics"
)

// Event is one message on the stream. Broadcast events carry an increasing numeric ID
// that clients echo back in Last-Event-ID when they reconnect.
type Event struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
	Payload   any    `json:"payload"`
}

// Client is a connected stream
type Client struct {
	ID     string
	Events chan Event
	// nil means every event type
	filter map[string]bool
}

func (c *Client) wants(eventType string) bool {
	return c.filter == nil || c.filter[eventType]
}

// Hub fans events out to connected clients and keeps the most recent ones for replay
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	seq     uint64
	recent  []Event
	closed  bool
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
		recent:  make([]Event, 0, ReplayBufferSize),
	}
}

// Register adds a client. Empty eventTypes subscribes to everything. When lastEventID
// names an event still held for replay, the events after it are queued first. On a
// stopped hub the returned client's channel is already closed.
func (h *Hub) Register(eventTypes []string, lastEventID string) *Client {
	client := &Client{
		ID:     uuid.NewString(),
		Events: make(chan Event, ClientEventBuffer),
		filter: parseFilter(eventTypes),
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		close(client.Events)
		return client
	}
	for _, evt := range h.missedSince(lastEventID) {
		if !client.wants(evt.Type) {
			continue
		}
		select {
		case client.Events <- evt:
		default:
		}
	}
	h.clients[client.ID] = client
	metrics.StreamClients.Inc()
	return client
}

// Unregister removes a client and closes its channel
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if client, ok := h.clients[clientID]; ok {
		delete(h.clients, clientID)
		close(client.Events)
		metrics.StreamClients.Dec()
	}
}

// Broadcast sends an event to every interested client. Clients with a full buffer miss it.
func (h *Hub) Broadcast(eventType string, payload any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}

	h.seq++
	evt := Event{
		ID:        strconv.FormatUint(h.seq, 10),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}
	if len(h.recent) == ReplayBufferSize {
		copy(h.recent, h.recent[1:])
		h.recent = h.recent[:ReplayBufferSize-1]
	}
	h.recent = append(h.recent, evt)

	for _, client := range h.clients {
		if !client.wants(eventType) {
			continue
		}
		select {
		case client.Events <- evt:
		default:
			metrics.StreamEventsDropped.WithLabelValues(eventType).Inc()
		}
	}
}

// Stop closes every client channel. Later registrations get a closed channel. Safe to call twice.
func (h *Hub) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for id, client := range h.clients {
		close(client.Events)
		delete(h.clients, id)
		metrics.StreamClients.Dec()
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// missedSince returns the held events after lastEventID. Unknown or evicted IDs replay nothing.
func (h *Hub) missedSince(lastEventID string) []Event {
	last, err := strconv.ParseUint(lastEventID, 10, 64)
	if err != nil || len(h.recent) == 0 {
		return nil
	}
	first, _ := strconv.ParseUint(h.recent[0].ID, 10, 64)
	if last+1 < first || last >= h.seq {
		return nil
	}
	return h.recent[last+1-first:]
}

func parseFilter(eventTypes []string) map[string]bool {
	var filter map[string]bool
	for _, t := range eventTypes {
		if t = strings.TrimSpace(t); t == "" {
			continue
		}
		if filter == nil {
			filter = make(map[string]bool)
		}
		filter[t] = true
	}
	return filter
}

// FormatSSEMessage renders "id/event/data" lines followed by a blank line
func FormatSSEMessage(evt Event) ([]byte, error) {
	data, err := json.Marshal(evt)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgEncodeEvent, evt.Type, err)
	}

	var b strings.Builder
	if evt.ID != "" {
		fmt.Fprintf(&b, "id: %s\n", evt.ID)
	}
	fmt.Fprintf(&b, "event: %s\ndata: %s\n\n", evt.Type, data)
	return []byte(b.String()), nil
}
