package sse

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Handler streams hub events. ?types=a,b limits the stream to those event types and a
// Last-Event-ID header replays what the client missed while reconnecting.
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, ErrMsgStreamingUnsupported, http.StatusInternalServerError)
			return
		}

		var eventTypes []string
		if filter := r.URL.Query().Get(QueryParamTypes); filter != "" {
			eventTypes = strings.Split(filter, ",")
		}

		client := hub.Register(eventTypes, r.Header.Get(HeaderLastEventID))
		log := slog.With("client_id", client.ID)
		log.Info(LogMsgClientConnected, "filters", eventTypes)
		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected)
		}()

		h := w.Header()
		h.Set("Content-Type", "text/event-stream")
		h.Set("Cache-Control", "no-cache")
		h.Set("Connection", "keep-alive")
		h.Set("X-Accel-Buffering", "no")

		send := func(evt Event) error {
			msg, err := FormatSSEMessage(evt)
			if err != nil {
				log.Error(LogMsgWriteError, "error", err)
				return nil
			}
			if _, err := w.Write(msg); err != nil {
				return err
			}
			flusher.Flush()
			return nil
		}

		hello := Event{
			Type:      EventTypeConnected,
			Timestamp: time.Now().Unix(),
			Payload:   map[string]any{"client_id": client.ID, "filters": eventTypes},
		}
		if err := send(hello); err != nil {
			log.Warn(LogMsgWriteError, "error", err)
			return
		}

		keepalive := time.NewTicker(KeepaliveInterval)
		defer keepalive.Stop()

		for {
			var evt Event
			select {
			case <-r.Context().Done():
				return
			case next, open := <-client.Events:
				if !open {
					return
				}
				evt = next
			case <-keepalive.C:
				evt = Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()}
			}
			if err := send(evt); err != nil {
				log.Warn(LogMsgWriteError, "error", err)
				return
			}
		}
	}
}
