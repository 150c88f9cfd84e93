package event

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"

	"github.com/osse101/giftroll/internal/logger"
)

// DeadLetterSchemaVersion is the version of the dead-letter line format
const DeadLetterSchemaVersion = "1.1"

// DeadLetterWriter appends events that exhausted their retries to a JSON lines file.
// A settlement or deposit that lands here was applied to the database but never
// reached the stream or the admin chat, so each line keeps enough to follow it up.
type DeadLetterWriter struct {
	mu  sync.Mutex
	w   io.Writer
	c   io.Closer
	now func() time.Time
}

// DeadLetterEntry is one line of the dead-letter file
type DeadLetterEntry struct {
	SchemaVersion string    `json:"schema_version"`
	Timestamp     time.Time `json:"timestamp"`
	Event         Event     `json:"event"`
	TelegramID    int64     `json:"telegram_id,omitempty"`
	Attempts      int       `json:"attempts"`
	LastError     string    `json:"last_error,omitempty"`
}

// NewDeadLetterWriter opens path for appending
func NewDeadLetterWriter(path string) (*DeadLetterWriter, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DeadLetterFilePermissions)
	if err != nil {
		return nil, err
	}
	return &DeadLetterWriter{w: f, c: f, now: time.Now}, nil
}

// Write records a failed event
func (dlw *DeadLetterWriter) Write(event Event, attempts int, lastError error) error {
	entry := DeadLetterEntry{
		SchemaVersion: DeadLetterSchemaVersion,
		Timestamp:     dlw.now(),
		Event:         event,
		TelegramID:    playerOf(event),
		Attempts:      attempts,
	}
	if lastError != nil {
		entry.LastError = lastError.Error()
	}
	logger.Warn(LogMsgEventDeadLettered,
		"event_type", event.Type,
		"telegram_id", entry.TelegramID,
		"attempts", attempts,
		"error", entry.LastError)

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	dlw.mu.Lock()
	defer dlw.mu.Unlock()
	_, err = dlw.w.Write(append(data, '\n'))
	return err
}

// Close closes the dead-letter file
func (dlw *DeadLetterWriter) Close() error {
	if dlw.c == nil {
		return nil
	}
	return dlw.c.Close()
}

// ReadDeadLetters parses a dead-letter file. Lines that do not decode are skipped
// and counted so a truncated final line does not hide the rest.
func ReadDeadLetters(r io.Reader) ([]DeadLetterEntry, int, error) {
	var (
		entries []DeadLetterEntry
		skipped int
	)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxDeadLetterLine)
	for scanner.Scan() {
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var entry DeadLetterEntry
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			skipped++
			continue
		}
		entries = append(entries, entry)
	}
	return entries, skipped, scanner.Err()
}

// playerOf returns the telegram id of player-scoped payloads, zero for round events
func playerOf(evt Event) int64 {
	scoped, err := DecodePayload[struct {
		TelegramID int64 `json:"telegram_id"`
	}](evt.Payload)
	if err != nil {
		return 0
	}
	return scoped.TelegramID
}
