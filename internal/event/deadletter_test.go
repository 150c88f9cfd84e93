package event

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeadLetterWriter_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	stamp := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	dlw := &DeadLetterWriter{w: &buf, now: func() time.Time { return stamp }}

	deposit := Event{Version: EventSchemaVersion, Type: DepositCredited, Payload: DepositPayloadV1{
		TelegramID: 99, Amount: decimal.RequireFromString("2.5"),
	}}
	round := Event{Version: EventSchemaVersion, Type: RoundSettled, Payload: RoundSettledPayloadV1{Round: 4}}

	require.NoError(t, dlw.Write(deposit, 3, errors.New("bus closed")))
	require.NoError(t, dlw.Write(round, 1, nil))
	buf.WriteString("{truncated\n")

	entries, skipped, err := ReadDeadLetters(&buf)
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	require.Len(t, entries, 2)

	assert.Equal(t, DepositCredited, entries[0].Event.Type)
	assert.Equal(t, int64(99), entries[0].TelegramID)
	assert.Equal(t, 3, entries[0].Attempts)
	assert.Equal(t, "bus closed", entries[0].LastError)
	assert.True(t, stamp.Equal(entries[0].Timestamp))

	assert.Zero(t, entries[1].TelegramID)
	assert.Empty(t, entries[1].LastError)

	payload, err := DecodePayload[DepositPayloadV1](entries[0].Event.Payload)
	require.NoError(t, err)
	assert.True(t, payload.Amount.Equal(decimal.RequireFromString("2.5")))
}

func TestReadDeadLetters_Empty(t *testing.T) {
	entries, skipped, err := ReadDeadLetters(strings.NewReader("\n\n"))
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Zero(t, skipped)
	assert.NoError(t, (&DeadLetterWriter{}).Close())
}
