package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/osse101/giftroll/internal/domain"
	"github.com/osse101/giftroll/internal/logger"
)

// ErrorResponse is the {error} body every failed call returns
type ErrorResponse struct {
	Error string `json:"error"`
}

// encodeBuffers holds response buffers between requests. The state poll runs twice a
// second per player, so its body is encoded into a recycled buffer.
var encodeBuffers = sync.Pool{
	New: func() any { return bytes.NewBuffer(make([]byte, 0, responseBufferSize)) },
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := encodeBuffers.Get().(*bytes.Buffer)
	defer func() {
		// one large history or leaderboard body should not pin its buffer forever
		if buf.Cap() <= maxPooledResponseBuffer {
			buf.Reset()
			encodeBuffers.Put(buf)
		}
	}()

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped user message
func respondServiceError(w http.ResponseWriter, r *http.Request, action string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(action+" failed", "error", err)
	} else {
		log.Debug(action+" rejected", "error", err)
	}
	respondError(w, status, msg)
}

// userErrors are domain errors whose text is safe to show the player verbatim
var userErrors = []struct {
	err    error
	status int
}{
	{domain.ErrUserNotFound, http.StatusNotFound},
	{domain.ErrItemNotFound, http.StatusNotFound},
	{domain.ErrDepositNotFound, http.StatusNotFound},
	{domain.ErrWithdrawalNotFound, http.StatusNotFound},
	{domain.ErrCasesLocked, http.StatusForbidden},
	{domain.ErrFreeCaseCooldown, http.StatusTooManyRequests},
	{domain.ErrRoundNotAvailable, http.StatusServiceUnavailable},
	{domain.ErrInsufficientBalance, http.StatusBadRequest},
	{domain.ErrInvalidAmount, http.StatusBadRequest},
	{domain.ErrInvalidColor, http.StatusBadRequest},
	{domain.ErrBettingClosed, http.StatusBadRequest},
	{domain.ErrBetAlreadyPlaced, http.StatusBadRequest},
	{domain.ErrInvalidMultiplier, http.StatusBadRequest},
	{domain.ErrUnknownCase, http.StatusBadRequest},
	{domain.ErrDepositNotPending, http.StatusBadRequest},
	{domain.ErrBelowMinWithdrawal, http.StatusBadRequest},
	{domain.ErrWalletRequired, http.StatusBadRequest},
	{domain.ErrWithdrawalProcessed, http.StatusBadRequest},
	{domain.ErrInvalidStars, http.StatusBadRequest},
	{domain.ErrBelowMinReferral, http.StatusBadRequest},
	{domain.ErrInvalidInput, http.StatusBadRequest},
}

// mapServiceErrorToUserMessage maps domain errors to an HTTP status and the message shown to the player.
// Anything unrecognised is a 500 with a generic message.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
	for _, ue := range userErrors {
		if errors.Is(err, ue.err) {
			return ue.status, ue.err.Error()
		}
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
