// Package telegram sends Bot API messages and turns wallet events into notifications.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/osse101/giftroll/internal/logger"
)

// ErrDisabled is returned when the client has no bot token
var ErrDisabled = errors.New("telegram client disabled")

// APIError is a non-retryable Bot API rejection
type APIError struct {
	StatusCode  int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram API error %d: %s", e.StatusCode, e.Description)
}

// Client calls the Telegram Bot API
type Client struct {
	BaseURL    string
	Token      string
	HTTP       *http.Client
	MaxRetries int
	RetryDelay time.Duration
}

// NewClient creates a Bot API client. An empty token yields a client whose sends fail with ErrDisabled.
func NewClient(token string) *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		Token:      token,
		HTTP:       &http.Client{Timeout: DefaultTimeout},
		MaxRetries: DefaultMaxRetries,
		RetryDelay: DefaultRetryDelay,
	}
}

// Enabled reports whether the client has a token
func (c *Client) Enabled() bool {
	return c != nil && c.Token != ""
}

type sendMessageRequest struct {
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// SendMessage posts text to a chat, retrying transport failures and 5xx responses
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	if !c.Enabled() {
		return ErrDisabled
	}
	body, err := json.Marshal(sendMessageRequest{ChatID: chatID, Text: text})
	if err != nil {
		return fmt.Errorf("failed to marshal body: %w", err)
	}
	return c.do(ctx, sendMessageMethod, body)
}

func (c *Client) do(ctx context.Context, method string, body []byte) error {
	url := fmt.Sprintf("%s/bot%s/%s", c.BaseURL, c.Token, method)
	log := logger.FromContext(ctx)

	var lastErr error
	for attempt := 0; attempt <= c.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := c.RetryDelay*time.Duration(1<<uint(attempt-1)) + rand.N(maxJitter)
			log.Info(LogMsgRetrying, "attempt", attempt, "method", method, "delay", delay)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.HTTP.Do(req)
		if err != nil {
			lastErr = err
			log.Warn(LogMsgRequestFailed, "method", method, "attempt", attempt, "error", err)
			continue
		}

		if resp.StatusCode >= http.StatusInternalServerError {
			resp.Body.Close()
			lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
			log.Warn(LogMsgServerError, "status", resp.StatusCode, "attempt", attempt)
			continue
		}

		var out apiResponse
		decodeErr := json.NewDecoder(resp.Body).Decode(&out)
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK || decodeErr != nil || !out.OK {
			return &APIError{StatusCode: resp.StatusCode, Description: out.Description}
		}
		return nil
	}

	return fmt.Errorf("max retries exceeded: %w", lastErr)
}
