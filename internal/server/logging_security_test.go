package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	buf := captureLogs(t)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/users/5", nil)
	req.Header.Set(HeaderAPIKey, "secret-key-123")
	req.Header.Set(HeaderAuthorization, "Bearer mytoken")
	req.Header.Set("User-Agent", "TestAgent")

	loggingMiddleware(okHandler()).ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	require.Contains(t, out, LogMsgRequestHeaders)
	assert.NotContains(t, out, "secret-key-123")
	assert.NotContains(t, out, "Bearer mytoken")
	assert.Contains(t, out, "TestAgent")
	assert.Contains(t, out, "request_id")
}

func TestLoggingMiddleware_SkipsChattyPaths(t *testing.T) {
	for _, path := range []string{"/healthz", "/metrics", PathRollsState} {
		t.Run(path, func(t *testing.T) {
			buf := captureLogs(t)

			rec := httptest.NewRecorder()
			loggingMiddleware(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.NotContains(t, buf.String(), LogMsgRequestStarted)
		})
	}
}

func TestLoggingMiddleware_RecordsStatus(t *testing.T) {
	buf := captureLogs(t)

	teapot := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})
	rec := httptest.NewRecorder()
	loggingMiddleware(teapot).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/leaderboard", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Contains(t, buf.String(), LogMsgRequestCompleted)
	assert.Contains(t, buf.String(), "418")
}

func TestQuietPath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{PathHealthz, true},
		{PathReadyz, true},
		{PathMetrics, true},
		{PathRollsState, true},
		{"/swagger/index.html", true},
		{"/api/rolls/bet", false},
		{"/healthz/extra", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, quietPath(tt.path))
		})
	}
}
