package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/giftroll/internal/config"
)

func TestOpenSessionLog(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	now := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	f, name, err := openSessionLog(dir, now)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	assert.Equal(t, "session_2026-03-04_05-06-07.log", name)
	assert.FileExists(t, filepath.Join(dir, name))
}

func TestPruneSessionLogs(t *testing.T) {
	dir := t.TempDir()
	for i := 1; i <= 5; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2026-01-0%d_00-00-00", i))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.log"), nil, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o600))

	pruneSessionLogs(dir, 2)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{
		"session_2026-01-04_00-00-00.log",
		"session_2026-01-05_00-00-00.log",
		"other.log",
		"notes.txt",
	}, names)
}

func TestLoadCaseCatalog(t *testing.T) {
	t.Run("embedded", func(t *testing.T) {
		catalog, err := LoadCaseCatalog(&config.Config{})
		require.NoError(t, err)
		assert.NotEmpty(t, catalog.List())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCaseCatalog(&config.Config{CaseCatalogPath: filepath.Join(t.TempDir(), "nope.json")})
		assert.ErrorContains(t, err, ErrMsgFailedLoadCatalog)
	})

	t.Run("schema violation", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cases.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"cases": "nope"}`), 0o600))

		_, err := LoadCaseCatalog(&config.Config{CaseCatalogPath: path})
		assert.ErrorContains(t, err, ErrMsgFailedLoadCatalog)
	})
}

func TestInitializeEventSystem_CreatesDeadLetterDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events", "deadletter.jsonl")
	cfg := &config.Config{
		EventMaxRetries:     1,
		EventRetryDelay:     time.Millisecond,
		EventDeadLetterPath: path,
	}

	bus, publisher, err := InitializeEventSystem(cfg)
	require.NoError(t, err)
	require.NotNil(t, bus)
	t.Cleanup(func() { _ = publisher.Shutdown(context.Background()) })

	assert.DirExists(t, filepath.Dir(path))
}
