package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/osse101/giftroll/internal/config"
	"github.com/osse101/giftroll/internal/logger"
)

// SetupLogger installs the default logger. Output goes to stdout and, when cfg.LogDir is
// usable, to a new session file there. A non-nil error means the file could not be set up
// and the logger writes to stdout only. The returned closer is always safe to call.
func SetupLogger(cfg *config.Config) (io.Closer, error) {
	logCfg := loggerConfig(cfg)

	logFile, name, err := openSessionLog(cfg.LogDir, time.Now())
	if err != nil {
		logger.InitLoggerWithWriter(logCfg, os.Stdout)
		return io.NopCloser(nil), err
	}
	logger.InitLoggerWithWriter(logCfg, io.MultiWriter(os.Stdout, logFile))

	slog.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel(), "file", name)
	slog.Info(LogMsgStartingGiftRoll,
		"environment", cfg.Environment,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)
	slog.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_name", cfg.DBName,
		"port", cfg.Port,
		"round_duration", cfg.RollsRoundDuration,
		"bet_cutoff", cfg.RollsBetCutoff)

	return logFile, nil
}

// InitFallbackLogger installs a stdout text logger at the default level, for failures
// that happen before the configuration is available.
func InitFallbackLogger() {
	logger.InitLogger(logger.NewConfig(config.DefaultLogLevel, config.DefaultLogFormat, config.DefaultServiceName, "", "", false))
}

func loggerConfig(cfg *config.Config) logger.Config {
	addSource := cfg.Environment == config.EnvironmentDev
	return logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment, addSource)
}

func openSessionLog(dir string, now time.Time) (*os.File, string, error) {
	if err := os.MkdirAll(dir, DirPermission); err != nil {
		return nil, "", fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
	}
	pruneSessionLogs(dir, LogFileRetentionCount)

	name := fmt.Sprintf(LogFileNamePattern, now.Format(LogFileTimestampFormat))
	f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
	}
	return f, name, nil
}

// pruneSessionLogs removes the oldest session logs so at most keep remain.
// Timestamped names sort chronologically.
func pruneSessionLogs(dir string, keep int) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), LogFilePrefix) && strings.HasSuffix(e.Name(), LogFileExtension) {
			names = append(names, e.Name())
		}
	}
	if len(names) <= keep {
		return
	}
	slices.Sort(names)

	for _, old := range names[:len(names)-keep] {
		if err := os.Remove(filepath.Join(dir, old)); err != nil {
			slog.Warn(LogMsgFailedDeleteOldLog, "file", old, "error", err)
		}
	}
}
