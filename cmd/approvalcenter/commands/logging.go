package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/MEKXH/approvalcenter/internal/config"
)

var (
	logMu   sync.Mutex
	logFile *os.File
)

// configureLogger installs the default slog logger. In TUI mode logs are
// dropped unless log.file is set, so they never draw over the screen.
func configureLogger(cfg *config.Config, overrideLevel string, tuiMode bool) error {
	level, err := parseLogLevel(cfg.Log.Level, overrideLevel)
	if err != nil {
		return err
	}

	path, err := expandLogPath(cfg.Log.File)
	if err != nil {
		return err
	}

	logMu.Lock()
	defer logMu.Unlock()

	if logFile != nil && logFile.Name() != path {
		_ = logFile.Close()
		logFile = nil
	}

	var writer io.Writer
	switch {
	case path != "":
		if logFile == nil {
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return fmt.Errorf("create log directory: %w", err)
			}
			f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			logFile = f
		}
		writer = logFile
	case tuiMode:
		writer = io.Discard
	default:
		writer = os.Stderr
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	return nil
}

func expandLogPath(raw string) (string, error) {
	path := strings.TrimSpace(raw)
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home for log file: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], string(filepath.Separator))), nil
}

func parseLogLevel(configLevel, override string) (slog.Level, error) {
	level := strings.TrimSpace(configLevel)
	if o := strings.TrimSpace(override); o != "" {
		level = o
	}
	switch strings.ToLower(level) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s", level)
	}
}
