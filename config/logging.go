package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// InitLogging points the default slog logger at a rotated log file in the
// data directory. Log output never reaches the terminal, which belongs to
// the timer display.
func InitLogging() error {
	if err := os.MkdirAll(filepath.Dir(logFilePath), 0o755); err != nil {
		return err
	}

	writer := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
	}

	level := slog.LevelInfo
	if os.Getenv("PULSE_DEBUG") != "" {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))

	return nil
}
