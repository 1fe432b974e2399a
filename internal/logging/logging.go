// Package logging configures structured logging for the CLI.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup configures the default slog logger. In debug mode, records are
// written to a size-rotated file under dir; otherwise logging is discarded.
func Setup(dir string, debug bool) error {
	if !debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	writer := &lumberjack.Logger{
		Filename:   filepath.Join(dir, "repofiles.log"),
		MaxSize:    1, // megabytes
		MaxBackups: 2,
		MaxAge:     30, // days
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{Level: slog.LevelDebug})
	slog.SetDefault(slog.New(handler))
	return nil
}
