package engine

import (
	"log/slog"
	"os"
)

// NewFileLogger opens a structured text log sink at path for use with
// WithLogger. While a session is active the terminal is the UI; logs
// must land in a file, never on stdout or stderr. The returned close
// function releases the file.
func NewFileLogger(path string, level slog.Level) (*slog.Logger, func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, E(Op("engine.NewFileLogger"), KindOther, err)
	}
	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})
	return slog.New(handler), f.Close, nil
}
