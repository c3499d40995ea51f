// Package logging builds the slog logger used by every command.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// New returns a tint logger writing to w.
func New(w io.Writer, level slog.Level, color bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    !color,
	}))
}

// Discard drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// Setup picks where logs go. The interactive UI owns the terminal, so it logs
// to file when one is given and nowhere otherwise. Plain output logs to
// stderr. The returned close func is never nil.
func Setup(interactive bool, file string, level slog.Level, stderr io.Writer) (*slog.Logger, func() error, error) {
	nop := func() error { return nil }
	if !interactive {
		return New(stderr, level, isTerminal(stderr)), nop, nil
	}
	if file == "" {
		return Discard(), nop, nil
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nop, fmt.Errorf("open log file: %w", err)
	}
	return New(f, level, false), f.Close, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
