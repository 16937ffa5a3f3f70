// Package logging builds the slog handlers used by the CLI and by each run.
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Options selects the level and output format of a handler.
type Options struct {
	Level  slog.Level
	Format string // "text" or "json"
}

// NewHandler returns a text or JSON handler writing to w.
func NewHandler(w io.Writer, opts Options) slog.Handler {
	hopts := &slog.HandlerOptions{
		Level: opts.Level,
	}
	if opts.Format == "json" {
		return slog.NewJSONHandler(w, hopts)
	}
	return slog.NewTextHandler(w, hopts)
}

// New returns a logger writing to w.
func New(w io.Writer, opts Options) *slog.Logger {
	return slog.New(NewHandler(w, opts))
}

// Run is the logger of one analysis run. It carries a fresh run_id and, when
// a log file was requested, also writes every record to that file.
type Run struct {
	Logger *slog.Logger
	ID     string
	Path   string
	file   *os.File
}

// StartRun derives a run logger from base. When logPath is non-empty the
// file is created (with its parent directory) and receives the same records
// as base.
func StartRun(base *slog.Logger, opts Options, logPath, source string) (*Run, error) {
	if base == nil {
		base = slog.Default()
	}
	run := &Run{ID: uuid.NewString()}

	handler := base.Handler()
	if logPath != "" {
		if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open run log: %w", err)
		}
		run.file = f
		run.Path = logPath
		handler = Fanout(handler, NewHandler(f, opts))
	}

	run.Logger = slog.New(handler).With("run_id", run.ID, "source", source)
	return run, nil
}

// Close flushes and closes the run's log file, if any.
func (r *Run) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// fanout dispatches each record to every handler that accepts its level.
type fanout []slog.Handler

// Fanout returns a handler that forwards records to all of hs.
func Fanout(hs ...slog.Handler) slog.Handler {
	return fanout(hs)
}

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range f {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}
