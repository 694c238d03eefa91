// Package log wraps log/slog with the handler setup used by the searxng-mcp
// CLI: warnings to stderr by default, everything to stderr with --verbose,
// and an optional JSONL debug file that always records every level.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
)

var (
	logger     *slog.Logger
	fileWriter *FileWriter
)

// Options configures the logger.
type Options struct {
	// Verbose lowers the stderr level from Warn to Debug.
	Verbose bool
	// JSONFormat switches stderr output from text to JSON.
	JSONFormat bool
	// DebugDir enables the JSONL debug file when non-empty.
	DebugDir string
	// RetentionDays removes debug files older than this many days (0 keeps all).
	RetentionDays int
	// Stderr overrides os.Stderr.
	Stderr io.Writer
}

// Init replaces the global logger according to opts.
func Init(opts Options) error {
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	stderrOpts := &slog.HandlerOptions{Level: level}

	handlers := make([]slog.Handler, 0, 2)
	if opts.JSONFormat {
		handlers = append(handlers, slog.NewJSONHandler(stderr, stderrOpts))
	} else {
		handlers = append(handlers, slog.NewTextHandler(stderr, stderrOpts))
	}

	if opts.DebugDir != "" {
		if opts.RetentionDays > 0 {
			Cleanup(opts.DebugDir, opts.RetentionDays)
		}
		fw, err := NewFileWriter(opts.DebugDir)
		if err != nil {
			return err
		}
		Close()
		fileWriter = fw
		handlers = append(handlers, slog.NewJSONHandler(fw, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	setLogger(slog.New(fanout(handlers)))
	return nil
}

// Close closes the debug file, if any.
func Close() {
	if fileWriter != nil {
		fileWriter.Close()
		fileWriter = nil
	}
}

// SetOutput sends all levels to w as text (for testing).
func SetOutput(w io.Writer) {
	setLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})))
}

// SetCommand tags subsequent records with the CLI command being run.
func SetCommand(name string) {
	setLogger(logger.With(slog.String("command", name)))
}

func setLogger(l *slog.Logger) {
	logger = l
	slog.SetDefault(l)
}

// fanout sends each record to every handler that accepts its level.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range f {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			return err
		}
	}
	return nil
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

// Debug logs at debug level.
func Debug(msg string, args ...any) { logger.Debug(msg, args...) }

// Info logs at info level.
func Info(msg string, args ...any) { logger.Info(msg, args...) }

// Warn logs at warn level.
func Warn(msg string, args ...any) { logger.Warn(msg, args...) }

// Error logs at error level.
func Error(msg string, args ...any) { logger.Error(msg, args...) }

// With returns a logger carrying args on every record.
func With(args ...any) *slog.Logger { return logger.With(args...) }

func init() {
	logger = slog.Default()
}
