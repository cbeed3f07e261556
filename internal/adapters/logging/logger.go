package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/andrescamacho/starfront-go/internal/application/common"
)

// Options selects the handler of a SlogLogger
type Options struct {
	Level         string // debug, info, warn, error
	Format        string // json, text
	Output        string // stdout, stderr, file
	FilePath      string
	IncludeCaller bool
}

// SlogLogger implements common.TurnLogger on top of log/slog
type SlogLogger struct {
	logger *slog.Logger
	closer io.Closer
}

// New opens the configured output and builds the logger
func New(opts Options) (*SlogLogger, error) {
	var (
		out    io.Writer
		closer io.Closer
	)
	switch opts.Output {
	case "", "stdout":
		out = os.Stdout
	case "stderr":
		out = os.Stderr
	case "file":
		f, err := os.OpenFile(opts.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out, closer = f, f
	default:
		return nil, fmt.Errorf("unsupported log output: %s", opts.Output)
	}
	l := NewWithWriter(out, opts)
	l.closer = closer
	return l, nil
}

// NewWithWriter builds a logger that writes to w
func NewWithWriter(w io.Writer, opts Options) *SlogLogger {
	handlerOpts := &slog.HandlerOptions{
		Level:     ParseLevel(opts.Level),
		AddSource: opts.IncludeCaller,
	}
	var handler slog.Handler
	if opts.Format == "text" {
		handler = slog.NewTextHandler(w, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(w, handlerOpts)
	}
	return &SlogLogger{logger: slog.New(handler)}
}

// ParseLevel maps a config or TurnLogger level name to a slog level
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", common.LevelWarn:
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *SlogLogger) Log(level, message string, metadata map[string]interface{}) {
	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]slog.Attr, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, metadata[k]))
	}
	l.logger.LogAttrs(context.Background(), ParseLevel(level), message, attrs...)
}

// Slog exposes the underlying logger
func (l *SlogLogger) Slog() *slog.Logger {
	return l.logger
}

// With returns a logger that adds attrs to every record
func (l *SlogLogger) With(args ...any) *SlogLogger {
	return &SlogLogger{logger: l.logger.With(args...), closer: l.closer}
}

// Close releases the log file, if any
func (l *SlogLogger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
