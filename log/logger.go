// Package log is the process-wide structured logger.
// While the terminal is owned by the renderer, output must be redirected with SetFileOutput.
package log

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

// Logger pairs a slog logger with the file it writes to
type Logger struct {
	logger *slog.Logger
	file   *os.File // nil when not owned
}

var (
	mu           sync.RWMutex
	globalLogger *Logger
)

func init() {
	globalLogger = &Logger{logger: newLogger(os.Stdout)}
}

func newLogger(w io.Writer) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   slog.TimeKey,
					Value: slog.StringValue(a.Value.Time().Format("2006/01/02 15:04:05.000000")),
				}
			}
			return a
		},
	})
	return slog.New(handler)
}

// NewLogger creates a logger appending to the named file
func NewLogger(filename string) (*Logger, error) {
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return &Logger{logger: newLogger(file), file: file}, nil
}

// SetFileOutput redirects the global logger to the named file
func SetFileOutput(filename string) error {
	l, err := NewLogger(filename)
	if err != nil {
		return err
	}
	swap(l)
	return nil
}

// SetOutput redirects the global logger to w; the caller keeps ownership of w
func SetOutput(w io.Writer) {
	swap(&Logger{logger: newLogger(w)})
}

func swap(l *Logger) {
	mu.Lock()
	old := globalLogger
	globalLogger = l
	mu.Unlock()

	if old != nil && old.file != nil {
		old.file.Close()
	}
}

func current() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return globalLogger.logger
}

func Debug(msg string, args ...any) { current().Debug(msg, args...) }

func Info(msg string, args ...any) { current().Info(msg, args...) }

func Warn(msg string, args ...any) { current().Warn(msg, args...) }

func Error(msg string, args ...any) { current().Error(msg, args...) }

// Close closes the log file, if any, and falls back to discarding output
func Close() {
	SetOutput(io.Discard)
}
