package logger

import (
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(slog.New(slog.NewTextHandler(os.Stderr, nil)))
}

// Init configures the package logger for an environment. Development gets
// human-readable text at debug level, everything else JSON at info level.
func Init(env string) {
	SetOutput(os.Stderr, env)
}

// SetOutput is Init with an explicit destination.
func SetOutput(w io.Writer, env string) {
	var h slog.Handler
	switch env {
	case "development", "local", "":
		h = slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	default:
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	l := slog.New(h)
	current.Store(l)
	slog.SetDefault(l)
}

func L() *slog.Logger {
	return current.Load()
}

func Debug(msg string, args ...any) {
	L().Debug(msg, normalize(args)...)
}

func Info(msg string, args ...any) {
	L().Info(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	L().Warn(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	L().Error(msg, normalize(args)...)
}

// Fatal logs at error level and exits.
func Fatal(msg string, args ...any) {
	L().Error(msg, normalize(args)...)
	os.Exit(1)
}

// normalize lets callers pass a bare error as the only argument.
func normalize(args []any) []any {
	if len(args) == 1 {
		if err, ok := args[0].(error); ok {
			return []any{"error", err}
		}
	}
	return args
}
