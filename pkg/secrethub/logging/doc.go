// Package logging provides a minimal logging facade for the secrethub client.
//
// The Logger interface wraps the context-aware subset of log/slog:
//
//	type Logger interface {
//	    Debug(ctx context.Context, msg string, args ...any)
//	    Info(ctx context.Context, msg string, args ...any)
//	    Warn(ctx context.Context, msg string, args ...any)
//	    Error(ctx context.Context, msg string, args ...any)
//	    With(args ...any) Logger
//	}
//
// # Default Implementation
//
//	// Use slog.Default()
//	logger := logging.New(nil)
//
//	// Use a custom slog.Logger
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	logger = logging.New(slog.New(handler))
//
//	// Drop everything
//	logger = logging.Discard()
//
// # Redaction
//
// The client never logs secret values. Where a value would be useful for
// context it logs a placeholder instead:
//
//	logger.Debug(ctx, "secret written", "path", path, logging.Redacted("value"))
//	// Logs: value="[redacted]"
//
// Paths and native error messages are logged as-is; they identify secrets
// but do not contain them.
package logging
