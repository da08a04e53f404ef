// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// The package offers configurable time formatting, caller information,
// and output formats that are applied at logger creation time using
// functional options.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("session started", slog.String("version", "1.0.0"))
//	logger.Error("eval failed", slog.Any("error", err))
//
// # Configuration
//
// Configure the logger using functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
// # Levels
//
// Five levels are supported: [LevelTrace], [LevelDebug], [LevelInfo],
// [LevelWarn], and [LevelError]. Trace sits below slog's Debug and is
// used for per-token and per-node pipeline diagnostics. Messages below
// the configured level are discarded.
//
// # Zero Value
//
// The zero-value [Logger] discards everything, so library types can
// hold a Logger field and log unconditionally without nil checks.
//
// # Default Logger
//
// Package-level functions ([Info], [Error], ...) use a process-wide
// default logger writing to stderr, reconfigured with [Config].
package log
