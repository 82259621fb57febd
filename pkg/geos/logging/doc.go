// Package logging provides a minimal logging facade for the geos wrapper.
//
// This package defines a Logger interface that wraps a subset of the standard
// library's log/slog functionality. The interface is intentionally small to
// allow applications to provide custom implementations for testing or
// integration with existing logging systems.
//
// # Logger Interface
//
// The Logger interface provides context-aware logging methods:
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
// The package provides a default slog-backed implementation:
//
//	import (
//	    "log/slog"
//	    "github.com/spatialkit/geos-go/pkg/geos/logging"
//	)
//
//	// Use default logger (slog.Default())
//	logger := logging.New(nil)
//
//	// Use custom slog.Logger
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	customLogger := logging.New(slog.New(handler))
//
// # Geometry Attributes
//
// Summary builds a compact attribute for a geometry value, naming its kind
// and component count instead of serializing coordinates:
//
//	logger.Info(ctx, "clipped parcel", logging.Summary("result", clipped))
//	// Logs: result="Polygon rings=2"
//
// # Engine Notices
//
// The geos package mirrors native engine notice output to a debug logger
// when one is registered:
//
//	geos.SetDebugLogger(logging.New(nil))
//
// # Custom Implementations
//
// Applications can provide custom Logger implementations:
//
//	type customLogger struct {
//	    // ... your fields
//	}
//
//	func (l *customLogger) Debug(ctx context.Context, msg string, args ...any) {
//	    // Custom debug logic
//	}
//	// ... implement other methods
package logging
