package logging

import (
	"context"
	"fmt"
	"log/slog"

	geom "github.com/twpayne/go-geom"
)

// Logger defines the subset of slog functionality used by the geos wrapper.
// The interface is intentionally small so applications can provide their own
// implementation for testing or routing policies.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}

// New returns a Logger backed by the provided slog.Logger. Passing nil binds to
// slog.Default().
func New(logger *slog.Logger) Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &slogLogger{logger: logger}
}

type slogLogger struct {
	logger *slog.Logger
}

func (l *slogLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.logger.DebugContext(ctx, msg, args...)
}

func (l *slogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.logger.InfoContext(ctx, msg, args...)
}

func (l *slogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logger.WarnContext(ctx, msg, args...)
}

func (l *slogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logger.ErrorContext(ctx, msg, args...)
}

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{logger: l.logger.With(args...)}
}

// Summary returns an attribute naming the kind and component count of g
// without serializing its coordinates. Callers must avoid logging raw
// coordinate dumps; a large geometry renders to megabytes of text.
func Summary(key string, g geom.T) slog.Attr {
	return slog.String(key, describe(g))
}

func describe(g geom.T) string {
	switch t := g.(type) {
	case nil:
		return "nil"
	case *geom.Point:
		if t.Empty() {
			return "Point empty"
		}
		return "Point"
	case *geom.LineString:
		return fmt.Sprintf("LineString n=%d", t.NumCoords())
	case *geom.LinearRing:
		return fmt.Sprintf("LinearRing n=%d", t.NumCoords())
	case *geom.Polygon:
		return fmt.Sprintf("Polygon rings=%d", t.NumLinearRings())
	case *geom.MultiPoint:
		return fmt.Sprintf("MultiPoint n=%d", t.NumPoints())
	case *geom.MultiLineString:
		return fmt.Sprintf("MultiLineString n=%d", t.NumLineStrings())
	case *geom.MultiPolygon:
		return fmt.Sprintf("MultiPolygon n=%d", t.NumPolygons())
	case *geom.GeometryCollection:
		return fmt.Sprintf("GeometryCollection n=%d", t.NumGeoms())
	default:
		return fmt.Sprintf("%T", g)
	}
}
