package geos

import (
	geom "github.com/twpayne/go-geom"

	"github.com/spatialkit/geos-go/pkg/geos/internal/backend"
)

// Text and binary exchange through the engine's own readers and writers.
// Parsing and formatting rules are entirely the engine's; this package only
// moves bytes across and owns the intermediate handles.

// FromWKT parses a Well-Known Text string. Text that parses to a degenerate
// geometry, such as "POLYGON EMPTY", reports ErrTooFewPoints.
func FromWKT(wkt string) (geom.T, error) {
	ctx, err := newContext()
	if err != nil {
		return nil, err
	}
	defer ctx.close()

	r := backend.WKTReaderCreate(ctx.handle)
	if r == nil {
		return nil, ctx.err()
	}
	defer backend.WKTReaderDestroy(ctx.handle, r)

	g := backend.WKTReaderRead(ctx.handle, r, wkt)
	if g == nil {
		return nil, ctx.err()
	}
	ng := newNativeGeom(ctx, g)
	defer ng.destroy()

	return fromNative(ctx, ng.geom)
}

// AsWKT formats g as Well-Known Text with trimmed ordinate output.
func AsWKT(g geom.T) (string, error) {
	ctx, err := newContext()
	if err != nil {
		return "", err
	}
	defer ctx.close()

	ng, err := toNative(ctx, g)
	if err != nil {
		return "", err
	}
	defer ng.destroy()

	w := backend.WKTWriterCreate(ctx.handle)
	if w == nil {
		return "", ctx.err()
	}
	defer backend.WKTWriterDestroy(ctx.handle, w)

	wkt, ok := backend.WKTWriterWrite(ctx.handle, w, ng.geom)
	if !ok {
		return "", ctx.err()
	}
	return wkt, nil
}

// FromWKB parses a Well-Known Binary buffer.
func FromWKB(wkb []byte) (geom.T, error) {
	ctx, err := newContext()
	if err != nil {
		return nil, err
	}
	defer ctx.close()

	r := backend.WKBReaderCreate(ctx.handle)
	if r == nil {
		return nil, ctx.err()
	}
	defer backend.WKBReaderDestroy(ctx.handle, r)

	g := backend.WKBReaderRead(ctx.handle, r, wkb)
	if g == nil {
		return nil, ctx.err()
	}
	ng := newNativeGeom(ctx, g)
	defer ng.destroy()

	return fromNative(ctx, ng.geom)
}

// AsWKB formats g as Well-Known Binary in the platform byte order.
func AsWKB(g geom.T) ([]byte, error) {
	ctx, err := newContext()
	if err != nil {
		return nil, err
	}
	defer ctx.close()

	ng, err := toNative(ctx, g)
	if err != nil {
		return nil, err
	}
	defer ng.destroy()

	w := backend.WKBWriterCreate(ctx.handle)
	if w == nil {
		return nil, ctx.err()
	}
	defer backend.WKBWriterDestroy(ctx.handle, w)

	wkb, ok := backend.WKBWriterWrite(ctx.handle, w, ng.geom)
	if !ok {
		return nil, ctx.err()
	}
	return wkb, nil
}
