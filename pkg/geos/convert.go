package geos

import (
	"github.com/cockroachdb/errors"
	geom "github.com/twpayne/go-geom"

	"github.com/spatialkit/geos-go/pkg/geos/internal/backend"
)

// Conversion between go-geom values and engine handles. Encoding transfers
// flat coordinate buffers into engine coordinate sequences; the sequence and
// child handles are consumed by the engine constructors on every outcome, so
// rollback only ever applies to handles not yet handed over. Decoding walks
// borrowed child handles of a single owned root and never destroys anything.

// minimum coordinate counts per kind; violations decode to ErrTooFewPoints.
const (
	minLinePoints = 2
	minRingPoints = 4
)

// layoutHasZ maps a go-geom layout onto the engine's Z flag. Only XY and XYZ
// cross the boundary; measures have no engine representation.
func layoutHasZ(l geom.Layout) (bool, error) {
	switch l {
	case geom.NoLayout, geom.XY:
		return false, nil
	case geom.XYZ:
		return true, nil
	default:
		return false, errors.Wrapf(ErrUnsupportedLayout, "layout %v", l)
	}
}

func layoutForZ(hasZ bool) geom.Layout {
	if hasZ {
		return geom.XYZ
	}
	return geom.XY
}

// toNative converts g into an owned engine geometry under ctx. The caller
// must destroy the result on every path.
func toNative(ctx *execContext, g geom.T) (*nativeGeom, error) {
	if g == nil {
		return nil, ErrNilGeometry
	}
	hasZ, err := layoutHasZ(g.Layout())
	if err != nil {
		return nil, err
	}
	raw, err := encodeGeom(ctx, g, hasZ)
	if err != nil {
		return nil, err
	}
	return newNativeGeom(ctx, raw), nil
}

func encodeGeom(ctx *execContext, g geom.T, hasZ bool) (backend.Geom, error) {
	switch t := g.(type) {
	case *geom.Point:
		return encodePoint(ctx, t, hasZ)
	case *geom.LineString:
		return encodeLineString(ctx, t, hasZ)
	case *geom.LinearRing:
		return encodeRing(ctx, t.FlatCoords(), hasZ)
	case *geom.Polygon:
		return encodePolygon(ctx, t, hasZ)
	case *geom.MultiPoint:
		return encodeMultiPoint(ctx, t, hasZ)
	case *geom.MultiLineString:
		return encodeMultiLineString(ctx, t, hasZ)
	case *geom.MultiPolygon:
		return encodeMultiPolygon(ctx, t, hasZ)
	case *geom.GeometryCollection:
		return encodeCollection(ctx, t, hasZ)
	default:
		return nil, errors.AssertionFailedf("unhandled geometry type %T", g)
	}
}

// encodeSeq transfers count coordinates of interleaved ordinates into an
// engine sequence. count must be positive.
func encodeSeq(ctx *execContext, flat []float64, count int, hasZ bool) (backend.CoordSeq, error) {
	s := backend.CoordSeqFromBuffer(ctx.handle, flat, count, hasZ, false)
	if s == nil {
		return nil, ctx.err()
	}
	return s, nil
}

func encodePoint(ctx *execContext, p *geom.Point, hasZ bool) (backend.Geom, error) {
	if p.Empty() {
		return checkCreated(ctx, backend.CreateEmptyPoint(ctx.handle))
	}
	s, err := encodeSeq(ctx, p.FlatCoords(), 1, hasZ)
	if err != nil {
		return nil, err
	}
	return checkCreated(ctx, backend.CreatePoint(ctx.handle, s))
}

func encodeLineString(ctx *execContext, l *geom.LineString, hasZ bool) (backend.Geom, error) {
	if l.Empty() {
		return checkCreated(ctx, backend.CreateEmptyLineString(ctx.handle))
	}
	s, err := encodeSeq(ctx, l.FlatCoords(), l.NumCoords(), hasZ)
	if err != nil {
		return nil, err
	}
	return checkCreated(ctx, backend.CreateLineString(ctx.handle, s))
}

func encodeRing(ctx *execContext, flat []float64, hasZ bool) (backend.Geom, error) {
	stride := 2
	if hasZ {
		stride = 3
	}
	s, err := encodeSeq(ctx, flat, len(flat)/stride, hasZ)
	if err != nil {
		return nil, err
	}
	return checkCreated(ctx, backend.CreateLinearRing(ctx.handle, s))
}

func encodePolygon(ctx *execContext, p *geom.Polygon, hasZ bool) (backend.Geom, error) {
	if p.Empty() || p.NumLinearRings() == 0 {
		return checkCreated(ctx, backend.CreateEmptyPolygon(ctx.handle))
	}
	rings := make([]backend.Geom, 0, p.NumLinearRings())
	for i := 0; i < p.NumLinearRings(); i++ {
		r, err := encodeRing(ctx, p.LinearRing(i).FlatCoords(), hasZ)
		if err != nil {
			destroyAll(ctx, rings)
			return nil, err
		}
		rings = append(rings, r)
	}
	return checkCreated(ctx, backend.CreatePolygon(ctx.handle, rings[0], rings[1:]))
}

func encodeMultiPoint(ctx *execContext, mp *geom.MultiPoint, hasZ bool) (backend.Geom, error) {
	children := make([]backend.Geom, 0, mp.NumPoints())
	for i := 0; i < mp.NumPoints(); i++ {
		c, err := encodePoint(ctx, mp.Point(i), hasZ)
		if err != nil {
			destroyAll(ctx, children)
			return nil, err
		}
		children = append(children, c)
	}
	return encodeCollectionOf(ctx, backend.TypeIDMultiPoint, children)
}

func encodeMultiLineString(ctx *execContext, ml *geom.MultiLineString, hasZ bool) (backend.Geom, error) {
	children := make([]backend.Geom, 0, ml.NumLineStrings())
	for i := 0; i < ml.NumLineStrings(); i++ {
		c, err := encodeLineString(ctx, ml.LineString(i), hasZ)
		if err != nil {
			destroyAll(ctx, children)
			return nil, err
		}
		children = append(children, c)
	}
	return encodeCollectionOf(ctx, backend.TypeIDMultiLineString, children)
}

func encodeMultiPolygon(ctx *execContext, mp *geom.MultiPolygon, hasZ bool) (backend.Geom, error) {
	children := make([]backend.Geom, 0, mp.NumPolygons())
	for i := 0; i < mp.NumPolygons(); i++ {
		c, err := encodePolygon(ctx, mp.Polygon(i), hasZ)
		if err != nil {
			destroyAll(ctx, children)
			return nil, err
		}
		children = append(children, c)
	}
	return encodeCollectionOf(ctx, backend.TypeIDMultiPolygon, children)
}

func encodeCollection(ctx *execContext, gc *geom.GeometryCollection, hasZ bool) (backend.Geom, error) {
	children := make([]backend.Geom, 0, gc.NumGeoms())
	for i := 0; i < gc.NumGeoms(); i++ {
		c, err := encodeGeom(ctx, gc.Geom(i), hasZ)
		if err != nil {
			destroyAll(ctx, children)
			return nil, err
		}
		children = append(children, c)
	}
	return encodeCollectionOf(ctx, backend.TypeIDGeometryCollection, children)
}

func encodeCollectionOf(ctx *execContext, typeID int, children []backend.Geom) (backend.Geom, error) {
	if len(children) == 0 {
		return checkCreated(ctx, backend.CreateEmptyCollection(ctx.handle, typeID))
	}
	return checkCreated(ctx, backend.CreateCollection(ctx.handle, typeID, children))
}

// checkCreated translates a failed constructor into the context's engine
// error. Constructor inputs are consumed either way, so there is nothing to
// roll back here.
func checkCreated(ctx *execContext, g backend.Geom) (backend.Geom, error) {
	if g == nil {
		return nil, ctx.err()
	}
	return g, nil
}

// destroyAll releases raw handles that were assembled but never handed to a
// constructor.
func destroyAll(ctx *execContext, gs []backend.Geom) {
	for _, g := range gs {
		backend.GeomDestroy(ctx.handle, g)
	}
}

// fromNative converts an engine geometry into a go-geom value. The handle
// may be owned or borrowed; it is only read, never destroyed. Degenerate
// results (fewer coordinates than the kind admits) return ErrTooFewPoints.
func fromNative(ctx *execContext, g backend.Geom) (geom.T, error) {
	var hasZ bool
	switch rc := backend.HasZ(ctx.handle, g); rc {
	case 0:
		hasZ = false
	case 1:
		hasZ = true
	default:
		return nil, ctx.err()
	}
	return decodeGeom(ctx, g, layoutForZ(hasZ))
}

func decodeGeom(ctx *execContext, g backend.Geom, layout geom.Layout) (geom.T, error) {
	tid := backend.GeomTypeID(ctx.handle, g)
	switch tid {
	case backend.TypeIDPoint:
		return decodePoint(ctx, g, layout)
	case backend.TypeIDLineString:
		flat, err := decodeLineFlat(ctx, g, layout, minLinePoints)
		if err != nil {
			return nil, err
		}
		return geom.NewLineStringFlat(layout, flat), nil
	case backend.TypeIDLinearRing:
		flat, err := decodeLineFlat(ctx, g, layout, minRingPoints)
		if err != nil {
			return nil, err
		}
		return geom.NewLinearRingFlat(layout, flat), nil
	case backend.TypeIDPolygon:
		flat, ends, err := decodePolygonFlat(ctx, g, layout)
		if err != nil {
			return nil, err
		}
		return geom.NewPolygonFlat(layout, flat, ends), nil
	case backend.TypeIDMultiPoint:
		return decodeMultiPoint(ctx, g, layout)
	case backend.TypeIDMultiLineString:
		return decodeMultiLineString(ctx, g, layout)
	case backend.TypeIDMultiPolygon:
		return decodeMultiPolygon(ctx, g, layout)
	case backend.TypeIDGeometryCollection:
		return decodeCollection(ctx, g, layout)
	case -1:
		return nil, ctx.err()
	default:
		return nil, errors.AssertionFailedf("unknown engine geometry type id %d", tid)
	}
}

// decodeCoords copies the coordinate sequence of a point, linestring or
// linear ring into a fresh flat buffer. Returns (nil, 0) for an empty
// sequence.
func decodeCoords(ctx *execContext, g backend.Geom, layout geom.Layout) ([]float64, int, error) {
	s := backend.GetCoordSeq(ctx.handle, g)
	if s == nil {
		return nil, 0, ctx.err()
	}
	n, ok := backend.CoordSeqSize(ctx.handle, s)
	if ok == 0 {
		return nil, 0, ctx.err()
	}
	if n == 0 {
		return nil, 0, nil
	}
	flat := make([]float64, n*layout.Stride())
	if backend.CoordSeqToBuffer(ctx.handle, s, flat, layout == geom.XYZ, false) == 0 {
		return nil, 0, ctx.err()
	}
	return flat, n, nil
}

func decodePoint(ctx *execContext, g backend.Geom, layout geom.Layout) (*geom.Point, error) {
	switch rc := backend.IsEmpty(ctx.handle, g); rc {
	case 0:
	case 1:
		return nil, ErrTooFewPoints
	default:
		return nil, ctx.err()
	}
	flat, n, err := decodeCoords(ctx, g, layout)
	if err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, ErrTooFewPoints
	}
	return geom.NewPointFlat(layout, flat[:layout.Stride()]), nil
}

func decodeLineFlat(ctx *execContext, g backend.Geom, layout geom.Layout, minPoints int) ([]float64, error) {
	flat, n, err := decodeCoords(ctx, g, layout)
	if err != nil {
		return nil, err
	}
	if n < minPoints {
		return nil, ErrTooFewPoints
	}
	return flat, nil
}

func decodePolygonFlat(ctx *execContext, g backend.Geom, layout geom.Layout) ([]float64, []int, error) {
	shell := backend.ExteriorRing(ctx.handle, g)
	if shell == nil {
		return nil, nil, ctx.err()
	}
	flat, err := decodeLineFlat(ctx, shell, layout, minRingPoints)
	if err != nil {
		return nil, nil, err
	}
	holes := backend.NumInteriorRings(ctx.handle, g)
	if holes < 0 {
		return nil, nil, ctx.err()
	}
	ends := make([]int, 0, holes+1)
	ends = append(ends, len(flat))
	for i := 0; i < holes; i++ {
		ring := backend.InteriorRingN(ctx.handle, g, i)
		if ring == nil {
			return nil, nil, ctx.err()
		}
		rf, err := decodeLineFlat(ctx, ring, layout, minRingPoints)
		if err != nil {
			return nil, nil, err
		}
		flat = append(flat, rf...)
		ends = append(ends, len(flat))
	}
	return flat, ends, nil
}

// childGeoms yields the borrowed child handles of a multi-geometry or
// collection.
func childGeoms(ctx *execContext, g backend.Geom) ([]backend.Geom, error) {
	n := backend.NumGeometries(ctx.handle, g)
	if n < 0 {
		return nil, ctx.err()
	}
	children := make([]backend.Geom, n)
	for i := range children {
		c := backend.GeometryN(ctx.handle, g, i)
		if c == nil {
			return nil, ctx.err()
		}
		children[i] = c
	}
	return children, nil
}

func decodeMultiPoint(ctx *execContext, g backend.Geom, layout geom.Layout) (*geom.MultiPoint, error) {
	children, err := childGeoms(ctx, g)
	if err != nil {
		return nil, err
	}
	flat := make([]float64, 0, len(children)*layout.Stride())
	for _, c := range children {
		p, err := decodePoint(ctx, c, layout)
		if err != nil {
			return nil, err
		}
		flat = append(flat, p.FlatCoords()...)
	}
	return geom.NewMultiPointFlat(layout, flat), nil
}

func decodeMultiLineString(ctx *execContext, g backend.Geom, layout geom.Layout) (*geom.MultiLineString, error) {
	children, err := childGeoms(ctx, g)
	if err != nil {
		return nil, err
	}
	var flat []float64
	ends := make([]int, 0, len(children))
	for _, c := range children {
		lf, err := decodeLineFlat(ctx, c, layout, minLinePoints)
		if err != nil {
			return nil, err
		}
		flat = append(flat, lf...)
		ends = append(ends, len(flat))
	}
	return geom.NewMultiLineStringFlat(layout, flat, ends), nil
}

func decodeMultiPolygon(ctx *execContext, g backend.Geom, layout geom.Layout) (*geom.MultiPolygon, error) {
	children, err := childGeoms(ctx, g)
	if err != nil {
		return nil, err
	}
	var flat []float64
	endss := make([][]int, 0, len(children))
	for _, c := range children {
		pf, pends, err := decodePolygonFlat(ctx, c, layout)
		if err != nil {
			return nil, err
		}
		base := len(flat)
		flat = append(flat, pf...)
		shifted := make([]int, len(pends))
		for i, e := range pends {
			shifted[i] = base + e
		}
		endss = append(endss, shifted)
	}
	return geom.NewMultiPolygonFlat(layout, flat, endss), nil
}

func decodeCollection(ctx *execContext, g backend.Geom, layout geom.Layout) (*geom.GeometryCollection, error) {
	children, err := childGeoms(ctx, g)
	if err != nil {
		return nil, err
	}
	gc := geom.NewGeometryCollection()
	for _, c := range children {
		t, err := decodeGeom(ctx, c, layout)
		if err != nil {
			return nil, err
		}
		if err := gc.Push(t); err != nil {
			return nil, errors.Wrap(err, "assembling geometry collection")
		}
	}
	return gc, nil
}
