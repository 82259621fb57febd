//go:build cgo && !windows

package backend

/*
#include <stdlib.h>
#include <geos_c.h>
*/
import "C"

import "unsafe"

// Geom is a type alias for *C.GEOSGeometry. A non-nil Geom is owned by
// exactly one caller, which must release it with GeomDestroy exactly once,
// under the context it was created with. Child handles returned by the
// accessor functions (ExteriorRing, InteriorRingN, GeometryN) are borrowed
// views into their parent and must NOT be destroyed.
type Geom = *C.GEOSGeometry

// CoordSeq is a type alias for *C.GEOSCoordSequence. Sequences passed to the
// geometry constructors become owned by the resulting geometry; sequences
// returned by NearestPoints are owned by the caller.
type CoordSeq = *C.GEOSCoordSequence

// GeomDestroy releases an owned geometry handle. Safe to call with nil.
func GeomDestroy(ctx Context, g Geom) {
	if g != nil {
		C.GEOSGeom_destroy_r(ctx, g)
	}
}

// GeomClone returns a deep copy of g, or nil on engine failure.
func GeomClone(ctx Context, g Geom) Geom {
	return C.GEOSGeom_clone_r(ctx, g)
}

// GeomTypeID reports the engine type id of g (TypeID* constants), or -1 on
// engine failure.
func GeomTypeID(ctx Context, g Geom) int {
	return int(C.GEOSGeomTypeId_r(ctx, g))
}

// HasZ reports whether g carries Z ordinates: 0 no, 1 yes, 2 engine failure.
func HasZ(ctx Context, g Geom) int {
	return int(C.GEOSHasZ_r(ctx, g))
}

// IsEmpty reports whether g is the empty geometry: 0 no, 1 yes, 2 engine failure.
func IsEmpty(ctx Context, g Geom) int {
	return int(C.GEOSisEmpty_r(ctx, g))
}

// =====================
// Coordinate sequences
// =====================

// CoordSeqFromBuffer builds a coordinate sequence from an interleaved
// ordinate buffer of size coordinates. The buffer stride is 2 plus one for
// each of hasZ/hasM. Returns nil on engine failure. The buffer must stay
// alive for the duration of the call only; the engine copies it.
func CoordSeqFromBuffer(ctx Context, buf []float64, size int, hasZ, hasM bool) CoordSeq {
	if size == 0 || len(buf) == 0 {
		return nil
	}
	return C.GEOSCoordSeq_copyFromBuffer_r(
		ctx,
		(*C.double)(unsafe.Pointer(&buf[0])),
		C.uint(size),
		cBool(hasZ),
		cBool(hasM),
	)
}

// CoordSeqToBuffer copies a coordinate sequence into buf, which must hold
// size*(2+hasZ+hasM) ordinates. Returns 0 on engine failure, 1 on success.
func CoordSeqToBuffer(ctx Context, s CoordSeq, buf []float64, hasZ, hasM bool) int {
	if len(buf) == 0 {
		return 1
	}
	return int(C.GEOSCoordSeq_copyToBuffer_r(
		ctx,
		s,
		(*C.double)(unsafe.Pointer(&buf[0])),
		cBool(hasZ),
		cBool(hasM),
	))
}

// CoordSeqSize reports the number of coordinates in s. Returns the size and
// 1 on success, 0 on engine failure.
func CoordSeqSize(ctx Context, s CoordSeq) (int, int) {
	var n C.uint
	rc := C.GEOSCoordSeq_getSize_r(ctx, s, &n)
	return int(n), int(rc)
}

// CoordSeqDestroy releases a caller-owned coordinate sequence. Safe to call
// with nil. Must not be called on sequences whose ownership has passed to a
// geometry.
func CoordSeqDestroy(ctx Context, s CoordSeq) {
	if s != nil {
		C.GEOSCoordSeq_destroy_r(ctx, s)
	}
}

func cBool(b bool) C.int {
	if b {
		return 1
	}
	return 0
}

// =====================
// Constructors
// =====================
//
// Each constructor consumes its coordinate sequence and child geometries on
// every outcome, success or failure. After a call the caller owns only the
// returned geometry, never the inputs; destroying a consumed input is a
// double free.

// CreatePoint builds a point from a one-coordinate sequence.
func CreatePoint(ctx Context, s CoordSeq) Geom {
	return C.GEOSGeom_createPoint_r(ctx, s)
}

// CreateEmptyPoint builds POINT EMPTY.
func CreateEmptyPoint(ctx Context) Geom {
	return C.GEOSGeom_createEmptyPoint_r(ctx)
}

// CreateLineString builds a linestring from a sequence of at least two
// coordinates.
func CreateLineString(ctx Context, s CoordSeq) Geom {
	return C.GEOSGeom_createLineString_r(ctx, s)
}

// CreateEmptyLineString builds LINESTRING EMPTY.
func CreateEmptyLineString(ctx Context) Geom {
	return C.GEOSGeom_createEmptyLineString_r(ctx)
}

// CreateLinearRing builds a closed ring from a sequence of at least four
// coordinates whose first and last are equal.
func CreateLinearRing(ctx Context, s CoordSeq) Geom {
	return C.GEOSGeom_createLinearRing_r(ctx, s)
}

// CreatePolygon builds a polygon from an exterior shell ring and optional
// hole rings.
func CreatePolygon(ctx Context, shell Geom, holes []Geom) Geom {
	var pp **C.GEOSGeometry
	if len(holes) > 0 {
		pp = (**C.GEOSGeometry)(unsafe.Pointer(&holes[0]))
	}
	return C.GEOSGeom_createPolygon_r(ctx, shell, pp, C.uint(len(holes)))
}

// CreateEmptyPolygon builds POLYGON EMPTY.
func CreateEmptyPolygon(ctx Context) Geom {
	return C.GEOSGeom_createEmptyPolygon_r(ctx)
}

// CreateCollection builds a multi-geometry or collection of the given type
// id from children.
func CreateCollection(ctx Context, typeID int, geoms []Geom) Geom {
	var pp **C.GEOSGeometry
	if len(geoms) > 0 {
		pp = (**C.GEOSGeometry)(unsafe.Pointer(&geoms[0]))
	}
	return C.GEOSGeom_createCollection_r(ctx, C.int(typeID), pp, C.uint(len(geoms)))
}

// CreateEmptyCollection builds an empty multi-geometry or collection of the
// given type id.
func CreateEmptyCollection(ctx Context, typeID int) Geom {
	return C.GEOSGeom_createEmptyCollection_r(ctx, C.int(typeID))
}

// =====================
// Accessors
// =====================

// GetCoordSeq returns a borrowed view of the coordinate sequence of a point,
// linestring or linear ring, or nil on engine failure.
func GetCoordSeq(ctx Context, g Geom) CoordSeq {
	return C.GEOSGeom_getCoordSeq_r(ctx, g)
}

// ExteriorRing returns a borrowed handle to the shell of a polygon, or nil
// on engine failure.
func ExteriorRing(ctx Context, g Geom) Geom {
	return C.GEOSGetExteriorRing_r(ctx, g)
}

// NumInteriorRings reports the hole count of a polygon, or -1 on engine
// failure.
func NumInteriorRings(ctx Context, g Geom) int {
	return int(C.GEOSGetNumInteriorRings_r(ctx, g))
}

// InteriorRingN returns a borrowed handle to hole n of a polygon, or nil on
// engine failure.
func InteriorRingN(ctx Context, g Geom, n int) Geom {
	return C.GEOSGetInteriorRingN_r(ctx, g, C.int(n))
}

// NumGeometries reports the child count of a multi-geometry or collection,
// or -1 on engine failure.
func NumGeometries(ctx Context, g Geom) int {
	return int(C.GEOSGetNumGeometries_r(ctx, g))
}

// GeometryN returns a borrowed handle to child n, or nil on engine failure.
func GeometryN(ctx Context, g Geom, n int) Geom {
	return C.GEOSGetGeometryN_r(ctx, g, C.int(n))
}
