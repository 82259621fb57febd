//go:build cgo && !windows

package backend

/*
#include <stdlib.h>
#include <geos_c.h>
*/
import "C"

import "unsafe"

// Every function here passes the engine's raw completion signal through to
// the caller untranslated: tri-state predicates return 0/1/2, scalar
// measures return the engine's 1-ok/0-exception status alongside the value,
// and topology operations return a nil Geom on failure. Classification into
// errors happens one layer up, where the captured context log lives.

// =====================
// Predicates (0 false, 1 true, 2 exception)
// =====================

func IsSimple(ctx Context, g Geom) int { return int(C.GEOSisSimple_r(ctx, g)) }

func IsValid(ctx Context, g Geom) int { return int(C.GEOSisValid_r(ctx, g)) }

func Disjoint(ctx Context, a, b Geom) int { return int(C.GEOSDisjoint_r(ctx, a, b)) }

func Touches(ctx Context, a, b Geom) int { return int(C.GEOSTouches_r(ctx, a, b)) }

func Intersects(ctx Context, a, b Geom) int { return int(C.GEOSIntersects_r(ctx, a, b)) }

func Crosses(ctx Context, a, b Geom) int { return int(C.GEOSCrosses_r(ctx, a, b)) }

func Within(ctx Context, a, b Geom) int { return int(C.GEOSWithin_r(ctx, a, b)) }

func Contains(ctx Context, a, b Geom) int { return int(C.GEOSContains_r(ctx, a, b)) }

func Overlaps(ctx Context, a, b Geom) int { return int(C.GEOSOverlaps_r(ctx, a, b)) }

func Covers(ctx Context, a, b Geom) int { return int(C.GEOSCovers_r(ctx, a, b)) }

func CoveredBy(ctx Context, a, b Geom) int { return int(C.GEOSCoveredBy_r(ctx, a, b)) }

func Equals(ctx Context, a, b Geom) int { return int(C.GEOSEquals_r(ctx, a, b)) }

// RelatePattern matches the DE-9IM intersection matrix of a and b against
// pattern. Tri-state result.
func RelatePattern(ctx Context, a, b Geom, pattern string) int {
	cs := C.CString(pattern)
	defer C.free(unsafe.Pointer(cs))
	return int(C.GEOSRelatePattern_r(ctx, a, b, cs))
}

// Relate computes the full DE-9IM intersection matrix of a and b. Returns
// ("", false) on engine failure.
func Relate(ctx Context, a, b Geom) (string, bool) {
	cs := C.GEOSRelate_r(ctx, a, b)
	if cs == nil {
		return "", false
	}
	matrix := C.GoString(cs)
	C.GEOSFree_r(ctx, unsafe.Pointer(cs))
	return matrix, true
}

// =====================
// Scalar measures (status 1 ok, 0 exception)
// =====================

func Length(ctx Context, g Geom) (float64, int) {
	var out C.double
	rc := C.GEOSLength_r(ctx, g, &out)
	return float64(out), int(rc)
}

func Area(ctx Context, g Geom) (float64, int) {
	var out C.double
	rc := C.GEOSArea_r(ctx, g, &out)
	return float64(out), int(rc)
}

func Distance(ctx Context, a, b Geom) (float64, int) {
	var out C.double
	rc := C.GEOSDistance_r(ctx, a, b, &out)
	return float64(out), int(rc)
}

func HausdorffDistance(ctx Context, a, b Geom) (float64, int) {
	var out C.double
	rc := C.GEOSHausdorffDistance_r(ctx, a, b, &out)
	return float64(out), int(rc)
}

func FrechetDistance(ctx Context, a, b Geom) (float64, int) {
	var out C.double
	rc := C.GEOSFrechetDistance_r(ctx, a, b, &out)
	return float64(out), int(rc)
}

// =====================
// Topology (nil Geom on engine failure)
// =====================

func Envelope(ctx Context, g Geom) Geom { return C.GEOSEnvelope_r(ctx, g) }

func Intersection(ctx Context, a, b Geom) Geom { return C.GEOSIntersection_r(ctx, a, b) }

func Difference(ctx Context, a, b Geom) Geom { return C.GEOSDifference_r(ctx, a, b) }

func SymDifference(ctx Context, a, b Geom) Geom { return C.GEOSSymDifference_r(ctx, a, b) }

func Union(ctx Context, a, b Geom) Geom { return C.GEOSUnion_r(ctx, a, b) }

func UnaryUnion(ctx Context, g Geom) Geom { return C.GEOSUnaryUnion_r(ctx, g) }

func ConvexHull(ctx Context, g Geom) Geom { return C.GEOSConvexHull_r(ctx, g) }

// ConcaveHull computes a concave fit. ratio 0 gives the tightest hull, 1 the
// convex hull.
func ConcaveHull(ctx Context, g Geom, ratio float64, allowHoles bool) Geom {
	return C.GEOSConcaveHull_r(ctx, g, C.double(ratio), C.uint(cBool(allowHoles)))
}

func MinimumRotatedRectangle(ctx Context, g Geom) Geom {
	return C.GEOSMinimumRotatedRectangle_r(ctx, g)
}

func MinimumWidth(ctx Context, g Geom) Geom { return C.GEOSMinimumWidth_r(ctx, g) }

func PointOnSurface(ctx Context, g Geom) Geom { return C.GEOSPointOnSurface_r(ctx, g) }

func Centroid(ctx Context, g Geom) Geom { return C.GEOSGetCentroid_r(ctx, g) }

func Buffer(ctx Context, g Geom, width float64, quadSegs int) Geom {
	return C.GEOSBuffer_r(ctx, g, C.double(width), C.int(quadSegs))
}

func BufferWithStyle(ctx Context, g Geom, width float64, quadSegs, capStyle, joinStyle int, mitreLimit float64) Geom {
	return C.GEOSBufferWithStyle_r(ctx, g,
		C.double(width), C.int(quadSegs), C.int(capStyle), C.int(joinStyle), C.double(mitreLimit))
}

func OffsetCurve(ctx Context, g Geom, width float64, quadSegs, joinStyle int, mitreLimit float64) Geom {
	return C.GEOSOffsetCurve_r(ctx, g,
		C.double(width), C.int(quadSegs), C.int(joinStyle), C.double(mitreLimit))
}

func Simplify(ctx Context, g Geom, tolerance float64) Geom {
	return C.GEOSSimplify_r(ctx, g, C.double(tolerance))
}

func TopologyPreserveSimplify(ctx Context, g Geom, tolerance float64) Geom {
	return C.GEOSTopologyPreserveSimplify_r(ctx, g, C.double(tolerance))
}

func Snap(ctx Context, g, reference Geom, tolerance float64) Geom {
	return C.GEOSSnap_r(ctx, g, reference, C.double(tolerance))
}

func ClipByRect(ctx Context, g Geom, xmin, ymin, xmax, ymax float64) Geom {
	return C.GEOSClipByRect_r(ctx, g,
		C.double(xmin), C.double(ymin), C.double(xmax), C.double(ymax))
}

func LineMerge(ctx Context, g Geom) Geom { return C.GEOSLineMerge_r(ctx, g) }

func LineMergeDirected(ctx Context, g Geom) Geom { return C.GEOSLineMergeDirected_r(ctx, g) }

// Polygonize assembles polygons from the edges of the input geometries. The
// gs slice is only read for the duration of the call.
func Polygonize(ctx Context, gs []Geom) Geom {
	var pp **C.GEOSGeometry
	if len(gs) > 0 {
		pp = (**C.GEOSGeometry)(unsafe.Pointer(&gs[0]))
	}
	return C.GEOSPolygonize_r(ctx, pp, C.uint(len(gs)))
}

// Normalize orders the vertices, rings and components of g in place.
// Returns 0 on success, -1 on engine failure; this is the one entry point
// with a negative failure sentinel.
func Normalize(ctx Context, g Geom) int {
	return int(C.GEOSNormalize_r(ctx, g))
}

// NearestPoints returns a caller-owned two-coordinate sequence holding the
// nearest points of a and b, or nil on engine failure or empty inputs.
func NearestPoints(ctx Context, a, b Geom) CoordSeq {
	return C.GEOSNearestPoints_r(ctx, a, b)
}

// MinimumBoundingCircle computes the smallest enclosing circle of g.
//
// Returns three values straight from the engine:
//   - the circle polygon (nil on engine failure), owned by the caller
//   - the radius
//   - the center point (may be nil even on success), owned by the caller
//
// Both geometry outputs must be destroyed by the caller on every path where
// they are non-nil.
func MinimumBoundingCircle(ctx Context, g Geom) (Geom, float64, Geom) {
	var radius C.double
	var center Geom
	circle := C.GEOSMinimumBoundingCircle_r(ctx, g, &radius, &center)
	return circle, float64(radius), center
}
