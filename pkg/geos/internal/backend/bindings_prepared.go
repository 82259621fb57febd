//go:build cgo && !windows

package backend

/*
#include <stdlib.h>
#include <geos_c.h>
*/
import "C"

// PreparedGeom is a type alias for *C.GEOSPreparedGeometry, an index-backed
// acceleration of one base geometry. The prepared object references the base
// geometry it was built from without owning it: the base must stay alive
// until the prepared object is destroyed, and both must be released
// separately.
type PreparedGeom = *C.GEOSPreparedGeometry

// Prepare builds a prepared geometry over g, or nil on engine failure.
func Prepare(ctx Context, g Geom) PreparedGeom {
	return C.GEOSPrepare_r(ctx, g)
}

// PreparedDestroy releases a prepared geometry. Safe to call with nil. The
// base geometry is not touched.
func PreparedDestroy(ctx Context, p PreparedGeom) {
	if p != nil {
		C.GEOSPreparedGeom_destroy_r(ctx, p)
	}
}

// Prepared predicates, tri-state like their plain counterparts.

func PreparedContains(ctx Context, p PreparedGeom, g Geom) int {
	return int(C.GEOSPreparedContains_r(ctx, p, g))
}

func PreparedContainsProperly(ctx Context, p PreparedGeom, g Geom) int {
	return int(C.GEOSPreparedContainsProperly_r(ctx, p, g))
}

func PreparedCoveredBy(ctx Context, p PreparedGeom, g Geom) int {
	return int(C.GEOSPreparedCoveredBy_r(ctx, p, g))
}

func PreparedCovers(ctx Context, p PreparedGeom, g Geom) int {
	return int(C.GEOSPreparedCovers_r(ctx, p, g))
}

func PreparedCrosses(ctx Context, p PreparedGeom, g Geom) int {
	return int(C.GEOSPreparedCrosses_r(ctx, p, g))
}

func PreparedDisjoint(ctx Context, p PreparedGeom, g Geom) int {
	return int(C.GEOSPreparedDisjoint_r(ctx, p, g))
}

func PreparedIntersects(ctx Context, p PreparedGeom, g Geom) int {
	return int(C.GEOSPreparedIntersects_r(ctx, p, g))
}

func PreparedOverlaps(ctx Context, p PreparedGeom, g Geom) int {
	return int(C.GEOSPreparedOverlaps_r(ctx, p, g))
}

func PreparedTouches(ctx Context, p PreparedGeom, g Geom) int {
	return int(C.GEOSPreparedTouches_r(ctx, p, g))
}

func PreparedWithin(ctx Context, p PreparedGeom, g Geom) int {
	return int(C.GEOSPreparedWithin_r(ctx, p, g))
}
