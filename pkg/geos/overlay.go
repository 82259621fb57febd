package geos

import (
	geom "github.com/twpayne/go-geom"

	"github.com/spatialkit/geos-go/pkg/geos/internal/backend"
)

// Overlay operations. Intersection, Difference and SymmetricDifference can
// collapse to nothing; they return (nil, nil) for that case instead of an
// error. Union never collapses, so its result is always non-nil on success.

// Intersection returns the point set shared by a and b, or (nil, nil) when
// the inputs do not intersect in any dimension the result kind can carry.
func Intersection(a, b geom.T) (geom.T, error) {
	return absorbTooFewPoints(binaryTopology(a, b, backend.Intersection))
}

// Difference returns the point set of a not in b, or (nil, nil) when the
// difference is empty.
func Difference(a, b geom.T) (geom.T, error) {
	return absorbTooFewPoints(binaryTopology(a, b, backend.Difference))
}

// SymmetricDifference returns the point set in exactly one of a and b, or
// (nil, nil) when it is empty.
func SymmetricDifference(a, b geom.T) (geom.T, error) {
	return absorbTooFewPoints(binaryTopology(a, b, backend.SymDifference))
}

// Union returns the combined point set of a and b.
func Union(a, b geom.T) (geom.T, error) {
	return binaryTopology(a, b, backend.Union)
}

// UnaryUnion returns the union of all components of g, dissolving shared
// boundaries and merging overlapping pieces.
func UnaryUnion(g geom.T) (geom.T, error) {
	return unaryTopology(g, backend.UnaryUnion)
}

// ClipByRect returns the part of g inside the axis-aligned rectangle with
// corners (xmin, ymin) and (xmax, ymax), or (nil, nil) when g lies entirely
// outside. The clip is a straight cut, cheaper than Intersection with a
// rectangle polygon but without its topology guarantees.
func ClipByRect(g geom.T, xmin, ymin, xmax, ymax float64) (geom.T, error) {
	return absorbTooFewPoints(unaryTopology(g, func(h backend.Context, ng backend.Geom) backend.Geom {
		return backend.ClipByRect(h, ng, xmin, ymin, xmax, ymax)
	}))
}
