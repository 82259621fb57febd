package geos

import (
	geom "github.com/twpayne/go-geom"

	"github.com/spatialkit/geos-go/pkg/geos/internal/backend"
)

// Length returns the length of g: the perimeter for areal geometries, the
// summed segment length for lineal ones, 0 for points.
func Length(g geom.T) (float64, error) {
	return unaryScalar(g, backend.Length)
}

// Area returns the area of g. Non-areal geometries have area 0.
func Area(g geom.T) (float64, error) {
	return unaryScalar(g, backend.Area)
}

// Distance returns the minimum planar distance between a and b.
func Distance(a, b geom.T) (float64, error) {
	return binaryScalar(a, b, backend.Distance)
}

// HausdorffDistance returns the discrete Hausdorff distance between a and b,
// the greatest distance from a point on one geometry to the nearest point on
// the other.
func HausdorffDistance(a, b geom.T) (float64, error) {
	return binaryScalar(a, b, backend.HausdorffDistance)
}

// FrechetDistance returns the discrete Fréchet distance between a and b. It
// accounts for the ordering of points along the inputs, which makes it a
// better similarity measure than HausdorffDistance for curves.
func FrechetDistance(a, b geom.T) (float64, error) {
	return binaryScalar(a, b, backend.FrechetDistance)
}
