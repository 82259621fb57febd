package geos_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	geom "github.com/twpayne/go-geom"

	"github.com/spatialkit/geos-go/pkg/geos"
	"github.com/spatialkit/geos-go/pkg/geos/geostest"
)

func TestEnvelopeOfPoint(t *testing.T) {
	skipWithoutEngine(t)

	env, err := geos.EnvelopeOf(geostest.Point(3, 4))
	require.NoError(t, err)
	require.Equal(t, geos.Envelope{MinX: 3, MinY: 4, MaxX: 3, MaxY: 4}, env)
}

func TestEnvelopeOfPolygon(t *testing.T) {
	skipWithoutEngine(t)

	poly := geom.NewPolygonFlat(geom.XY, []float64{2, 1, 9, 3, 7, 8, 3, 6, 2, 1}, []int{10})

	env, err := geos.EnvelopeOf(poly)
	require.NoError(t, err)
	require.Equal(t, geos.Envelope{MinX: 2, MinY: 1, MaxX: 9, MaxY: 8}, env)
}

func TestEnvelopeOfLine(t *testing.T) {
	skipWithoutEngine(t)

	env, err := geos.EnvelopeOf(geostest.Line(0, 0, 5, 7))
	require.NoError(t, err)
	require.Equal(t, geos.Envelope{MinX: 0, MinY: 0, MaxX: 5, MaxY: 7}, env)
}

func TestConvexHull(t *testing.T) {
	skipWithoutEngine(t)

	cloud := geom.NewMultiPointFlat(geom.XY, []float64{0, 0, 10, 0, 10, 10, 0, 10, 5, 5, 2, 7})

	hull, err := geos.ConvexHull(cloud)
	require.NoError(t, err)

	area, err := geos.Area(hull)
	require.NoError(t, err)
	require.Equal(t, 100.0, area)
}

func TestConcaveHull(t *testing.T) {
	skipWithoutEngine(t)

	cloud := geom.NewMultiPointFlat(geom.XY, []float64{0, 0, 10, 0, 10, 10, 0, 10, 5, 5})

	hull, err := geos.ConcaveHull(cloud, 1, false)
	require.NoError(t, err)

	// Ratio 1 degenerates to the convex hull.
	area, err := geos.Area(hull)
	require.NoError(t, err)
	require.Equal(t, 100.0, area)

	_, err = geos.ConcaveHull(cloud, 1.5, false)
	require.Error(t, err)
}

func TestMinimumRotatedRectangle(t *testing.T) {
	skipWithoutEngine(t)

	rect, err := geos.MinimumRotatedRectangle(geostest.Square(0, 0, 10, 10))
	require.NoError(t, err)

	area, err := geos.Area(rect)
	require.NoError(t, err)
	require.InDelta(t, 100.0, area, 1e-6)
}

func TestMinimumWidth(t *testing.T) {
	skipWithoutEngine(t)

	width, err := geos.MinimumWidth(geostest.Square(0, 0, 4, 10))
	require.NoError(t, err)

	length, err := geos.Length(width)
	require.NoError(t, err)
	require.InDelta(t, 4.0, length, 1e-9)
}

func TestCentroid(t *testing.T) {
	skipWithoutEngine(t)

	c, err := geos.Centroid(geostest.Square(0, 0, 10, 10))
	require.NoError(t, err)
	require.Equal(t, 5.0, c.X())
	require.Equal(t, 5.0, c.Y())
}

func TestPointOnSurface(t *testing.T) {
	skipWithoutEngine(t)

	donut := geostest.Donut(0, 0, 10, 10, 3)

	p, err := geos.PointOnSurface(donut)
	require.NoError(t, err)

	on, err := geos.Intersects(donut, p)
	require.NoError(t, err)
	require.True(t, on, "surface point (%v, %v) misses the polygon", p.X(), p.Y())
}

func TestMinimumBoundingCircle(t *testing.T) {
	skipWithoutEngine(t)

	pair := geom.NewMultiPointFlat(geom.XY, []float64{0, 0, 10, 0})

	circle, err := geos.MinimumBoundingCircle(pair)
	require.NoError(t, err)
	require.NotNil(t, circle.Center)
	require.InDelta(t, 5.0, circle.Center.X(), 1e-9)
	require.InDelta(t, 0.0, circle.Center.Y(), 1e-9)
	require.InDelta(t, 5.0, circle.Radius, 1e-9)
}

func TestMinimumBoundingCircleOfSquare(t *testing.T) {
	skipWithoutEngine(t)

	circle, err := geos.MinimumBoundingCircle(geostest.Square(0, 0, 10, 10))
	require.NoError(t, err)
	require.InDelta(t, 5.0, circle.Center.X(), 1e-9)
	require.InDelta(t, 5.0, circle.Center.Y(), 1e-9)
	require.InDelta(t, 5*math.Sqrt2, circle.Radius, 1e-9)
}

func TestNearestPoints(t *testing.T) {
	skipWithoutEngine(t)

	a := geostest.Square(0, 0, 2, 2)
	b := geostest.Square(5, 0, 7, 2)

	pa, pb, err := geos.NearestPoints(a, b)
	require.NoError(t, err)
	require.Equal(t, 2.0, pa.X())
	require.Equal(t, 5.0, pb.X())
	require.Equal(t, pa.Y(), pb.Y(), "nearest pair is not horizontal")

	d, err := geos.Distance(a, b)
	require.NoError(t, err)
	require.Equal(t, 3.0, d)
}
