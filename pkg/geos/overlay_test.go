package geos_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	geom "github.com/twpayne/go-geom"

	"github.com/spatialkit/geos-go/pkg/geos"
	"github.com/spatialkit/geos-go/pkg/geos/geostest"
)

func TestIntersection(t *testing.T) {
	skipWithoutEngine(t)

	a := geostest.Square(0, 0, 10, 10)
	b := geostest.Square(5, 5, 15, 15)

	out, err := geos.Intersection(a, b)
	require.NoError(t, err)
	require.NotNil(t, out)

	area, err := geos.Area(out)
	require.NoError(t, err)
	require.Equal(t, 25.0, area)
}

func TestIntersectionAbsent(t *testing.T) {
	skipWithoutEngine(t)

	out, err := geos.Intersection(geostest.Square(0, 0, 10, 10), geostest.Square(100, 100, 110, 110))
	require.NoError(t, err)
	require.Nil(t, out)
}

func TestDifference(t *testing.T) {
	skipWithoutEngine(t)

	a := geostest.Square(0, 0, 10, 10)
	b := geostest.Square(5, 5, 15, 15)

	out, err := geos.Difference(a, b)
	require.NoError(t, err)
	require.NotNil(t, out)

	area, err := geos.Area(out)
	require.NoError(t, err)
	require.Equal(t, 75.0, area)

	// Subtracting a covering geometry leaves nothing.
	out, err = geos.Difference(a, geostest.Square(-5, -5, 15, 15))
	require.NoError(t, err)
	require.Nil(t, out)
}

func TestSymmetricDifference(t *testing.T) {
	skipWithoutEngine(t)

	a := geostest.Square(0, 0, 10, 10)
	b := geostest.Square(5, 5, 15, 15)

	out, err := geos.SymmetricDifference(a, b)
	require.NoError(t, err)
	require.NotNil(t, out)

	area, err := geos.Area(out)
	require.NoError(t, err)
	require.Equal(t, 150.0, area)

	// A geometry against itself cancels completely.
	out, err = geos.SymmetricDifference(a, geostest.Square(0, 0, 10, 10))
	require.NoError(t, err)
	require.Nil(t, out)
}

func TestUnion(t *testing.T) {
	skipWithoutEngine(t)

	a := geostest.Square(0, 0, 10, 10)
	b := geostest.Square(5, 5, 15, 15)

	out, err := geos.Union(a, b)
	require.NoError(t, err)
	require.NotNil(t, out)

	area, err := geos.Area(out)
	require.NoError(t, err)
	require.Equal(t, 175.0, area)
}

func TestUnaryUnion(t *testing.T) {
	skipWithoutEngine(t)

	mp := geom.NewMultiPolygonFlat(geom.XY,
		[]float64{
			0, 0, 10, 0, 10, 10, 0, 10, 0, 0,
			5, 5, 15, 5, 15, 15, 5, 15, 5, 5,
		},
		[][]int{{10}, {20}})

	out, err := geos.UnaryUnion(mp)
	require.NoError(t, err)
	require.NotNil(t, out)

	area, err := geos.Area(out)
	require.NoError(t, err)
	require.Equal(t, 175.0, area)

	// Dissolving merges the components into a single polygon.
	_, ok := out.(*geom.Polygon)
	require.True(t, ok, "expected a dissolved polygon, got %T", out)
}

func TestClipByRect(t *testing.T) {
	skipWithoutEngine(t)

	a := geostest.Square(0, 0, 10, 10)

	out, err := geos.ClipByRect(a, 5, 5, 20, 20)
	require.NoError(t, err)
	require.NotNil(t, out)

	area, err := geos.Area(out)
	require.NoError(t, err)
	require.Equal(t, 25.0, area)

	out, err = geos.ClipByRect(a, 100, 100, 110, 110)
	require.NoError(t, err)
	require.Nil(t, out)
}
