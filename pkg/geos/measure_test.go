package geos_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spatialkit/geos-go/pkg/geos"
	"github.com/spatialkit/geos-go/pkg/geos/geostest"
)

func TestLength(t *testing.T) {
	skipWithoutEngine(t)

	l, err := geos.Length(geostest.Line(0, 0, 3, 4))
	require.NoError(t, err)
	require.Equal(t, 5.0, l)

	// Length of an areal geometry is its perimeter.
	l, err = geos.Length(geostest.Square(0, 0, 10, 10))
	require.NoError(t, err)
	require.Equal(t, 40.0, l)
}

func TestArea(t *testing.T) {
	skipWithoutEngine(t)

	a, err := geos.Area(geostest.Square(0, 0, 10, 10))
	require.NoError(t, err)
	require.Equal(t, 100.0, a)

	a, err = geos.Area(geostest.Donut(0, 0, 10, 10, 2))
	require.NoError(t, err)
	require.Equal(t, 64.0, a)

	a, err = geos.Area(geostest.Line(0, 0, 10, 0))
	require.NoError(t, err)
	require.Equal(t, 0.0, a)
}

func TestDistance(t *testing.T) {
	skipWithoutEngine(t)

	d, err := geos.Distance(geostest.Point(0, 0), geostest.Point(3, 4))
	require.NoError(t, err)
	require.Equal(t, 5.0, d)

	d, err = geos.Distance(geostest.Square(0, 0, 2, 2), geostest.Square(1, 1, 3, 3))
	require.NoError(t, err)
	require.Equal(t, 0.0, d)
}

func TestHausdorffDistance(t *testing.T) {
	skipWithoutEngine(t)

	a := geostest.Line(0, 0, 10, 0)
	b := geostest.Line(0, 1, 10, 1)

	d, err := geos.HausdorffDistance(a, b)
	require.NoError(t, err)
	require.Equal(t, 1.0, d)
}

func TestFrechetDistance(t *testing.T) {
	skipWithoutEngine(t)

	a := geostest.Line(0, 0, 10, 0)
	b := geostest.Line(0, 1, 10, 1)

	d, err := geos.FrechetDistance(a, b)
	require.NoError(t, err)
	require.Equal(t, 1.0, d)

	// Fréchet respects direction: reversing one curve forces the leash
	// across the whole span.
	rev := geostest.Line(10, 1, 0, 1)
	d, err = geos.FrechetDistance(a, rev)
	require.NoError(t, err)
	require.Greater(t, d, 1.0)
}
