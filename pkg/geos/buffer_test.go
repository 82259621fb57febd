package geos_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	geom "github.com/twpayne/go-geom"

	"github.com/spatialkit/geos-go/pkg/geos"
	"github.com/spatialkit/geos-go/pkg/geos/geostest"
)

func TestBuffer(t *testing.T) {
	skipWithoutEngine(t)

	out, err := geos.Buffer(geostest.Point(0, 0), 10)
	require.NoError(t, err)
	require.NotNil(t, out)

	// The polygonal approximation stays a little under the disc area and
	// converges to it as the segment count grows.
	area, err := geos.Area(out)
	require.NoError(t, err)
	require.InDelta(t, math.Pi*100, area, math.Pi*100*0.01)
	require.Less(t, area, math.Pi*100)
}

func TestBufferCollapsed(t *testing.T) {
	skipWithoutEngine(t)

	// A zero-width buffer of a line has no interior.
	out, err := geos.Buffer(geostest.Line(0, 0, 5, 5), 0)
	require.NoError(t, err)
	require.Nil(t, out)

	// A negative buffer can swallow the whole polygon.
	out, err = geos.Buffer(geostest.Square(0, 0, 2, 2), -5)
	require.NoError(t, err)
	require.Nil(t, out)
}

func TestBufferWithStyle(t *testing.T) {
	skipWithoutEngine(t)

	line := geostest.Line(0, 0, 10, 0)

	out, err := geos.BufferWithStyle(line, 2, geos.BufferStyle{CapStyle: geos.CapFlat})
	require.NoError(t, err)
	require.NotNil(t, out)

	// Flat caps add nothing beyond the segment body.
	area, err := geos.Area(out)
	require.NoError(t, err)
	require.InDelta(t, 40.0, area, 1e-6)

	out, err = geos.BufferWithStyle(line, 2, geos.BufferStyle{CapStyle: geos.CapSquare})
	require.NoError(t, err)
	area, err = geos.Area(out)
	require.NoError(t, err)
	require.InDelta(t, 56.0, area, 1e-6)
}

func TestBufferStyleValidation(t *testing.T) {
	line := geostest.Line(0, 0, 10, 0)

	_, err := geos.BufferWithStyle(line, 2, geos.BufferStyle{CapStyle: geos.CapStyle(9)})
	require.Error(t, err)

	_, err = geos.BufferWithStyle(line, 2, geos.BufferStyle{JoinStyle: geos.JoinStyle(9)})
	require.Error(t, err)

	_, err = geos.BufferWithStyle(line, 2, geos.BufferStyle{QuadSegments: -1})
	require.Error(t, err)
}

func TestOffsetCurve(t *testing.T) {
	skipWithoutEngine(t)

	line := geostest.Line(0, 0, 10, 0)

	out, err := geos.OffsetCurve(line, 2, geos.BufferStyle{})
	require.NoError(t, err)
	require.NotNil(t, out)

	offset, ok := out.(*geom.LineString)
	require.True(t, ok, "expected a linestring, got %T", out)

	// A left offset of a west-to-east segment runs along y = 2.
	flat := offset.FlatCoords()
	for i := 1; i < len(flat); i += 2 {
		require.InDelta(t, 2.0, flat[i], 1e-9)
	}
}
